package astro

// Recorder receives calculation steps as the pipeline runs. The chart
// handlers inject a shared buffer; tests inject nothing. A nil Recorder
// disables step recording without branching at every call site.
type Recorder interface {
	Record(step string, data map[string]any)
}

// Input carries the validated scalars a chart computation needs plus the
// identity fields that are echoed through to the result verbatim.
type Input struct {
	Name      string
	Sex       string
	BirthDate string
	BirthTime string
	Timezone  float64
	Latitude  float64
	Longitude float64
	Ayanamsa  string
	Moment    Moment
}

// Planet is a single body's sidereal position and sign.
type Planet struct {
	Longitude float64 `json:"longitude"`
	Sign      string  `json:"sign"`
}

// LagnaInfo is the ascendant block of a chart.
type LagnaInfo struct {
	Sign    string  `json:"sign"`
	Lord    string  `json:"lord"`
	Degrees float64 `json:"degrees"`
}

// Karakas names the soul and minister significators, chosen by highest
// advancement within sign among the computed bodies. With only the
// luminaries and the nodes available this is a rough reading; sentinel
// "Unknown" values appear only when nothing qualifies.
type Karakas struct {
	AtmaKaraka   string `json:"atma_karaka"`
	AmatyaKaraka string `json:"amatya_karaka"`
}

// Arudhas is carried for result-shape compatibility with the reference
// model. Computing arudha padas needs house lords for all nine grahas,
// which the truncated position models cannot supply, so both fields stay
// at their sentinel.
type Arudhas struct {
	LagnaAruda string `json:"lagna_aruda"`
	DhanaAruda string `json:"dhana_aruda"`
}

// Chart is the assembled result of one computation. Every field is
// always present; the assembler fills sentinels, never the math.
type Chart struct {
	Name      string  `json:"name"`
	Sex       string  `json:"sex"`
	BirthDate string  `json:"birth_date"`
	BirthTime string  `json:"birth_time"`
	Timezone  float64 `json:"timezone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Ayanamsa  string  `json:"ayanamsa"`

	Tithi     Tithi             `json:"tithi"`
	Lagna     LagnaInfo         `json:"lagna"`
	Rasi      Rasi              `json:"rasi"`
	Nakshatra Nakshatra         `json:"nakshatra"`
	Yoga      Yoga              `json:"yoga"`
	Karanam   string            `json:"karanam"`
	Planets   map[string]Planet `json:"planets"`
	Karakas   Karakas           `json:"karakas"`
	Arudhas   Arudhas           `json:"arudhas"`
}

// ComputeChart runs the full derivation pipeline: Julian Day, tropical
// longitudes, sidereal shift, then the discrete classifications. Pure
// apart from the optional step recording; safe to call concurrently.
func ComputeChart(in Input, rec Recorder) Chart {
	jd := in.Moment.JulianDay()
	record(rec, "JULIAN_DAY", map[string]any{"julian_day": jd})

	sunTropical := SunLongitude(jd)
	moonTropical := MoonLongitude(jd)
	record(rec, "TROPICAL_LONGITUDES", map[string]any{
		"sun_longitude":  sunTropical,
		"moon_longitude": moonTropical,
	})

	ayanamsa := AyanamsaValue(in.Ayanamsa)
	sun := ToSidereal(sunTropical, ayanamsa)
	moon := ToSidereal(moonTropical, ayanamsa)
	record(rec, "SIDEREAL_LONGITUDES", map[string]any{
		"ayanamsa":       ayanamsa,
		"sun_longitude":  sun,
		"moon_longitude": moon,
	})

	lagnaLon := LagnaLongitude(sun, in.Moment.LocalHour())
	lagnaRasi := RasiAt(lagnaLon)

	rahu := ToSidereal(MeanLunarNode(jd), ayanamsa)
	ketu := normalizeDeg(rahu + 180)

	planets := map[string]Planet{
		"sun":  {Longitude: sun, Sign: RasiAt(sun).Sign},
		"moon": {Longitude: moon, Sign: RasiAt(moon).Sign},
		"rahu": {Longitude: rahu, Sign: RasiAt(rahu).Sign},
		"ketu": {Longitude: ketu, Sign: RasiAt(ketu).Sign},
	}

	chart := Chart{
		Name:      in.Name,
		Sex:       in.Sex,
		BirthDate: in.BirthDate,
		BirthTime: in.BirthTime,
		Timezone:  in.Timezone,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Ayanamsa:  in.Ayanamsa,

		Tithi: TithiAt(sun, moon),
		Lagna: LagnaInfo{
			Sign:    lagnaRasi.Sign,
			Lord:    lagnaRasi.Lord,
			Degrees: lagnaLon,
		},
		Rasi:      RasiAt(moon),
		Nakshatra: NakshatraAt(moon),
		Yoga:      YogaAt(sun, moon),
		Karanam:   KaranaAt(sun, moon).Name,
		Planets:   planets,
		Karakas:   karakasFor(sun, moon),
		Arudhas:   Arudhas{LagnaAruda: "Unknown", DhanaAruda: "Unknown"},
	}

	record(rec, "BIRTH_CHART_CALCULATED", map[string]any{"status": "Complete"})
	return chart
}

// karakasFor ranks the luminaries by degrees advanced within their sign.
// The nodes are excluded; their karaka ordering runs reversed in the
// traditional scheme.
func karakasFor(sun, moon float64) Karakas {
	sunAdv := sun - float64(int(sun/rasiWidth))*rasiWidth
	moonAdv := moon - float64(int(moon/rasiWidth))*rasiWidth

	if sunAdv >= moonAdv {
		return Karakas{AtmaKaraka: "Sun", AmatyaKaraka: "Moon"}
	}
	return Karakas{AtmaKaraka: "Moon", AmatyaKaraka: "Sun"}
}

func record(rec Recorder, step string, data map[string]any) {
	if rec != nil {
		rec.Record(step, data)
	}
}
