package astro

import "math"

// Bucket widths over the [0, 360) circle. Every classifier is a floor
// lookup with the index clamped to the last table entry, so an input of
// exactly 360 (or one pushed there by accumulated floating error) lands
// in the final bucket instead of overflowing.
const (
	nakshatraWidth = 360.0 / 27.0
	padaWidth      = nakshatraWidth / 4
	rasiWidth      = 30.0
	tithiWidth     = 12.0
	yogaWidth      = 360.0 / 27.0
	karanaWidth    = 6.0
)

// Nakshatra is one of the 27 lunar mansions, with its quarter (pada) and
// Vimshottari lord.
type Nakshatra struct {
	Name   string `json:"name"`
	Number int    `json:"number"`
	Pada   int    `json:"pada"`
	Lord   string `json:"lord"`
}

// NakshatraAt classifies a sidereal Moon longitude into its nakshatra.
func NakshatraAt(moonSidereal float64) Nakshatra {
	idx := int(moonSidereal / nakshatraWidth)
	if idx > 26 {
		idx = 26
	}
	pada := int(math.Mod(moonSidereal, nakshatraWidth)/padaWidth) + 1
	if pada > 4 {
		pada = 4
	}
	return Nakshatra{
		Name:   nakshatraNames[idx],
		Number: idx + 1,
		Pada:   pada,
		Lord:   nakshatraLords[idx],
	}
}

// Rasi is one of the 12 zodiacal signs with its ruling planet.
type Rasi struct {
	Sign   string `json:"sign"`
	Number int    `json:"number"`
	Lord   string `json:"lord"`
}

// RasiAt classifies any sidereal longitude into its 30-degree sign. The
// same mapping serves the Moon sign, the Sun sign and the lagna sign.
func RasiAt(longitude float64) Rasi {
	idx := int(longitude / rasiWidth)
	if idx > 11 {
		idx = 11
	}
	return Rasi{
		Sign:   rasiNames[idx],
		Number: idx + 1,
		Lord:   rasiLords[idx],
	}
}

// Tithi is the lunar day: 12 degrees of Moon-minus-Sun elongation.
type Tithi struct {
	Name   string `json:"name"`
	Number int    `json:"number"`
	Paksha string `json:"paksha"`
}

// TithiAt classifies the sidereal Sun and Moon longitudes into a tithi.
//
// Only the first fortnight is tabulated: the index is clamped into the
// 15-entry table, so the paksha reported here is always Suklapaksha even
// for elongations past 180 degrees. The reference model carries the same
// half-month simplification and the intended waning-half behavior is
// ambiguous there, so it is preserved rather than repaired.
func TithiAt(sunSidereal, moonSidereal float64) Tithi {
	elongation := normalizeDeg(moonSidereal - sunSidereal)
	idx := int(elongation / tithiWidth)
	if idx > 14 {
		idx = 14
	}
	paksha := "Suklapaksha"
	if idx >= 15 {
		paksha = "Krishnapaksha"
	}
	return Tithi{
		Name:   tithiNames[idx],
		Number: idx + 1,
		Paksha: paksha,
	}
}

// Yoga is the luni-solar combination unit: the summed Sun and Moon
// longitudes divided into 27 sectors.
type Yoga struct {
	Name   string `json:"name"`
	Number int    `json:"number"`
}

// YogaAt classifies the sidereal Sun and Moon longitudes into a yoga.
func YogaAt(sunSidereal, moonSidereal float64) Yoga {
	sum := normalizeDeg(sunSidereal + moonSidereal)
	idx := int(sum / yogaWidth)
	if idx > 26 {
		idx = 26
	}
	return Yoga{
		Name:   yogaNames[idx],
		Number: idx + 1,
	}
}

// Karana is the half-tithi: 6 degrees of elongation.
type Karana struct {
	Name   string `json:"name"`
	Number int    `json:"number"`
}

// KaranaAt classifies the sidereal Sun and Moon longitudes into a
// karana. Slot 0 is Kimstughna, slots 57-59 are the remaining fixed
// karanas, and the seven movable ones cycle through everything between.
func KaranaAt(sunSidereal, moonSidereal float64) Karana {
	elongation := normalizeDeg(moonSidereal - sunSidereal)
	idx := int(elongation / karanaWidth)
	if idx > 59 {
		idx = 59
	}
	switch {
	case idx == 0:
		return Karana{Name: fixedKaranas[0], Number: 1}
	case idx >= 57:
		return Karana{Name: fixedKaranas[idx-56], Number: idx + 1}
	default:
		return Karana{Name: movableKaranas[(idx-1)%7], Number: idx + 1}
	}
}

// LagnaLongitude approximates the ascendant by rotating the sidereal Sun
// 15 degrees per local hour. A true ascendant needs local sidereal time
// and an oblique-ascension correction for latitude; this diurnal proxy
// reproduces the reference model and should be read as an approximation.
func LagnaLongitude(sunSidereal, localHour float64) float64 {
	return normalizeDeg(sunSidereal + localHour*15)
}
