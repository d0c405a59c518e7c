package astro

import "math"

// J2000 is the Julian Day of the standard epoch J2000.0
// (2000-01-01 12:00:00 UT).
const J2000 = 2451545.0

// Moment is a civil birth instant together with its UTC offset in hours.
// Fields are assumed calendar-valid; validation happens at the calling
// layer before a Moment is ever constructed.
type Moment struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
	// UTCOffset is hours east of UTC, e.g. 5.5 for IST.
	UTCOffset float64
}

// JulianDay converts the moment to a Julian Day number in UT.
//
// January and February are counted as months 13 and 14 of the previous
// year, which is what the floor-based Gregorian formula requires.
func (m Moment) JulianDay() float64 {
	y, mo := m.Year, m.Month
	if mo <= 2 {
		y--
		mo += 12
	}

	a := math.Floor(float64(y) / 100)
	b := 2 - a + math.Floor(a/4)

	jd := math.Floor(365.25*(float64(y)+4716)) +
		math.Floor(30.6001*float64(mo+1)) +
		float64(m.Day) + b - 1524.5

	ut := float64(m.Hour) + float64(m.Minute)/60 + float64(m.Second)/3600 - m.UTCOffset
	return jd + ut/24
}

// LocalHour returns the local wall-clock time as a fractional hour.
func (m Moment) LocalHour() float64 {
	return float64(m.Hour) + float64(m.Minute)/60 + float64(m.Second)/3600
}

// julianCenturies returns T, the number of Julian centuries between jd
// and J2000.0. All series in this package are polynomials in T.
func julianCenturies(jd float64) float64 {
	return (jd - J2000) / 36525.0
}

// normalizeDeg reduces an angle in degrees into [0, 360).
func normalizeDeg(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

const deg2rad = math.Pi / 180
