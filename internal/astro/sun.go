package astro

import "math"

// SunLongitude returns the Sun's apparent tropical ecliptic longitude in
// degrees for the given Julian Day, normalized into [0, 360).
//
// The series is the low-order equation-of-center expansion: mean
// longitude plus three periodic terms in the mean anomaly. Accuracy is
// on the arc-minute scale, which is all the panchanga buckets need.
func SunLongitude(jd float64) float64 {
	t := julianCenturies(jd)

	// Geometric mean longitude and mean anomaly, degrees.
	l0 := 280.46646 + 36000.76983*t + 0.0003032*t*t
	m := 357.52911 + 35999.05029*t - 0.0001536*t*t

	mr := m * deg2rad
	c := (1.914602-0.004817*t-0.000014*t*t)*math.Sin(mr) +
		(0.019993-0.000101*t)*math.Sin(2*mr) +
		0.000029*math.Sin(3*mr)

	return normalizeDeg(l0 + c)
}
