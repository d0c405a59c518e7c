package astro

// DefaultAyanamsa is the name every unrecognized or empty ayanamsa
// request falls back to.
const DefaultAyanamsa = "Chitra Paksha"

// ayanamsas maps ayanamsa names to their offset in degrees. Only the
// Chitra Paksha (Lahiri) value is catalogued; extend this map before
// advertising any other name to callers.
var ayanamsas = map[string]float64{
	"Chitra Paksha": 23.638333,
}

// AyanamsaValue resolves an ayanamsa name to its degree offset, falling
// back to the Chitra Paksha constant for unknown names.
func AyanamsaValue(name string) float64 {
	if v, ok := ayanamsas[name]; ok {
		return v
	}
	return ayanamsas[DefaultAyanamsa]
}

// ToSidereal shifts a tropical ecliptic longitude into the sidereal
// (nirayana) frame. The result is normalized into [0, 360).
//
// Every longitude handed to the classifiers must have passed through
// this shift; a tropical value produces a plausible-looking but wrong
// classification and nothing downstream can detect the mix-up.
func ToSidereal(tropical, ayanamsa float64) float64 {
	return normalizeDeg(tropical - ayanamsa)
}
