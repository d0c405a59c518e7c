package astro

// Fixed classification catalogues. All of them are initialized once and
// never written after package init; classifiers only ever index into
// them, so concurrent chart computations need no locking.

var nakshatraNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha",
	"Jyeshtha", "Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana",
	"Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada",
	"Revati",
}

// Vimshottari lord cycle: Ketu through Mercury, repeated three times
// around the zodiac.
var nakshatraLords = [27]string{
	"Ketu", "Venus", "Sun", "Moon", "Mars", "Rahu", "Jupiter", "Saturn", "Mercury",
	"Ketu", "Venus", "Sun", "Moon", "Mars", "Rahu", "Jupiter", "Saturn", "Mercury",
	"Ketu", "Venus", "Sun", "Moon", "Mars", "Rahu", "Jupiter", "Saturn", "Mercury",
}

var rasiNames = [12]string{
	"Mesha", "Vrishabha", "Mithuna", "Karka", "Simha", "Kanya",
	"Tula", "Vrishchika", "Dhanu", "Makara", "Kumbha", "Meena",
}

var rasiLords = [12]string{
	"Mars", "Venus", "Mercury", "Moon", "Sun", "Mercury",
	"Venus", "Mars", "Jupiter", "Saturn", "Saturn", "Jupiter",
}

// Fifteen tithi names, covering one fortnight of the lunar month. The
// fifteenth entry is Purnima; the classifier clamps into this table, see
// TithiAt for the paksha caveat.
var tithiNames = [15]string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Purnima",
}

var yogaNames = [27]string{
	"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana",
	"Atiganda", "Sukarma", "Dhriti", "Shula", "Ganda", "Vriddhi",
	"Dhruva", "Vyaghata", "Harshana", "Vajra", "Siddhi", "Vyatipata",
	"Variyana", "Parigha", "Shiva", "Siddha", "Sadhya", "Shubha",
	"Shukla", "Brahma", "Indra", "Vaidhriti",
}

// Seven movable karanas cycle through half-tithi slots 1-56; the four
// fixed ones occupy slot 0 and slots 57-59.
var movableKaranas = [7]string{
	"Bava", "Balava", "Kaulava", "Taitila", "Gara", "Vanija", "Vishti",
}

var fixedKaranas = [4]string{
	"Kimstughna", "Shakuni", "Chatushpada", "Naga",
}
