package types

// BirthChartRequest mirrors the JSON body accepted by the chart
// endpoints. Date and time arrive as strings and are parsed and
// range-checked by the handler layer; the calculation core only ever
// sees validated scalars.
type BirthChartRequest struct {
	Name      string   `json:"name"`
	Sex       string   `json:"sex"`
	BirthDate string   `json:"birth_date" binding:"required"`
	BirthTime string   `json:"birth_time" binding:"required"`
	Timezone  *float64 `json:"timezone"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Ayanamsa  string   `json:"ayanamsa"`
}

// TithiResponse is the data block of the calculate-tithi endpoint.
type TithiResponse struct {
	TithiName     string  `json:"tithi_name"`
	TithiNumber   int     `json:"tithi_number"`
	Paksha        string  `json:"paksha"`
	SunLongitude  float64 `json:"sun_longitude"`
	MoonLongitude float64 `json:"moon_longitude"`
}

// LagnaResponse is the data block of the calculate-lagna endpoint.
type LagnaResponse struct {
	LagnaSign    string  `json:"lagna_sign"`
	LagnaLord    string  `json:"lagna_lord"`
	LagnaDegrees float64 `json:"lagna_degrees"`
}
