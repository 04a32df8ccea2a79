package domain

// Weather is the current conditions at a point, metric units.
type Weather struct {
	Temperature   float64 `json:"temperature"`
	Humidity      float64 `json:"humidity"`
	WindSpeed     float64 `json:"wind_speed"`
	Precipitation float64 `json:"precipitation"`
}

// PointInsight is what the map shows after a click: weather, elevation and
// the derived vapour pressure deficit.
type PointInsight struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Weather   Weather `json:"weather"`
	Elevation float64 `json:"elevation"`
	VPD       float64 `json:"vpd"`
}

// PredictionInput is the manual prediction form.
type PredictionInput struct {
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Temperature   float64 `json:"temperature"`
	Humidity      float64 `json:"humidity"`
	WindSpeed     float64 `json:"wind_speed"`
	Precipitation float64 `json:"precipitation"`
	Elevation     float64 `json:"elevation"`
}

// Prediction is the backend model output for a manual input.
type Prediction struct {
	FireOccurred int            `json:"fire_occurred"`
	Input        map[string]any `json:"input,omitempty"`
	Error        string         `json:"error,omitempty"`
}

// FireCount is one bucket of a historical statistic (year, month, confidence
// level or elevation band).
type FireCount struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}
