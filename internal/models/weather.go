package models

// Place is a resolved geocoding match. Immutable once built; discarded after
// each lookup.
type Place struct {
	Name      string  `json:"name"`
	Region    string  `json:"region,omitempty"` // admin region or country; may be empty
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// CurrentConditions is the weather snapshot for a place. Temperature is always
// Celsius; Fahrenheit is derived at display time only.
type CurrentConditions struct {
	Time         string  `json:"time"` // ISO-8601, place-local
	TemperatureC float64 `json:"temperatureC"`
	WeatherCode  int     `json:"weatherCode"`
	HumidityPct  int     `json:"humidityPct"`
	WindSpeedKmh float64 `json:"windSpeedKmh"`
	Sunrise      string  `json:"sunrise"` // HH:MM, place-local
	Sunset       string  `json:"sunset"`  // HH:MM, place-local
}

// ForecastDay is a single day's high/low summary.
type ForecastDay struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	HighC float64 `json:"highC"`
	LowC  float64 `json:"lowC"`
}
