// Package render formats resolved places and weather data as fixed-width
// text blocks for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/kjstillabower/weathercli/internal/models"
	"github.com/kjstillabower/weathercli/internal/units"
	"github.com/kjstillabower/weathercli/internal/wmo"
)

// Current formats a labeled current-conditions block. Temperatures are
// converted to the requested unit at this point only.
func Current(place models.Place, cur models.CurrentConditions, unit units.Unit) string {
	var b strings.Builder
	row := func(label, value string) {
		fmt.Fprintf(&b, "%-12s %s\n", label, value)
	}

	row("Location", fmt.Sprintf("%s (%.2f, %.2f)", placeName(place), place.Latitude, place.Longitude))
	row("Local time", cur.Time)
	row("Temperature", units.Format(cur.TemperatureC, unit))
	row("Conditions", fmt.Sprintf("%s (%d)", wmo.Describe(cur.WeatherCode), cur.WeatherCode))
	row("Humidity", fmt.Sprintf("%d%%", cur.HumidityPct))
	row("Wind", fmt.Sprintf("%.1f km/h", cur.WindSpeedKmh))
	row("Sunrise", cur.Sunrise)
	row("Sunset", cur.Sunset)
	return b.String()
}

// Forecast formats one line per day, in the order received. The caller is
// responsible for any heading; the output is exactly one line per entry.
func Forecast(days []models.ForecastDay, unit units.Unit) string {
	var b strings.Builder
	for _, d := range days {
		fmt.Fprintf(&b, "%s  high %s  low %s\n", d.Date, units.Format(d.HighC, unit), units.Format(d.LowC, unit))
	}
	return b.String()
}

func placeName(place models.Place) string {
	if place.Region == "" {
		return place.Name
	}
	return place.Name + ", " + place.Region
}
