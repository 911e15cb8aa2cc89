package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/kjstillabower/weathercli/internal/models"
)

type forecastResponse struct {
	Current struct {
		Time             string   `json:"time"`
		Temperature2m    *float64 `json:"temperature_2m"`
		RelativeHumidity *int     `json:"relative_humidity_2m"`
		WeatherCode      *int     `json:"weather_code"`
		WindSpeed10m     *float64 `json:"wind_speed_10m"`
	} `json:"current"`
	Daily struct {
		Time             []string  `json:"time"`
		Temperature2mMax []float64 `json:"temperature_2m_max"`
		Temperature2mMin []float64 `json:"temperature_2m_min"`
		Sunrise          []string  `json:"sunrise"`
		Sunset           []string  `json:"sunset"`
	} `json:"daily"`
}

// FetchCurrentAndForecast returns current conditions and a daily forecast for
// the place. The request carries the place's own timezone so all returned
// timestamps are already place-local. A missing or incomplete body yields
// ErrBadResponse.
func (c *Client) FetchCurrentAndForecast(ctx context.Context, place models.Place) (models.CurrentConditions, []models.ForecastDay, error) {
	tz := place.Timezone
	if tz == "" {
		tz = "auto"
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(place.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(place.Longitude, 'f', -1, 64))
	params.Set("timezone", tz)
	params.Set("current", "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m")
	params.Set("daily", "temperature_2m_max,temperature_2m_min,sunrise,sunset")
	params.Set("forecast_days", strconv.Itoa(c.forecastDays))

	var fr forecastResponse
	if err := c.get(ctx, "forecast", c.forecastURL, params, &fr); err != nil {
		return models.CurrentConditions{}, nil, fmt.Errorf("forecast for %s: %w", place.Name, err)
	}

	cur, days, err := mapForecastResponse(fr, c.forecastDays)
	if err != nil {
		return models.CurrentConditions{}, nil, fmt.Errorf("forecast for %s: %w", place.Name, err)
	}
	return cur, days, nil
}

// mapForecastResponse validates required fields and converts the wire shape
// into the internal model.
func mapForecastResponse(fr forecastResponse, days int) (models.CurrentConditions, []models.ForecastDay, error) {
	c := fr.Current
	if c.Time == "" || c.Temperature2m == nil || c.RelativeHumidity == nil ||
		c.WeatherCode == nil || c.WindSpeed10m == nil {
		return models.CurrentConditions{}, nil, fmt.Errorf("%w: current conditions missing", ErrBadResponse)
	}

	d := fr.Daily
	if len(d.Time) < days || len(d.Temperature2mMax) < days || len(d.Temperature2mMin) < days {
		return models.CurrentConditions{}, nil, fmt.Errorf("%w: daily forecast shorter than %d days", ErrBadResponse, days)
	}
	if len(d.Sunrise) == 0 || len(d.Sunset) == 0 {
		return models.CurrentConditions{}, nil, fmt.Errorf("%w: sunrise/sunset missing", ErrBadResponse)
	}

	cur := models.CurrentConditions{
		Time:         c.Time,
		TemperatureC: *c.Temperature2m,
		WeatherCode:  *c.WeatherCode,
		HumidityPct:  *c.RelativeHumidity,
		WindSpeedKmh: *c.WindSpeed10m,
		Sunrise:      clockTime(d.Sunrise[0]),
		Sunset:       clockTime(d.Sunset[0]),
	}

	forecast := make([]models.ForecastDay, 0, days)
	for i := 0; i < days; i++ {
		forecast = append(forecast, models.ForecastDay{
			Date:  d.Time[i],
			HighC: d.Temperature2mMax[i],
			LowC:  d.Temperature2mMin[i],
		})
	}
	return cur, forecast, nil
}

// clockTime extracts HH:MM from an ISO-8601 local timestamp like
// "2024-11-17T07:12". Unexpected shapes pass through unchanged.
func clockTime(iso string) string {
	_, after, found := strings.Cut(iso, "T")
	if !found || len(after) < 5 {
		return iso
	}
	return after[:5]
}
