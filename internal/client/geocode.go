package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/kjstillabower/weathercli/internal/models"
)

type geocodeResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Country   string  `json:"country"`
		Admin1    string  `json:"admin1"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Timezone  string  `json:"timezone"`
	} `json:"results"`
}

// Resolve turns a free-text place name into a Place. The endpoint's own
// relevance ranking is trusted: the first match wins, with no local
// re-ranking. Zero matches yield ErrLocationNotFound.
func (c *Client) Resolve(ctx context.Context, query string) (models.Place, error) {
	params := url.Values{}
	params.Set("name", query)
	params.Set("count", strconv.Itoa(c.geocodeLimit))

	var gr geocodeResponse
	if err := c.get(ctx, "geocode", c.geocodeURL, params, &gr); err != nil {
		return models.Place{}, fmt.Errorf("geocode %q: %w", query, err)
	}
	if len(gr.Results) == 0 {
		return models.Place{}, fmt.Errorf("%w: no match for %q", ErrLocationNotFound, query)
	}

	first := gr.Results[0]
	region := first.Admin1
	if region == "" {
		region = first.Country
	}
	return models.Place{
		Name:      first.Name,
		Region:    region,
		Latitude:  first.Latitude,
		Longitude: first.Longitude,
		Timezone:  first.Timezone,
	}, nil
}
