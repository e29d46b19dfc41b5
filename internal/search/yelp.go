package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dinefind/dinefind/internal/model"
)

// YelpProvider calls a Yelp-style business search API over HTTP.
type YelpProvider struct {
	client *resty.Client
}

// NewYelpProvider builds a provider against baseURL. apiKey may be empty for
// providers that do not require one.
func NewYelpProvider(baseURL, apiKey string) *YelpProvider {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(30 * time.Second)
	if apiKey != "" {
		c.SetAuthToken(apiKey)
	}
	return &YelpProvider{client: c}
}

// searchResponse mirrors the provider's businesses payload.
type searchResponse struct {
	Businesses []struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Categories []struct {
			Title string `json:"title"`
		} `json:"categories"`
		Location struct {
			City           string   `json:"city"`
			State          string   `json:"state"`
			DisplayAddress []string `json:"display_address"`
		} `json:"location"`
		Rating      float64 `json:"rating"`
		Coordinates struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"coordinates"`
		ImageURL string `json:"image_url"`
		URL      string `json:"url"`
	} `json:"businesses"`
}

// SearchByLocation fetches candidate businesses around the given coordinate.
func (p *YelpProvider) SearchByLocation(ctx context.Context, lat, lon float64) ([]*model.Restaurant, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":  strconv.FormatFloat(lat, 'f', -1, 64),
			"longitude": strconv.FormatFloat(lon, 'f', -1, 64),
		}).
		Get("/v3/businesses/search")
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("search status %d: %s", resp.StatusCode(), resp.String())
	}

	var sr searchResponse
	if err := json.Unmarshal(resp.Body(), &sr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	out := make([]*model.Restaurant, 0, len(sr.Businesses))
	for _, b := range sr.Businesses {
		titles := make([]string, 0, len(b.Categories))
		for _, c := range b.Categories {
			titles = append(titles, c.Title)
		}
		out = append(out, &model.Restaurant{
			BusinessID:  b.ID,
			Name:        b.Name,
			Categories:  strings.Join(titles, ", "),
			City:        b.Location.City,
			State:       b.Location.State,
			FullAddress: strings.Join(b.Location.DisplayAddress, ", "),
			Stars:       b.Rating,
			Latitude:    b.Coordinates.Latitude,
			Longitude:   b.Coordinates.Longitude,
			ImageURL:    b.ImageURL,
			URL:         b.URL,
		})
	}
	return out, nil
}
