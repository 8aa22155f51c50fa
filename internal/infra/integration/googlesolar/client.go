// Package googlesolar geocodes an address and reads the Google Solar API
// building insights for the closest rooftop.
package googlesolar

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/liv8solar/solar-leads/internal/infra/integration"
)

const (
	service = "google_solar"

	DefaultGeocodeURL  = "https://maps.googleapis.com/maps/api/geocode/json"
	DefaultInsightsURL = "https://solar.googleapis.com/v1/buildingInsights:findClosest"
)

type Client struct {
	HTTPClient  *http.Client
	APIKey      string
	GeocodeURL  string
	InsightsURL string
}

func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		HTTPClient:  integration.NewHTTPClient(timeout),
		APIKey:      apiKey,
		GeocodeURL:  DefaultGeocodeURL,
		InsightsURL: DefaultInsightsURL,
	}
}

func (c *Client) Configured() bool {
	return c != nil && c.APIKey != ""
}

func (c *Client) Geocode(ctx context.Context, address string) (*GeocodeResult, error) {
	if !c.Configured() {
		return nil, integration.ErrNotConfigured
	}

	q := url.Values{}
	q.Set("address", address)
	q.Set("key", c.APIKey)

	var resp geocodeResponse
	if err := integration.DoJSON(ctx, c.HTTPClient, service, http.MethodGet, c.GeocodeURL+"?"+q.Encode(), nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "OK" || len(resp.Results) == 0 {
		return nil, fmt.Errorf("%s: geocoding failed for %q: status %s", service, address, resp.Status)
	}

	r := resp.Results[0]
	return &GeocodeResult{
		Lat:              r.Geometry.Location.Lat,
		Lng:              r.Geometry.Location.Lng,
		FormattedAddress: r.FormattedAddress,
		PlaceID:          r.PlaceID,
	}, nil
}

// BuildingInsights asks for HIGH quality imagery and falls back to MEDIUM
// when none exists.
func (c *Client) BuildingInsights(ctx context.Context, lat, lng float64) (*BuildingInsights, error) {
	if !c.Configured() {
		return nil, integration.ErrNotConfigured
	}

	b, err := c.findClosest(ctx, lat, lng, "HIGH")
	if integration.IsStatus(err, http.StatusNotFound) {
		b, err = c.findClosest(ctx, lat, lng, "MEDIUM")
		if err != nil {
			return nil, fmt.Errorf("%s: no solar data for lat %f lng %f: %w", service, lat, lng, err)
		}
	}
	return b, err
}

func (c *Client) findClosest(ctx context.Context, lat, lng float64, quality string) (*BuildingInsights, error) {
	u := fmt.Sprintf("%s?location.latitude=%.6f&location.longitude=%.6f&requiredQuality=%s&key=%s",
		c.InsightsURL, lat, lng, quality, url.QueryEscape(c.APIKey))

	var b BuildingInsights
	if err := integration.DoJSON(ctx, c.HTTPClient, service, http.MethodGet, u, nil, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) InsightsForAddress(ctx context.Context, address string) (*Summary, error) {
	geo, b, err := c.lookup(ctx, address)
	if err != nil {
		return nil, err
	}
	s := Summarize(*geo, b)
	return &s, nil
}

func (c *Client) InsightsForBill(ctx context.Context, address string, monthlyBill float64) (*Summary, error) {
	geo, b, err := c.lookup(ctx, address)
	if err != nil {
		return nil, err
	}
	s := MatchBill(*geo, b, monthlyBill)
	return &s, nil
}

func (c *Client) lookup(ctx context.Context, address string) (*GeocodeResult, *BuildingInsights, error) {
	geo, err := c.Geocode(ctx, address)
	if err != nil {
		return nil, nil, err
	}
	b, err := c.BuildingInsights(ctx, geo.Lat, geo.Lng)
	if err != nil {
		return nil, nil, err
	}
	return geo, b, nil
}
