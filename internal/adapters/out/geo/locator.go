// Package geo resolves delivery addresses to coordinates through an external
// geocoding HTTP service.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// searchResult is one match in the geocoder's response. Coordinates come back
// as strings in the Nominatim wire format.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// HTTPGeoLocator implements GeoLocator against a Nominatim-compatible search
// endpoint.
type HTTPGeoLocator struct {
	baseURL string
	client  *http.Client
}

// NewHTTPGeoLocator creates a locator for the given geocoder base URL.
func NewHTTPGeoLocator(baseURL string) (*HTTPGeoLocator, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &HTTPGeoLocator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}, nil
}

// Locate resolves an address to a geo point. Returns an error when the
// geocoder is unreachable or finds no match; the caller decides whether that
// is fatal.
func (l *HTTPGeoLocator) Locate(ctx context.Context, address string) (kernel.GeoPoint, error) {
	if address == "" {
		return kernel.GeoPoint{}, errs.NewValueIsRequiredError("address")
	}

	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		l.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return kernel.GeoPoint{}, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("geocoder request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return kernel.GeoPoint{}, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("decode geocoder response failed: %w", err)
	}

	if len(results) == 0 {
		return kernel.GeoPoint{}, errs.NewObjectNotFoundError("location for address", address)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("parse latitude failed: %w", err)
	}

	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("parse longitude failed: %w", err)
	}

	return kernel.NewGeoPoint(lat, lng)
}
