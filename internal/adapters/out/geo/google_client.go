package geo

import (
	"context"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"googlemaps.github.io/maps"
)

// The maps client reports an unknown address as a status error.
const zeroResults = "ZERO_RESULTS"

type geocoder interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// GoogleClient geocodes with the Google Maps Geocoding API, biased to the
// service area, and projects the first result onto the grid.
type GoogleClient struct {
	geocoder geocoder
	bounds   Bounds
}

// NewGoogleClient uses an already configured maps client.
func NewGoogleClient(client *maps.Client, bounds Bounds) *GoogleClient {
	return &GoogleClient{geocoder: client, bounds: bounds}
}

// NewGoogleClientWithKey builds the maps client from an API key. Extra options
// such as maps.WithBaseURL are applied after the key.
func NewGoogleClientWithKey(apiKey string, bounds Bounds, opts ...maps.ClientOption) (*GoogleClient, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}
	return NewGoogleClient(client, bounds), nil
}

// GetLocation geocodes street. No result yields errs.ErrObjectNotFound and a
// result outside the bounds yields ErrOutsideServiceArea.
func (c *GoogleClient) GetLocation(ctx context.Context, street string) (kernel.Location, error) {
	street = strings.TrimSpace(street)
	if street == "" {
		return kernel.Location{}, errs.NewValueIsRequiredError("street")
	}

	results, err := c.geocoder.Geocode(ctx, &maps.GeocodingRequest{
		Address: street,
		Bounds: &maps.LatLngBounds{
			NorthEast: maps.LatLng{Lat: c.bounds.North, Lng: c.bounds.East},
			SouthWest: maps.LatLng{Lat: c.bounds.South, Lng: c.bounds.West},
		},
	})
	if err != nil && strings.Contains(err.Error(), zeroResults) {
		return kernel.Location{}, errs.NewObjectNotFoundErrorWithCause("street", street, err)
	}
	if err != nil {
		return kernel.Location{}, fmt.Errorf("geocode %q: %w", street, err)
	}
	if len(results) == 0 {
		return kernel.Location{}, errs.NewObjectNotFoundError("street", street)
	}

	point := results[0].Geometry.Location
	return c.bounds.ToLocation(point.Lat, point.Lng)
}
