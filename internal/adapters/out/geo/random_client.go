package geo

import (
	"context"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// RandomClient ignores the address and returns a random grid point. It is
// wired in when no Google Maps API key is configured.
type RandomClient struct{}

// NewRandomClient returns a RandomClient.
func NewRandomClient() RandomClient {
	return RandomClient{}
}

// GetLocation rejects a blank street and otherwise returns a random location.
func (RandomClient) GetLocation(_ context.Context, street string) (kernel.Location, error) {
	if strings.TrimSpace(street) == "" {
		return kernel.Location{}, errs.NewValueIsRequiredError("street")
	}
	return kernel.NewRandomLocation()
}
