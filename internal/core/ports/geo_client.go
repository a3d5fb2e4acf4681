package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// GeoClient resolves a street address into a grid location.
type GeoClient interface {
	// GetLocation returns the grid location of street. An unknown street yields an
	// error wrapping errs.ErrObjectNotFound.
	GetLocation(ctx context.Context, street string) (kernel.Location, error)
}
