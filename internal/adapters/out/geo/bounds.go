// Package geo resolves street addresses to grid locations. The Google Maps
// geocoder returns coordinates that are projected onto the grid through a
// configured latitude/longitude box.
package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrOutsideServiceArea is returned for a geocoded point that lies outside Bounds.
var ErrOutsideServiceArea = errors.New("address is outside the service area")

// Bounds is the geographic box covered by the grid: South/North are latitudes,
// West/East are longitudes. The south-west corner maps to (1,1).
type Bounds struct {
	South float64
	West  float64
	North float64
	East  float64
}

// ParseBounds reads "south,west,north,east".
func ParseBounds(s string) (Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Bounds{}, errs.NewValueIsInvalidErrorWithCause("bounds",
			fmt.Errorf("want south,west,north,east, got %q", s))
	}

	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Bounds{}, errs.NewValueIsInvalidErrorWithCause("bounds", err)
		}
		v[i] = f
	}

	b := Bounds{South: v[0], West: v[1], North: v[2], East: v[3]}
	if err := b.Validate(); err != nil {
		return Bounds{}, err
	}
	return b, nil
}

// Validate requires increasing, in-range latitude and longitude intervals.
func (b Bounds) Validate() error {
	if b.South < -90 || b.North > 90 || b.South >= b.North {
		return errs.NewValueIsInvalidErrorWithCause("bounds",
			fmt.Errorf("latitudes %v..%v are not an increasing range", b.South, b.North))
	}
	if b.West < -180 || b.East > 180 || b.West >= b.East {
		return errs.NewValueIsInvalidErrorWithCause("bounds",
			fmt.Errorf("longitudes %v..%v are not an increasing range", b.West, b.East))
	}
	return nil
}

// ToLocation splits the box into equal cells, one per grid point.
func (b Bounds) ToLocation(lat, lng float64) (kernel.Location, error) {
	if lat < b.South || lat > b.North || lng < b.West || lng > b.East {
		return kernel.Location{}, fmt.Errorf("%w: %w: %.6f,%.6f",
			errs.NewValueIsInvalidError("street"), ErrOutsideServiceArea, lat, lng)
	}

	x := cell(lng, b.West, b.East, kernel.LocationMinX, kernel.LocationMaxX)
	y := cell(lat, b.South, b.North, kernel.LocationMinY, kernel.LocationMaxY)
	return kernel.NewLocation(x, y)
}

func cell(v, lo, hi float64, minC, maxC kernel.Coordinate) kernel.Coordinate {
	cells := float64(maxC - minC + 1)
	idx := int(math.Floor((v - lo) / (hi - lo) * cells))
	if idx >= int(cells) {
		idx = int(cells) - 1
	}
	return minC + kernel.Coordinate(idx)
}
