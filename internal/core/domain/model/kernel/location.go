package kernel

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Coordinate is a single axis value on the delivery grid.
type Coordinate int8

// Grid bounds, inclusive on both ends. Every Location produced by this package
// lies inside [LocationMinX..LocationMaxX] x [LocationMinY..LocationMaxY].
const (
	// LocationMinX is the leftmost column of the grid.
	LocationMinX Coordinate = 1
	// LocationMinY is the bottom row of the grid.
	LocationMinY Coordinate = 1
	// LocationMaxX is the rightmost column of the grid.
	LocationMaxX Coordinate = 10
	// LocationMaxY is the top row of the grid.
	LocationMaxY Coordinate = 10
)

// ErrLocationIsNotConstructed is returned for a zero Location, which stands for "no location".
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError("location")

// Location represents an immutable point on the delivery grid.
// It is a value object used for courier positions and order destinations.
//
// Key responsibilities:
//   - Holding a validated pair of grid coordinates
//   - Computing the Manhattan distance to another location
//   - Comparing locations by value
//
// Business rules:
//   - Both coordinates lie in [1..10]; out-of-range values are rejected, never clamped
//   - The zero value is invalid and stands for a missing location
//   - Two locations are equal when both coordinates are equal, so == works on constructed values
//
// Example usage:
//
//	from, _ := kernel.NewLocation(1, 1)
//	to, _ := kernel.NewLocation(4, 5)
//	d, err := from.DistanceTo(to) // 7
//	if err != nil {
//	    // to was the zero Location
//	}
type Location struct { //nolint:recvcheck //pointer receivers are used only while constructing
	x     Coordinate
	y     Coordinate
	guard guard.ConstructorGuard
}

// NewLocation validates both coordinates against the grid bounds.
// Out-of-bounds coordinates fail with an error wrapping errs.ErrValueIsOutOfRange;
// when both are wrong both errors are reported.
func NewLocation(x Coordinate, y Coordinate) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setX(x), loc.setY(y)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// NewRandomLocation returns a uniformly distributed point inside the grid bounds.
// It is a placeholder for intake flows that cannot resolve a real address.
func NewRandomLocation() (Location, error) {
	x := Coordinate(rand.IntN(int(LocationMaxX-LocationMinX+1)) + int(LocationMinX)) //nolint:gosec // not security sensitive
	y := Coordinate(rand.IntN(int(LocationMaxY-LocationMinY+1)) + int(LocationMinY)) //nolint:gosec // not security sensitive
	return NewLocation(x, y)
}

// MinLocation is the lower-left corner of the grid.
func MinLocation() Location {
	return Location{x: LocationMinX, y: LocationMinY, guard: guard.NewConstructorGuard()}
}

// MaxLocation is the upper-right corner of the grid.
func MaxLocation() Location {
	return Location{x: LocationMaxX, y: LocationMaxY, guard: guard.NewConstructorGuard()}
}

// Validate reports ErrLocationIsNotConstructed for the zero value.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// X returns the column of the location.
func (l Location) X() Coordinate {
	return l.x
}

// Y returns the row of the location.
func (l Location) Y() Coordinate {
	return l.y
}

// String formats the location as Location(x,y).
func (l Location) String() string {
	return fmt.Sprintf("Location(%d,%d)", l.x, l.y)
}

// IsEqual compares coordinates of two constructed locations.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// DistanceTo returns the Manhattan distance |x1-x2| + |y1-y2|.
// A missing (zero) target is rejected with an error wrapping errs.ErrValueIsRequired.
func (l Location) DistanceTo(other Location) (int, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	return abs(int(l.x)-int(other.x)) + abs(int(l.y)-int(other.y)), nil
}

func (l *Location) setX(x Coordinate) error {
	if x < LocationMinX || x > LocationMaxX {
		return errs.NewValueIsOutOfRangeError("x", x, LocationMinX, LocationMaxX)
	}

	l.x = x
	return nil
}

func (l *Location) setY(y Coordinate) error {
	if y < LocationMinY || y > LocationMaxY {
		return errs.NewValueIsOutOfRangeError("y", y, LocationMinY, LocationMaxY)
	}

	l.y = y
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
