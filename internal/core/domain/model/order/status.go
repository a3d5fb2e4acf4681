package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status is the lifecycle stage of an order. It only moves forward:
// Created -> Assigned -> Completed.
type Status string

const (
	// StatusCreated is the status of an order waiting for a courier.
	StatusCreated Status = "created"
	// StatusAssigned is the status of an order carried by a courier.
	StatusAssigned Status = "assigned"
	// StatusCompleted is the final status of a delivered order.
	StatusCompleted Status = "completed"
)

// ParseStatus converts a stored status back into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate rejects values outside the three known statuses.
func (s Status) Validate() error {
	switch s {
	case StatusCreated, StatusAssigned, StatusCompleted:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", string(s)))
	}
}

// String returns the stored form of the status.
func (s Status) String() string {
	return string(s)
}

// Assign returns the status that follows a successful assignment.
func (s Status) Assign() (Status, error) {
	if s != StatusCreated {
		return s, fmt.Errorf("%w: status is %s", ErrOrderAlreadyAssigned, s)
	}
	return StatusAssigned, nil
}

// Complete returns the status that follows a delivery.
func (s Status) Complete() (Status, error) {
	if s != StatusAssigned {
		return s, fmt.Errorf("%w: status is %s", ErrOrderNotAssigned, s)
	}
	return StatusCompleted, nil
}

// validateCourier checks that a courier reference is present exactly in the
// statuses that require one.
func (s Status) validateCourier(hasCourier bool) error {
	needsCourier := s == StatusAssigned || s == StatusCompleted
	if needsCourier == hasCourier {
		return nil
	}
	if needsCourier {
		return errs.NewValueIsRequiredErrorWithCause("courierID", fmt.Errorf("status %s requires a courier", s))
	}
	return errs.NewValueIsInvalidErrorWithCause("courierID", fmt.Errorf("status %s cannot have a courier", s))
}
