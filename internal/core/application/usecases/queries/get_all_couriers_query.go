package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

// ErrGetAllCouriersQueryIsNotConstructed is returned by Validate for a zero query.
var ErrGetAllCouriersQueryIsNotConstructed = errors.New("GetAllCouriersQuery must be created via NewGetAllCouriersQuery")

// GetAllCouriersQuery lists every courier.
type GetAllCouriersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCouriersQuery returns a ready query.
func NewGetAllCouriersQuery() GetAllCouriersQuery {
	return GetAllCouriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate rejects a query that did not come from its constructor.
func (q GetAllCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCouriersQueryIsNotConstructed)
}

// CourierView is a courier as shown to dispatch operators.
type CourierView struct {
	ID       kernel.UUID
	Name     string
	Location kernel.Location
}
