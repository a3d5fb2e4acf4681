package queries

import (
	"context"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllCouriersQueryHandler reads couriers from the couriers table.
type GetAllCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCouriersQueryHandler reads through db.
func NewGetAllCouriersQueryHandler(db *gorm.DB) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{db: db}
}

// Handle lists every courier ordered by name, then id.
func (h GetAllCouriersQueryHandler) Handle(ctx context.Context, q GetAllCouriersQuery) ([]CourierView, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	var rows []struct {
		ID        uuid.UUID
		Name      string
		LocationX kernel.Coordinate
		LocationY kernel.Coordinate
	}
	err := h.db.WithContext(ctx).
		Table("couriers").
		Select("id, name, location_x, location_y").
		Order("name, id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list couriers: %w", err)
	}

	views := make([]CourierView, 0, len(rows))
	for _, row := range rows {
		id, loc, err := toIDAndLocation(row.ID, row.LocationX, row.LocationY)
		if err != nil {
			return nil, err
		}
		views = append(views, CourierView{ID: id, Name: row.Name, Location: loc})
	}

	return views, nil
}

func toIDAndLocation(rawID uuid.UUID, x, y kernel.Coordinate) (kernel.UUID, kernel.Location, error) {
	id, err := kernel.UUIDFromGoogle(rawID)
	if err != nil {
		return kernel.UUID{}, kernel.Location{}, err
	}

	loc, err := kernel.NewLocation(x, y)
	if err != nil {
		return kernel.UUID{}, kernel.Location{}, fmt.Errorf("row %s: %w", id, err)
	}

	return id, loc, nil
}
