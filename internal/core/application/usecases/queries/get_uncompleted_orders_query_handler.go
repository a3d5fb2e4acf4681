package queries

import (
	"context"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUncompletedOrdersQueryHandler reads undelivered orders from the orders table.
type GetUncompletedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedOrdersQueryHandler reads through db.
func NewGetUncompletedOrdersQueryHandler(db *gorm.DB) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{db: db}
}

// Handle returns not yet delivered orders in intake order.
func (h GetUncompletedOrdersQueryHandler) Handle(ctx context.Context, q GetUncompletedOrdersQuery) ([]OrderView, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	var rows []struct {
		ID        uuid.UUID
		LocationX kernel.Coordinate
		LocationY kernel.Coordinate
	}
	err := h.db.WithContext(ctx).
		Table("orders").
		Select("id, location_x, location_y").
		Where("status <> ?", order.StatusCompleted.String()).
		Order("seq").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list uncompleted orders: %w", err)
	}

	views := make([]OrderView, 0, len(rows))
	for _, row := range rows {
		id, loc, err := toIDAndLocation(row.ID, row.LocationX, row.LocationY)
		if err != nil {
			return nil, err
		}
		views = append(views, OrderView{ID: id, Location: loc})
	}

	return views, nil
}
