// Package orderrepo persists the order aggregate in the orders table.
package orderrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// orderRecord leaves out created_at and seq, both filled in by the database.
type orderRecord struct {
	ID        uuid.UUID         `gorm:"column:id;primaryKey"`
	CourierID *uuid.UUID        `gorm:"column:courier_id"`
	LocationX kernel.Coordinate `gorm:"column:location_x"`
	LocationY kernel.Coordinate `gorm:"column:location_y"`
	Volume    int               `gorm:"column:volume"`
	Status    string            `gorm:"column:status"`
}

// TableName maps the record to the orders table.
func (orderRecord) TableName() string {
	return "orders"
}

func toRecord(o *order.Order) orderRecord {
	var courierID *uuid.UUID
	if id := o.CourierID(); id != nil {
		g := id.Google()
		courierID = &g
	}

	return orderRecord{
		ID:        o.ID().Google(),
		CourierID: courierID,
		LocationX: o.Location().X(),
		LocationY: o.Location().Y(),
		Volume:    o.Volume(),
		Status:    o.Status().String(),
	}
}

func fromRecord(rec orderRecord) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(rec.ID)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if rec.CourierID != nil {
		cid, err := kernel.UUIDFromGoogle(*rec.CourierID)
		if err != nil {
			return nil, err
		}
		courierID = &cid
	}

	loc, err := kernel.NewLocation(rec.LocationX, rec.LocationY)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(rec.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, loc, rec.Volume, status, courierID)
}
