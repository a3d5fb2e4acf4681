// Package courierrepo persists the courier aggregate in the couriers and
// storage_places tables.
package courierrepo

import (
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type courierRecord struct {
	ID            uuid.UUID            `gorm:"column:id;primaryKey"`
	Name          string               `gorm:"column:name"`
	Speed         int                  `gorm:"column:speed"`
	LocationX     kernel.Coordinate    `gorm:"column:location_x"`
	LocationY     kernel.Coordinate    `gorm:"column:location_y"`
	StoragePlaces []storagePlaceRecord `gorm:"foreignKey:CourierID"`
}

// TableName maps the record to the couriers table.
func (courierRecord) TableName() string {
	return "couriers"
}

type storagePlaceRecord struct {
	ID          uuid.UUID  `gorm:"column:id;primaryKey"`
	CourierID   uuid.UUID  `gorm:"column:courier_id"`
	Position    int        `gorm:"column:position"`
	Name        string     `gorm:"column:name"`
	TotalVolume int        `gorm:"column:total_volume"`
	OrderID     *uuid.UUID `gorm:"column:order_id"`
}

// TableName maps the record to the storage_places table.
func (storagePlaceRecord) TableName() string {
	return "storage_places"
}

func toRecord(c *courier.Courier) courierRecord {
	places := c.StoragePlaces()
	rec := courierRecord{
		ID:            c.ID().Google(),
		Name:          c.Name(),
		Speed:         c.Speed(),
		LocationX:     c.Location().X(),
		LocationY:     c.Location().Y(),
		StoragePlaces: make([]storagePlaceRecord, 0, len(places)),
	}

	for i, sp := range places {
		var orderID *uuid.UUID
		if id := sp.OrderID(); id != nil {
			g := id.Google()
			orderID = &g
		}

		rec.StoragePlaces = append(rec.StoragePlaces, storagePlaceRecord{
			ID:          sp.ID().Google(),
			CourierID:   rec.ID,
			Position:    i,
			Name:        sp.Name(),
			TotalVolume: sp.TotalVolume(),
			OrderID:     orderID,
		})
	}

	return rec
}

// fromRecord expects StoragePlaces to be loaded in position order.
func fromRecord(rec courierRecord) (*courier.Courier, error) {
	id, err := kernel.UUIDFromGoogle(rec.ID)
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewLocation(rec.LocationX, rec.LocationY)
	if err != nil {
		return nil, err
	}

	places := make([]*courier.StoragePlace, 0, len(rec.StoragePlaces))
	for _, spRec := range rec.StoragePlaces {
		sp, err := storagePlaceFromRecord(spRec)
		if err != nil {
			return nil, err
		}
		places = append(places, sp)
	}

	return courier.RestoreCourier(id, rec.Name, rec.Speed, loc, places)
}

func storagePlaceFromRecord(rec storagePlaceRecord) (*courier.StoragePlace, error) {
	id, err := kernel.UUIDFromGoogle(rec.ID)
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if rec.OrderID != nil {
		oid, err := kernel.UUIDFromGoogle(*rec.OrderID)
		if err != nil {
			return nil, err
		}
		orderID = &oid
	}

	return courier.RestoreStoragePlace(id, rec.Name, rec.TotalVolume, orderID)
}
