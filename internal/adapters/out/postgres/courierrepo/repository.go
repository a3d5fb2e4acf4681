package courierrepo

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	Track(aggregate any)
}

// Repository stores couriers through GORM. Reads lock the courier rows
// (SELECT ... FOR UPDATE) until the surrounding transaction ends.
type Repository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewRepository binds the repository to db. Stored couriers are handed to tracker.
func NewRepository(db *gorm.DB, tracker aggregateTracker) *Repository {
	return &Repository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the courier row and its storage places.
func (r *Repository) Add(ctx context.Context, c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}

	rec := toRecord(c)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&rec).Error; err != nil {
		return fmt.Errorf("insert courier %s: %w", c.ID(), err)
	}
	if err := r.savePlaces(ctx, rec.StoragePlaces); err != nil {
		return err
	}

	r.tracker.Track(c)
	return nil
}

// Update overwrites the courier row and upserts its storage places.
func (r *Repository) Update(ctx context.Context, c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}

	rec := toRecord(c)
	res := r.db.WithContext(ctx).
		Model(&courierRecord{}).
		Where("id = ?", rec.ID).
		Updates(map[string]any{
			"name":       rec.Name,
			"speed":      rec.Speed,
			"location_x": rec.LocationX,
			"location_y": rec.LocationY,
		})
	if res.Error != nil {
		return fmt.Errorf("update courier %s: %w", c.ID(), res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", c.ID())
	}
	if err := r.savePlaces(ctx, rec.StoragePlaces); err != nil {
		return err
	}

	r.tracker.Track(c)
	return nil
}

// GetByID loads the courier with its places ordered by position.
func (r *Repository) GetByID(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var rec courierRecord
	err := r.lockedQuery(ctx).Where("id = ?", id.Google()).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("courier", id)
	}
	if err != nil {
		return nil, fmt.Errorf("load courier %s: %w", id, err)
	}

	return fromRecord(rec)
}

// GetAllWithFreeCapacity returns couriers with an empty place, ordered by id
// so that concurrent ticks lock rows in the same order.
func (r *Repository) GetAllWithFreeCapacity(ctx context.Context) ([]*courier.Courier, error) {
	var recs []courierRecord
	err := r.lockedQuery(ctx).
		Where("EXISTS (SELECT 1 FROM storage_places sp WHERE sp.courier_id = couriers.id AND sp.order_id IS NULL)").
		Order("id").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("load couriers with free capacity: %w", err)
	}

	couriers := make([]*courier.Courier, 0, len(recs))
	for _, rec := range recs {
		c, err := fromRecord(rec)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}

	return couriers, nil
}

func (r *Repository) lockedQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("StoragePlaces", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		})
}

func (r *Repository) savePlaces(ctx context.Context, places []storagePlaceRecord) error {
	if len(places) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"position", "name", "total_volume", "order_id"}),
		}).
		Create(&places).Error
	if err != nil {
		return fmt.Errorf("save storage places: %w", err)
	}

	return nil
}
