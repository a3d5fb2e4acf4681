package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	Track(aggregate any)
}

// Repository stores orders through GORM.
type Repository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewRepository binds the repository to db. Stored and updated orders are
// handed to tracker so their events reach the outbox on commit.
func NewRepository(db *gorm.DB, tracker aggregateTracker) *Repository {
	return &Repository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new order. An order whose id is already stored, including one
// inserted by a concurrent transaction, is left untouched and reported with an
// error wrapping errs.ErrObjectExists; the aggregate is not tracked then, so
// none of its events reach the outbox.
func (r *Repository) Add(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	rec := toRecord(o)
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&rec)
	if res.Error != nil {
		return fmt.Errorf("insert order %s: %w", o.ID(), res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NewObjectExistsError("order", o.ID())
	}

	r.tracker.Track(o)
	return nil
}

// Update overwrites the order row. A missing row yields errs.ErrObjectNotFound.
func (r *Repository) Update(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	rec := toRecord(o)
	res := r.db.WithContext(ctx).
		Model(&orderRecord{}).
		Where("id = ?", rec.ID).
		Updates(map[string]any{
			"courier_id": rec.CourierID,
			"location_x": rec.LocationX,
			"location_y": rec.LocationY,
			"volume":     rec.Volume,
			"status":     rec.Status,
		})
	if res.Error != nil {
		return fmt.Errorf("update order %s: %w", o.ID(), res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", o.ID())
	}

	r.tracker.Track(o)
	return nil
}

// GetByID reads the order without locking it.
func (r *Repository) GetByID(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var rec orderRecord
	err := r.db.WithContext(ctx).Where("id = ?", id.Google()).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	if err != nil {
		return nil, fmt.Errorf("load order %s: %w", id, err)
	}

	return fromRecord(rec)
}

// GetOldestCreated returns ErrObjectNotFound when no created order is left
// or every such order is locked by another transaction.
func (r *Repository) GetOldestCreated(ctx context.Context) (*order.Order, error) {
	var rec orderRecord
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("status = ?", order.StatusCreated.String()).
		Order("seq").
		Limit(1).
		Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("order", "oldest created")
	}
	if err != nil {
		return nil, fmt.Errorf("load oldest created order: %w", err)
	}

	return fromRecord(rec)
}

// GetAllAssigned returns assigned orders in intake order, locked for update.
func (r *Repository) GetAllAssigned(ctx context.Context) ([]*order.Order, error) {
	var recs []orderRecord
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("status = ?", order.StatusAssigned.String()).
		Order("seq").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("load assigned orders: %w", err)
	}

	orders := make([]*order.Order, 0, len(recs))
	for _, rec := range recs {
		o, err := fromRecord(rec)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
