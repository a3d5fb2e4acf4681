// Package outboxrepo stores serialized domain events in outbox_messages so they
// are committed in the same transaction as the aggregates that raised them.
package outboxrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type messageRecord struct {
	ID          uuid.UUID  `gorm:"column:id;primaryKey"`
	Name        string     `gorm:"column:name"`
	AggregateID uuid.UUID  `gorm:"column:aggregate_id"`
	Payload     []byte     `gorm:"column:payload;type:jsonb"`
	OccurredAt  time.Time  `gorm:"column:occurred_at"`
	ProcessedAt *time.Time `gorm:"column:processed_at"`
}

// TableName maps the record to the outbox_messages table.
func (messageRecord) TableName() string {
	return "outbox_messages"
}

// Repository reads and writes outbox messages through GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds the repository to db, usually an open transaction.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Append serializes events with encoding/json and inserts them as pending messages.
func (r *Repository) Append(ctx context.Context, events []kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	recs := make([]messageRecord, 0, len(events))
	for _, e := range events {
		payload, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", e.EventName(), err)
		}

		recs = append(recs, messageRecord{
			ID:          e.EventID().Google(),
			Name:        e.EventName(),
			AggregateID: e.AggregateID().Google(),
			Payload:     payload,
			OccurredAt:  e.OccurredAt(),
		})
	}

	if err := r.db.WithContext(ctx).Create(&recs).Error; err != nil {
		return fmt.Errorf("insert outbox messages: %w", err)
	}

	return nil
}

// GetPending returns up to limit unprocessed messages, oldest first.
// Rows locked by another relay are skipped.
func (r *Repository) GetPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var recs []messageRecord
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("processed_at IS NULL").
		Order("occurred_at").
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("load pending outbox messages: %w", err)
	}

	msgs := make([]ports.OutboxMessage, 0, len(recs))
	for _, rec := range recs {
		id, err := kernel.UUIDFromGoogle(rec.ID)
		if err != nil {
			return nil, err
		}
		aggregateID, err := kernel.UUIDFromGoogle(rec.AggregateID)
		if err != nil {
			return nil, err
		}

		msgs = append(msgs, ports.OutboxMessage{
			ID:          id,
			Name:        rec.Name,
			AggregateID: aggregateID,
			Payload:     rec.Payload,
			OccurredAt:  rec.OccurredAt,
		})
	}

	return msgs, nil
}

// MarkProcessed stamps processed_at. A missing or already processed message
// yields errs.ErrObjectNotFound.
func (r *Repository) MarkProcessed(ctx context.Context, id kernel.UUID, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&messageRecord{}).
		Where("id = ? AND processed_at IS NULL", id.Google()).
		Update("processed_at", at)
	if res.Error != nil {
		return fmt.Errorf("mark outbox message %s processed: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox message", id)
	}

	return nil
}
