package model

import (
	"time"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
)

// TrackingEventModel is the GORM-specific struct for the 'order_tracking_events'
// table. Rows are append-only.
type TrackingEventModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index:idx_tracking_events_on_order"`
	Status      string    `gorm:"type:varchar(20);not null"`
	Description string    `gorm:"type:text;not null"`
	Location    string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (TrackingEventModel) TableName() string {
	return "order_tracking_events"
}

// ToDomain converts the database model to a domain entity.
func (m *TrackingEventModel) ToDomain() entity.TrackingEvent {
	return entity.TrackingEvent{
		ID:          m.ID,
		OrderID:     m.OrderID,
		Status:      m.Status,
		Description: m.Description,
		Location:    m.Location,
		CreatedAt:   m.CreatedAt,
	}
}

// FromTrackingEventDomain converts a domain entity to the database model.
func FromTrackingEventDomain(event *entity.TrackingEvent) *TrackingEventModel {
	return &TrackingEventModel{
		ID:          event.ID,
		OrderID:     event.OrderID,
		Status:      event.Status,
		Description: event.Description,
		Location:    event.Location,
		CreatedAt:   event.CreatedAt,
	}
}
