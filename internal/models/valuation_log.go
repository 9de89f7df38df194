package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ValuationLog records one prediction served by the pricing service.
// Rows are append-only history: no updates, no soft deletes.
type ValuationLog struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	OriginalPrice  float64   `gorm:"not null" json:"original_price"`
	Age            int       `gorm:"not null" json:"age"`
	Condition      int       `gorm:"not null" json:"condition"`
	BrandTier      int       `gorm:"not null" json:"brand_tier"`
	EstimatedPrice float64   `gorm:"not null" json:"estimated_price"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}

// BeforeCreate hook assigns a time-ordered UUIDv7 to new records.
func (l *ValuationLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		l.ID = id.String()
	}
	return nil
}

// All lists every persisted model, for AutoMigrate.
func All() []interface{} {
	return []interface{}{&ValuationLog{}}
}
