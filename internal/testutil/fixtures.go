package testutil

import (
	"testing"
	"time"

	"smartval/internal/models"

	"gorm.io/gorm"
)

// CreateTestValuationLog records a prediction with the given estimate.
func CreateTestValuationLog(t *testing.T, db *gorm.DB, estimatedPrice float64) *models.ValuationLog {
	t.Helper()
	return CreateTestValuationLogAt(t, db, estimatedPrice, time.Now())
}

// CreateTestValuationLogAt records a prediction with an explicit creation time.
func CreateTestValuationLogAt(t *testing.T, db *gorm.DB, estimatedPrice float64, createdAt time.Time) *models.ValuationLog {
	t.Helper()

	log := &models.ValuationLog{
		OriginalPrice:  100000,
		Age:            2,
		Condition:      4,
		BrandTier:      2,
		EstimatedPrice: estimatedPrice,
		CreatedAt:      createdAt,
	}
	if err := db.Create(log).Error; err != nil {
		t.Fatalf("failed to create test valuation log: %v", err)
	}
	return log
}
