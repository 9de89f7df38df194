package services

import (
	"gorm.io/gorm"

	apperrors "smartval/internal/errors"
	"smartval/internal/estimator"
	"smartval/internal/models"
	"smartval/internal/pagination"
)

// predictionService prices assets and keeps a history of every prediction.
type predictionService struct {
	db    *gorm.DB
	model estimator.Estimator
}

// NewPredictionService creates a new PredictionServicer.
func NewPredictionService(db *gorm.DB, model estimator.Estimator) PredictionServicer {
	return &predictionService{db: db, model: model}
}

// Predict estimates a resale price for features and records it.
func (s *predictionService) Predict(features estimator.Features) (*models.ValuationLog, error) {
	switch {
	case features.OriginalPrice <= 0:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "original_price must be positive")
	case features.Age < 0:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "age must not be negative")
	case features.Condition < estimator.MinCondition || features.Condition > estimator.MaxCondition:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "condition must be between 1 and 5")
	case features.BrandTier < estimator.MinBrandTier || features.BrandTier > estimator.MaxBrandTier:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "brand_tier must be between 1 and 3")
	}

	log := &models.ValuationLog{
		OriginalPrice:  features.OriginalPrice,
		Age:            features.Age,
		Condition:      features.Condition,
		BrandTier:      features.BrandTier,
		EstimatedPrice: estimator.Predict(s.model, features),
	}
	if err := s.db.Create(log).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return log, nil
}

// GetHistory retrieves a paginated list of past predictions, newest first.
func (s *predictionService) GetHistory(page pagination.PageRequest) (*pagination.PageResponse[models.ValuationLog], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.ValuationLog{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var logs []models.ValuationLog
	if err := s.db.Order("created_at DESC").Order("id DESC").
		Scopes(pagination.Paginate(page)).Find(&logs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(logs, page.Page, page.PageSize, totalItems)
	return &result, nil
}
