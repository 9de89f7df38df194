package services

import (
	"context"

	"smartval/internal/estimator"
	"smartval/internal/models"
	"smartval/internal/pagination"
	"smartval/internal/pricing"
	"smartval/internal/valuation"
)

// PricingClient is the remote pricing service as the valuation shell uses it.
type PricingClient interface {
	Predict(ctx context.Context, in pricing.PredictRequest) (*pricing.PredictResponse, error)
}

// ValuationServicer defines the contract for collecting a valuation form,
// pricing it remotely and projecting it locally.
type ValuationServicer interface {
	Submit(ctx context.Context, sessionKey string, form ValuationForm) (*Submission, error)
	Options() valuation.FormOptions
}

// PredictionServicer defines the contract for the pricing service's
// prediction and history operations.
type PredictionServicer interface {
	Predict(features estimator.Features) (*models.ValuationLog, error)
	GetHistory(page pagination.PageRequest) (*pagination.PageResponse[models.ValuationLog], error)
}
