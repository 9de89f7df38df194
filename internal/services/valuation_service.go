package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"

	apperrors "smartval/internal/errors"
	"smartval/internal/logger"
	"smartval/internal/pricing"
	"smartval/internal/valuation"
)

// SourcePricingService marks a current value supplied by the pricing service.
const SourcePricingService = "pricing_service"

// ValuationForm is a raw form submission. Nil pointers and blank strings are
// missing fields.
type ValuationForm struct {
	Category      string
	OriginalPrice *float64
	PurchaseYear  *int
	Condition     string
	BrandTier     string
	Image         *Image
}

// Image is an optional photo of the item, kept only for display.
type Image struct {
	Filename string
	Data     []byte
}

// Submission is the outcome of a successful form submission.
//
// Result.CurrentValue is the pricing service's price while every other
// Result field comes from the local engine, so the two can disagree.
// LocalCurrentValue keeps the engine's own figure for comparison.
type Submission struct {
	Input              valuation.Input  `json:"input"`
	Result             valuation.Result `json:"result"`
	LocalCurrentValue  int64            `json:"local_current_value"`
	CurrentValueSource string           `json:"current_value_source"`
	ImageURL           string           `json:"-"`
}

// valuationService orchestrates a form submission.
type valuationService struct {
	client        PricingClient
	now           func() time.Time
	maxImageBytes int64
	gate          *submissionGate
}

// NewValuationService creates a new ValuationServicer. now supplies the
// current year; maxImageBytes bounds the optional photo.
func NewValuationService(client PricingClient, now func() time.Time, maxImageBytes int64) ValuationServicer {
	if now == nil {
		now = time.Now
	}
	return &valuationService{
		client:        client,
		now:           now,
		maxImageBytes: maxImageBytes,
		gate:          newSubmissionGate(),
	}
}

// Submit validates form, requests a price for it and merges that price into
// the local projection. Incomplete or invalid forms never reach the pricing
// service. Only one submission per sessionKey may be outstanding.
func (s *valuationService) Submit(ctx context.Context, sessionKey string, form ValuationForm) (*Submission, error) {
	input, err := form.input()
	if err != nil {
		return nil, err
	}

	var imageURL string
	if form.Image != nil && len(form.Image.Data) > 0 {
		if imageURL, err = s.dataURL(form.Image); err != nil {
			return nil, err
		}
	}

	if !s.gate.acquire(sessionKey) {
		return nil, apperrors.ErrSubmissionInProgress
	}
	defer s.gate.release(sessionKey)

	currentYear := s.now().Year()

	resp, err := s.client.Predict(ctx, pricing.NewPredictRequest(input, currentYear))
	if err != nil {
		logger.Get().Warnw("pricing service request failed",
			"error", err,
			"category", input.Category,
			"purchase_year", input.PurchaseYear,
		)
		return nil, apperrors.Wrap(apperrors.ErrPricingUnavailable, err)
	}

	result := valuation.Calculate(input, currentYear)
	local := result.CurrentValue
	result.CurrentValue = valuation.RoundAmount(resp.EstimatedPrice)

	return &Submission{
		Input:              input,
		Result:             result,
		LocalCurrentValue:  local,
		CurrentValueSource: SourcePricingService,
		ImageURL:           imageURL,
	}, nil
}

// Options returns the form choices for the current year.
func (s *valuationService) Options() valuation.FormOptions {
	return valuation.Options(s.now().Year())
}

func (s *valuationService) dataURL(img *Image) (string, error) {
	if s.maxImageBytes > 0 && int64(len(img.Data)) > s.maxImageBytes {
		return "", apperrors.WithMessage(apperrors.ErrImageTooLarge,
			fmt.Sprintf("Image exceeds the %d byte upload limit", s.maxImageBytes))
	}
	mime := mimetype.Detect(img.Data)
	return "data:" + mime.String() + ";base64," + base64.StdEncoding.EncodeToString(img.Data), nil
}

// input checks that every required field is present and parses the enums.
func (f ValuationForm) input() (valuation.Input, error) {
	category := strings.TrimSpace(f.Category)
	condition := strings.TrimSpace(f.Condition)
	brandTier := strings.TrimSpace(f.BrandTier)
	if category == "" || condition == "" || brandTier == "" || f.OriginalPrice == nil || f.PurchaseYear == nil {
		return valuation.Input{}, apperrors.ErrIncompleteForm
	}

	c, err := valuation.ParseCategory(category)
	if err != nil {
		return valuation.Input{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown category")
	}
	cond, err := valuation.ParseCondition(condition)
	if err != nil {
		return valuation.Input{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown condition")
	}
	tier, err := valuation.ParseBrandTier(brandTier)
	if err != nil {
		return valuation.Input{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown brand tier")
	}

	return valuation.Input{
		OriginalPrice: *f.OriginalPrice,
		PurchaseYear:  *f.PurchaseYear,
		Category:      c,
		Condition:     cond,
		BrandTier:     tier,
	}, nil
}

// submissionGate admits one outstanding submission per session key.
type submissionGate struct {
	mu   sync.Mutex
	busy map[string]struct{}
}

func newSubmissionGate() *submissionGate {
	return &submissionGate{busy: make(map[string]struct{})}
}

func (g *submissionGate) acquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.busy[key]; ok {
		return false
	}
	g.busy[key] = struct{}{}
	return true
}

func (g *submissionGate) release(key string) {
	g.mu.Lock()
	delete(g.busy, key)
	g.mu.Unlock()
}
