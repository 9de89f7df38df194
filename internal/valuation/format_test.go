package valuation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRupee(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{12345, "₹12,345"},
		{100000, "₹1,00,000"},
		{125000, "₹1,25,000"},
		{54984, "₹54,984"},
		{10000000, "₹1,00,00,000"},
		{123456789, "₹12,34,56,789"},
		{-5000, "-₹5,000"},
		{math.MinInt64, "-₹92,23,37,20,36,85,47,75,808"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRupee(tt.amount), "amount %d", tt.amount)
	}
}

func TestDepreciatedPercent(t *testing.T) {
	assert.Equal(t, 45, DepreciatedPercent(54984, 100000))
	assert.Equal(t, 58, DepreciatedPercent(42000, 100000))
	assert.Equal(t, 0, DepreciatedPercent(100000, 100000))
	assert.Equal(t, 0, DepreciatedPercent(0, 0))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "1 year", AgeLabel(1))
	assert.Equal(t, "0 years", AgeLabel(0))
	assert.Equal(t, "4 years", AgeLabel(4))

	assert.Equal(t, "25% / year", RateLabel(0.25))
	assert.Equal(t, "12% / year", RateLabel(0.12))

	assert.Equal(t, "0.85x × 1.15x", MultiplierLabel(0.85, 1.15))
	assert.Equal(t, "1x × 1x", MultiplierLabel(1.0, 1.0))

	assert.Equal(t, "Mid Range", Label("mid-range"))
	assert.Equal(t, "Electronics", Label("electronics"))
}

func TestOptions(t *testing.T) {
	opts := Options(2026)

	assert.Len(t, opts.Categories, 3)
	assert.Len(t, opts.Conditions, 4)
	assert.Len(t, opts.BrandTiers, 3)
	assert.Equal(t, Option{Value: "mid-range", Label: "Mid Range"}, opts.BrandTiers[1])

	assert.Len(t, opts.PurchaseYears, PurchaseYearSpan)
	assert.Equal(t, 2026, opts.PurchaseYears[0])
	assert.Equal(t, 1997, opts.PurchaseYears[PurchaseYearSpan-1])
}
