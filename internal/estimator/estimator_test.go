package estimator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarketModel_Estimate(t *testing.T) {
	m := NewMarketModel()

	tests := []struct {
		name string
		in   Features
		want float64
	}{
		{
			name: "new premium item loses nothing",
			in:   Features{OriginalPrice: 100000, Age: 0, Condition: 5, BrandTier: 3},
			want: 100000,
		},
		{
			name: "premium two years good condition",
			// 0.15*2 + 1*0.05 = 0.35
			in:   Features{OriginalPrice: 100000, Age: 2, Condition: 4, BrandTier: 3},
			want: 65000,
		},
		{
			name: "budget one year poor condition",
			// 0.25 + 4*0.05 = 0.45
			in:   Features{OriginalPrice: 10000, Age: 1, Condition: 1, BrandTier: 1},
			want: 5500,
		},
		{
			name: "depreciation capped at ninety percent",
			in:   Features{OriginalPrice: 50000, Age: 10, Condition: 3, BrandTier: 2},
			want: 5000,
		},
		{
			name: "better than new condition gets open box price",
			// condition 7 implies a negative condition loss
			in:   Features{OriginalPrice: 20000, Age: 0, Condition: 7, BrandTier: 3},
			want: 18000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, m.Estimate(tt.in), 1e-6)
		})
	}
}

func TestCorrect(t *testing.T) {
	tests := []struct {
		name       string
		prediction float64
		original   float64
		want       float64
	}{
		{"inside bounds rounds to two decimals", 42000.456, 100000, 42000.46},
		{"at original price is discounted", 100000, 100000, 85000},
		{"above original price is discounted", 120000, 100000, 85000},
		{"negative floors at ten percent", -50, 100000, 10000},
		{"zero stays zero", 0, 100000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Correct(tt.prediction, tt.original))
		})
	}
}

func TestPredict(t *testing.T) {
	// A brand new excellent item estimates at the full price, which the
	// correction then pulls down to 85%.
	got := Predict(NewMarketModel(), Features{OriginalPrice: 80000, Age: 0, Condition: 5, BrandTier: 2})
	assert.Equal(t, 68000.0, got)
}
