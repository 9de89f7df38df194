package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smartval/internal/valuation"
)

func TestPredict_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/predict" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
		if r.Header.Get("X-API-Key") != "" {
			t.Errorf("expected no API key header")
		}

		var body PredictRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if body.OriginalPrice != 100000 || body.Age != 2 || body.Condition != 4 || body.BrandTier != 3 {
			t.Errorf("unexpected request body: %+v", body)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"estimated_price": 42000.55})
	}))
	defer server.Close()

	c := NewClient(server.URL+"/", "", server.Client())
	resp, err := c.Predict(context.Background(), PredictRequest{OriginalPrice: 100000, Age: 2, Condition: 4, BrandTier: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.EstimatedPrice != 42000.55 {
		t.Errorf("expected 42000.55, got %v", resp.EstimatedPrice)
	}
}

func TestPredict_SendsAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != "test-key" {
			t.Errorf("missing or wrong API key header")
		}
		_, _ = w.Write([]byte(`{"estimated_price": 1}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "test-key", server.Client())
	if _, err := c.Predict(context.Background(), PredictRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPredict_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(server.URL, "", server.Client())
	_, err := c.Predict(context.Background(), PredictRequest{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if want := "unexpected status 500"; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q should contain %q", err.Error(), want)
	}
}

func TestPredict_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "", server.Client())
	_, err := c.Predict(context.Background(), PredictRequest{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if want := "decoding predict response"; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q should contain %q", err.Error(), want)
	}
}

func TestPredict_MissingPrice(t *testing.T) {
	// The reference service answers 200 with an error object when it has no model.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error": "Model not loaded."}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "", server.Client())
	_, err := c.Predict(context.Background(), PredictRequest{})
	if !errors.Is(err, ErrMissingPrice) {
		t.Fatalf("expected ErrMissingPrice, got %v", err)
	}
}

func TestPredict_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewClient(url, "", nil)
	_, err := c.Predict(context.Background(), PredictRequest{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if want := "requesting prediction"; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q should contain %q", err.Error(), want)
	}
}

func TestCodes(t *testing.T) {
	conditions := map[valuation.Condition]int{
		valuation.ConditionExcellent: 5,
		valuation.ConditionGood:      4,
		valuation.ConditionFair:      3,
		valuation.ConditionPoor:      1,
	}
	for _, c := range valuation.Conditions {
		if got := ConditionCode(c); got != conditions[c] {
			t.Errorf("condition %s: expected %d, got %d", c, conditions[c], got)
		}
	}

	tiers := map[valuation.BrandTier]int{
		valuation.BrandTierPremium:  3,
		valuation.BrandTierMidRange: 2,
		valuation.BrandTierBudget:   1,
	}
	for _, b := range valuation.BrandTiers {
		if got := BrandTierCode(b); got != tiers[b] {
			t.Errorf("brand tier %s: expected %d, got %d", b, tiers[b], got)
		}
	}
}

func TestNewPredictRequest(t *testing.T) {
	input := valuation.Input{
		OriginalPrice: 30000,
		PurchaseYear:  2030,
		Category:      valuation.CategoryFurniture,
		Condition:     valuation.ConditionPoor,
		BrandTier:     valuation.BrandTierBudget,
	}

	req := NewPredictRequest(input, 2026)
	if req.Age != 0 {
		t.Errorf("expected future purchase year to clamp age to 0, got %d", req.Age)
	}
	if req.Condition != 1 || req.BrandTier != 1 || req.OriginalPrice != 30000 {
		t.Errorf("unexpected request: %+v", req)
	}

	input.PurchaseYear = 2020
	if got := NewPredictRequest(input, 2026).Age; got != 6 {
		t.Errorf("expected age 6, got %d", got)
	}
}
