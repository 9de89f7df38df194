package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"smartval/internal/estimator"
	"smartval/internal/handlers"
	"smartval/internal/logger"
	"smartval/internal/middleware"
	"smartval/internal/pricing"
	"smartval/internal/services"
	"smartval/internal/testutil"
	"smartval/internal/validator"
)

const testMaxImageBytes = 1 << 10

// testApp holds the valuation API wired to a live pricing service.
type testApp struct {
	DB      *gorm.DB
	Pricing *httptest.Server
	Router  *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

func fixedNow() time.Time { return time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC) }

// setupApp starts a pricing service backed by an isolated in-memory SQLite
// and a valuation API that calls it over HTTP.
func setupApp(t *testing.T, historyKey string) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	pricingRouter := gin.New()
	pricingRouter.Use(gin.Recovery())
	pricingRouter.Use(middleware.ErrorHandler())
	handlers.NewPredictionHandler(services.NewPredictionService(db, estimator.NewMarketModel())).
		RegisterRoutes(pricingRouter, middleware.APIKeyAuth(historyKey))
	pricingServer := httptest.NewServer(pricingRouter)
	t.Cleanup(pricingServer.Close)

	client := pricing.NewClient(pricingServer.URL, "", pricingServer.Client())
	valuationService := services.NewValuationService(client, fixedNow, testMaxImageBytes)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())
	handlers.NewValuationHandler(valuationService, testMaxImageBytes).RegisterRoutes(router.Group("/api/v1"))

	return &testApp{DB: db, Pricing: pricingServer, Router: router}
}

// request makes an HTTP request to the valuation API.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// history fetches the pricing service history over HTTP.
func (app *testApp) history(t *testing.T, apiKey string) (int, map[string]interface{}) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, app.Pricing.URL+"/history", http.NoBody)
	if err != nil {
		t.Fatal(err)
	}
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	resp, err := app.Pricing.Client().Do(req)
	if err != nil {
		t.Fatalf("history request failed: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode history: %v", err)
	}
	return resp.StatusCode, body
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseJSON(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got %s", rec.Body.String())
	}
	return errObj["code"].(string)
}
