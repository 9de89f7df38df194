package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "smartval/internal/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doRequest(r *gin.Engine, method string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/test", http.NoBody)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseBody(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got %s", rec.Body.String())
	}
	return errObj["code"].(string)
}

func okHandler(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) }

func TestAPIKeyAuth(t *testing.T) {
	tests := []struct {
		name          string
		configuredKey string
		requestKey    string
		wantStatus    int
	}{
		{"valid_api_key", "secret", "secret", http.StatusOK},
		{"invalid_api_key", "secret", "wrong", http.StatusUnauthorized},
		{"missing_api_key", "secret", "", http.StatusUnauthorized},
		{"open_when_not_configured", "", "", http.StatusOK},
		{"open_ignores_supplied_key", "", "anything", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/test", APIKeyAuth(tt.configuredKey), okHandler)

			headers := map[string]string{}
			if tt.requestKey != "" {
				headers["X-API-Key"] = tt.requestKey
			}
			rec := doRequest(r, http.MethodGet, headers)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantStatus == http.StatusUnauthorized && errorCode(t, rec) != "INVALID_API_KEY" {
				t.Errorf("expected INVALID_API_KEY, got %s", rec.Body.String())
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	t.Run("renders_app_error", func(t *testing.T) {
		r := gin.New()
		r.Use(ErrorHandler())
		r.GET("/test", func(c *gin.Context) {
			_ = c.Error(apperrors.Wrap(apperrors.ErrPricingUnavailable, fmt.Errorf("dial tcp: refused")))
		})

		rec := doRequest(r, http.MethodGet, nil)

		if rec.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", rec.Code)
		}
		if errorCode(t, rec) != "PRICING_UNAVAILABLE" {
			t.Errorf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("hides_unexpected_error", func(t *testing.T) {
		r := gin.New()
		r.Use(ErrorHandler())
		r.GET("/test", func(c *gin.Context) {
			_ = c.Error(fmt.Errorf("secret detail"))
		})

		rec := doRequest(r, http.MethodGet, nil)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		if errorCode(t, rec) != "INTERNAL_ERROR" {
			t.Errorf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("leaves_written_response_alone", func(t *testing.T) {
		r := gin.New()
		r.Use(ErrorHandler())
		r.GET("/test", func(c *gin.Context) {
			_ = c.Error(fmt.Errorf("already handled"))
			c.JSON(http.StatusTeapot, gin.H{"status": "teapot"})
		})

		rec := doRequest(r, http.MethodGet, nil)

		if rec.Code != http.StatusTeapot {
			t.Fatalf("expected 418, got %d", rec.Code)
		}
	})
}

func TestRequestLogging(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging("test"))
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, RequestID(c))
	})

	rec := doRequest(r, http.MethodGet, nil)
	id := rec.Header().Get("X-Request-ID")
	if id == "" {
		t.Fatal("expected X-Request-ID header")
	}
	if rec.Body.String() != id {
		t.Errorf("expected request ID %q in context, got %q", id, rec.Body.String())
	}

	rec = doRequest(r, http.MethodGet, map[string]string{"X-Request-ID": "upstream-id"})
	if rec.Header().Get("X-Request-ID") != "upstream-id" {
		t.Errorf("expected upstream request ID to be kept, got %q", rec.Header().Get("X-Request-ID"))
	}
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.GET("/test", okHandler)
	r.OPTIONS("/test", okHandler)

	rec := doRequest(r, http.MethodOptions, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected allow-origin header")
	}

	rec = doRequest(r, http.MethodGet, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
