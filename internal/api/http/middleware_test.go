package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Naveen122004/portfolio-service/internal/observability"
	apperrors "github.com/Naveen122004/portfolio-service/pkg/util"
)

func newTestApp(metrics *observability.Metrics) *fiber.App {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, 0)
	app.Get("/metrics", metrics.Handler())
	return app
}

func TestErrorMiddlewareMapsDomainErrors(t *testing.T) {
	app := newTestApp(observability.NewMetrics())
	app.Get("/invalid", func(c *fiber.Ctx) error {
		return apperrors.NewValidationError("name", "name is required")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/invalid", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 422 {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}

	var body struct {
		Error struct {
			Code    string         `json:"code"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Code != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %q", body.Error.Code)
	}
	if body.Error.Details["field"] != "name" {
		t.Fatalf("expected field detail, got %v", body.Error.Details)
	}
}

func TestRequestMetricsRecordMappedStatus(t *testing.T) {
	metrics := observability.NewMetrics()
	app := newTestApp(metrics)
	app.Get("/invalid", func(c *fiber.Ctx) error {
		return apperrors.NewValidationError("name", "name is required")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/invalid", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 422 {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}

	scrape, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	raw, err := io.ReadAll(scrape.Body)
	if err != nil {
		t.Fatalf("read scrape: %v", err)
	}
	exposition := string(raw)

	if !strings.Contains(exposition, `http_requests_total{method="GET",path="/invalid",status="422"}`) {
		t.Fatalf("expected request counted with status 422, got:\n%s", exposition)
	}
	if strings.Contains(exposition, `path="/invalid",status="200"`) {
		t.Fatal("failed request must not be counted as 200")
	}
	if !strings.Contains(exposition, `http_request_errors_total{code="VALIDATION_FAILED"`) {
		t.Fatalf("expected error counter for VALIDATION_FAILED, got:\n%s", exposition)
	}
}

func TestPanicRecoveredAsInternalError(t *testing.T) {
	app := newTestApp(observability.NewMetrics())
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("unexpected")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 500 {
		t.Fatalf("expected 500 after panic, got %d", resp.StatusCode)
	}
}
