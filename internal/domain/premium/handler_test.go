package premium

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/arogya/arogya/internal/platform/apperr"
)

func newTestServer(scorer Scorer) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperr.HTTPErrorHandler(zerolog.New(os.Stderr))
	NewHandler(NewService(scorer)).RegisterRoutes(e)
	return e
}

func doPredict(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const validBody = `{"age":31,"weight":95,"height":1.70,"income_lpa":10,"smoker":true,"city":"Mumbai","occupation":"private_job"}`

func TestPredict_Returns200WithScalar(t *testing.T) {
	e := newTestServer(scorerFunc(func(context.Context, FeatureRow) (float64, error) {
		return 8475.25, nil
	}))
	rec := doPredict(e, validBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body map[string]float64
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["predicted"] != 8475.25 {
		t.Errorf("predicted = %v, want 8475.25", body["predicted"])
	}
}

func TestPredict_ValidationFailureReturns422(t *testing.T) {
	e := newTestServer(scorerFunc(func(context.Context, FeatureRow) (float64, error) {
		t.Fatal("scorer must not run")
		return 0, nil
	}))
	rec := doPredict(e, `{"age":0,"weight":95,"height":1.70,"income_lpa":10,"smoker":true,"city":"Mumbai","occupation":"private_job"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if !strings.Contains(body["detail"], "age") {
		t.Errorf("detail %q does not name the offending field", body["detail"])
	}
}

func TestPredict_MissingSmokerReturns422(t *testing.T) {
	e := newTestServer(scorerFunc(func(context.Context, FeatureRow) (float64, error) {
		return 0, nil
	}))
	rec := doPredict(e, `{"age":31,"weight":95,"height":1.70,"income_lpa":10,"city":"Mumbai","occupation":"private_job"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 when smoker is absent, got %d", rec.Code)
	}
}

func TestPredict_MalformedBodyReturns400(t *testing.T) {
	e := newTestServer(scorerFunc(func(context.Context, FeatureRow) (float64, error) {
		return 0, nil
	}))
	rec := doPredict(e, `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 on malformed body, got %d", rec.Code)
	}
}

func TestPredict_EndToEndWithLinearScorer(t *testing.T) {
	scorer, err := LoadLinearScorer(writeArtifact(t, testArtifact))
	if err != nil {
		t.Fatalf("LoadLinearScorer: %v", err)
	}
	rec := doPredict(newTestServer(scorer), validBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body map[string]float64
	json.Unmarshal(rec.Body.Bytes(), &body)
	// 1000 + 50*32.87 + 20*10 + 0 + 500 + 300 + 50
	if body["predicted"] != 3693.5 {
		t.Errorf("predicted = %v, want 3693.5", body["predicted"])
	}
}
