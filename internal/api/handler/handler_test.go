package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/agrilink/farm-market/internal/core/ports"
)

// stubRecorder captures activity entries handlers push onto the feed.
type stubRecorder struct {
	entries []ports.ActivityInput
}

func (r *stubRecorder) Record(input ports.ActivityInput) {
	r.entries = append(r.entries, input)
}

// newTestContext builds an echo context with the request validator wired,
// mirroring the router setup.
func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
