package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kenf/property-management/internal/api/middleware"
	"github.com/kenf/property-management/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/boom":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.Write([]byte("ok"))
		}
	}))

	t.Run("successful request logs at info", func(t *testing.T) {
		buf.Reset()
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, testutil.UnauthenticatedRequest(t, http.MethodGet, "/ok", nil))

		line := buf.String()
		assert.Contains(t, line, `"level":"INFO"`)
		assert.Contains(t, line, `"status":200`)
		assert.Contains(t, line, `"path":"/ok"`)
	})

	t.Run("server error logs at warn", func(t *testing.T) {
		buf.Reset()
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, testutil.UnauthenticatedRequest(t, http.MethodGet, "/boom", nil))

		line := buf.String()
		assert.Contains(t, line, `"level":"WARN"`)
		assert.Contains(t, line, `"status":500`)
	})
}
