package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"directory/config"
	deliverycontext "directory/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when absent", incoming: "", keep: false},
		{name: "propagated from client", incoming: "client-id-1", keep: true},
		{name: "replaced when oversized", incoming: strings.Repeat("x", maxRequestIDLength+1), keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return c.NoContent(http.StatusOK)
			})
			require.NoError(t, handler(c))

			assert.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			if tt.keep {
				assert.Equal(t, tt.incoming, seen)
			} else {
				assert.NotEqual(t, tt.incoming, seen)
			}
		})
	}
}

func TestLoggerMiddleware_DebugOnly(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	run := func(debug bool) {
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/users?x=1", nil), httptest.NewRecorder())
		handler := NewLoggerMiddleware(logger, cfg).Handle(func(c echo.Context) error {
			return c.NoContent(http.StatusNoContent)
		})
		require.NoError(t, handler(c))
	}

	run(false)
	assert.Empty(t, buf.String())

	run(true)
	assert.Contains(t, buf.String(), "HTTP Request")
	assert.Contains(t, buf.String(), "uri=/api/v1/users")
	assert.Contains(t, buf.String(), `query="x=1"`)
}

func TestLoggerMiddleware_UsesRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	c := e.NewContext(req, httptest.NewRecorder())

	handler := NewRequestIDMiddleware(base).Process(
		NewLoggerMiddleware(base, cfg).Handle(func(c echo.Context) error {
			return c.NoContent(http.StatusUnauthorized)
		}),
	)
	require.NoError(t, handler(c))

	assert.Contains(t, buf.String(), "request_id=req-42")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestLevelForStatus(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, levelForStatus(http.StatusCreated))
	assert.Equal(t, slog.LevelWarn, levelForStatus(http.StatusConflict))
	assert.Equal(t, slog.LevelError, levelForStatus(http.StatusInternalServerError))
}
