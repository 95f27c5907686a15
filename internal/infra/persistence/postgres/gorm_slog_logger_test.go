package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"directory/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSlowThresholdFor(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
		want    time.Duration
	}{
		{name: "no timeout", timeout: 0, want: defaultGormSlowThreshold},
		{name: "large budget", timeout: 5 * time.Second, want: defaultGormSlowThreshold},
		{name: "tight budget", timeout: 400 * time.Millisecond, want: 100 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Persistence.QueryTimeout = tt.timeout
			assert.Equal(t, tt.want, slowThresholdFor(cfg))
		})
	}
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	gormLogger := newGormSlogLogger(base, &config.Config{})

	sqlFn := func() (string, int64) { return `SELECT * FROM "users"`, 0 }

	gormLogger.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "record not found is expected on lookups")

	gormLogger.Trace(context.Background(), time.Now(), sqlFn, context.DeadlineExceeded)
	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "timedOut=true")
	assert.Contains(t, buf.String(), "component=gorm")

	buf.Reset()
	gormLogger.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String(), "fast queries are not logged at warn level")

	gormLogger.LogMode(logger.Info).Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM query")
}

func TestNewGormSlogLogger_NilLogger(t *testing.T) {
	assert.Equal(t, logger.Discard, newGormSlogLogger(nil, nil))
}
