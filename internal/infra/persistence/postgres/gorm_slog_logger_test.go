package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ubishop/config"
)

func newBufferedGormLogger(debug bool) (*bytes.Buffer, logger.Interface) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return buf, newGormSlogLogger(base, cfg)
}

func sqlFn() (string, int64) { return "SELECT 1", 1 }

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		want    string
		notWant string
	}{
		{"failed query", false, time.Now(), errors.New("boom"), "query failed", ""},
		{"record not found is silent", false, time.Now(), gorm.ErrRecordNotFound, "", "query failed"},
		{"slow query", false, time.Now().Add(-time.Second), nil, "slow query", ""},
		{"fast query hidden outside debug", false, time.Now(), nil, "", "SELECT 1"},
		{"fast query shown in debug", true, time.Now(), nil, "SELECT 1", "slow query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			buf, l := newBufferedGormLogger(tt.debug)
			l.Trace(context.Background(), tt.begin, sqlFn, tt.err)

			if tt.want != "" {
				assert.Contains(t, buf.String(), tt.want)
			} else {
				assert.NotContains(t, buf.String(), "SELECT 1")
			}
			if tt.notWant != "" {
				assert.NotContains(t, buf.String(), tt.notWant)
			}
		})
	}
}

func TestGormSlogLogger_LogModeSilent(t *testing.T) {
	t.Parallel()

	buf, l := newBufferedGormLogger(true)
	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	l.LogMode(logger.Silent).Error(context.Background(), "oops %d", 1)
	assert.Empty(t, buf.String())

	l.Warn(context.Background(), "pool %s", "busy")
	assert.Contains(t, buf.String(), "pool busy")
}
