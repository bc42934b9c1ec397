package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"servicehub/config"
	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTestGormLogger(t *testing.T, debug bool) (*gormSlogLogger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	cfg := &config.Config{Persistence: &config.PersistenceConfig{SlowQueryThreshold: 50 * time.Millisecond}}
	cfg.Env.Debug = debug

	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

	return l.(*gormSlogLogger), &buf
}

func sqlFn() (string, int64) { return "SELECT 1", 1 }

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("failure is logged with the context logger", func(t *testing.T) {
		l, buf := newTestGormLogger(t, false)
		ctx := deliverycontext.WithLogger(context.Background(), l.logger.With(slog.String("run_id", "run-7")))

		l.Trace(ctx, time.Now(), sqlFn, errors.New("connection reset"))

		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "run_id=run-7")
		assert.Contains(t, buf.String(), "connection reset")
	})

	t.Run("record not found is silent", func(t *testing.T) {
		l, buf := newTestGormLogger(t, false)

		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("slow statement warns", func(t *testing.T) {
		l, buf := newTestGormLogger(t, false)

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		assert.Contains(t, buf.String(), "GORM slow query")
		assert.Contains(t, buf.String(), "level=WARN")
	})

	t.Run("fast statement only in debug mode", func(t *testing.T) {
		quiet, quietBuf := newTestGormLogger(t, false)
		quiet.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Empty(t, quietBuf.String())

		verbose, verboseBuf := newTestGormLogger(t, true)
		verbose.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Contains(t, verboseBuf.String(), "sql=\"SELECT 1\"")
	})
}
