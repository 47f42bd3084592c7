package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/certresolve/core/logger"
)

func TestError(t *testing.T) {
	t.Run("non-nil error", func(t *testing.T) {
		err := errors.New("something failed")
		attr := logger.Error(err)
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, err, attr.Value.Any())
	})

	t.Run("nil error yields empty attr", func(t *testing.T) {
		attr := logger.Error(nil)
		assert.Equal(t, slog.Attr{}, attr)
	})
}

func TestGroup(t *testing.T) {
	attr := logger.Group("scan",
		slog.String("path", "/etc/certs"),
		slog.Int("files", 3),
	)
	assert.Equal(t, "scan", attr.Key)
	assert.Equal(t, slog.KindGroup, attr.Value.Kind())
	assert.Len(t, attr.Value.Group(), 2)
}

func TestDuration(t *testing.T) {
	attr := logger.Duration(250 * time.Millisecond)
	assert.Equal(t, "duration", attr.Key)
	assert.Equal(t, 250*time.Millisecond, attr.Value.Duration())
}

func TestComponent(t *testing.T) {
	attr := logger.Component("certindex")
	assert.Equal(t, "component", attr.Key)
	assert.Equal(t, "certindex", attr.Value.String())
}
