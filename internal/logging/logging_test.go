package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	t.Run("Should map known names", func(t *testing.T) {
		assert.Equal(t, charmlog.DebugLevel, ParseLevel("debug"))
		assert.Equal(t, charmlog.InfoLevel, ParseLevel(" INFO "))
		assert.Equal(t, charmlog.ErrorLevel, ParseLevel("error"))
	})
	t.Run("Should fall back to warn", func(t *testing.T) {
		assert.Equal(t, charmlog.WarnLevel, ParseLevel(""))
		assert.Equal(t, charmlog.WarnLevel, ParseLevel("verbose"))
	})
}

func TestNew(t *testing.T) {
	t.Run("Should filter below configured level", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(Config{Level: "info", Output: &buf})
		l.Debug("hidden")
		l.Info("shown", "k", "v")
		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "shown")
		assert.Contains(t, out, "k=v")
	})
	t.Run("Should emit JSON when requested", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(Config{Level: "debug", Output: &buf, JSON: true})
		l.With("entity", "department").Warn("careful")
		line := strings.TrimSpace(buf.String())
		assert.True(t, strings.HasPrefix(line, "{"), line)
		assert.Contains(t, line, `"entity":"department"`)
	})
}

func TestFromContext(t *testing.T) {
	t.Run("Should return a usable logger without one in context", func(t *testing.T) {
		l := FromContext(context.Background())
		assert.NotNil(t, l)
		l.Error("discarded")
	})
	t.Run("Should reuse one no-op logger", func(t *testing.T) {
		a := FromContext(context.Background())
		b := FromContext(context.TODO())
		assert.True(t, a == b, "expected the shared no-op logger")
	})
	t.Run("Should return the stored logger", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := WithContext(context.Background(), New(Config{Level: "debug", Output: &buf}))
		FromContext(ctx).Debug("from ctx")
		assert.Contains(t, buf.String(), "from ctx")
	})
}
