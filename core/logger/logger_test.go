package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inky/core/logger"
)

func TestNew_TextFormatter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Debug("hidden")
	log.Info("shown", logger.Tag("row"))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "tag=row")
}

func TestNew_Production(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithProduction("inky"), logger.WithOutput(&buf))
	log.Info("converted", logger.Count("components", 3))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "converted", record["msg"])
	assert.Equal(t, "inky", record["service"])
	assert.Equal(t, "production", record["env"])
	assert.EqualValues(t, 3, record["components"])
}

func TestNew_Development(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithDevelopment("inky"),
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("run", "1")),
	)
	log.Debug("step")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "service=inky")
	assert.Contains(t, buf.String(), "run=1")
}

func TestNew_Formatters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithTextFormatter(),
		logger.WithLevel(slog.LevelWarn),
		logger.WithOutput(nil),
		logger.WithOutput(&buf),
	)
	log.Info("skipped")
	log.Warn("kept")

	assert.NotContains(t, buf.String(), "skipped")
	assert.Contains(t, buf.String(), "msg=kept")
}

func TestNop(t *testing.T) {
	t.Parallel()
	assert.NotPanics(t, func() { logger.Nop().Error("nothing") })
}

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestElapsed(t *testing.T) {
	t.Parallel()
	attr := logger.Elapsed(time.Now().Add(-time.Second))
	require.Equal(t, "elapsed", attr.Key)
	assert.GreaterOrEqual(t, attr.Value.Duration(), time.Second)
}

func TestStringAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		attr slog.Attr
		key  string
		val  string
	}{
		{name: "component", attr: logger.Component("blockGrid"), key: "component", val: "blockGrid"},
		{name: "tag", attr: logger.Tag("block-grid"), key: "tag", val: "block-grid"},
		{name: "event", attr: logger.Event("converted"), key: "event", val: "converted"},
		{name: "path", attr: logger.Path("a.html"), key: "path", val: "a.html"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.val, tt.attr.Value.String())
		})
	}

	assert.True(t, logger.Component("").Equal(slog.Attr{}))
	assert.True(t, logger.Tag("").Equal(slog.Attr{}))
	assert.True(t, logger.Path("").Equal(slog.Attr{}))
}

func TestCount(t *testing.T) {
	t.Parallel()
	attr := logger.Count("components", 4)
	assert.Equal(t, "components", attr.Key)
	assert.Equal(t, int64(4), attr.Value.Int64())
}
