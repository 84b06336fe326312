// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"errors"
	"go/parser"
	"go/token"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{"defaults", "", "", false},
		{"debug console", "debug", "console", false},
		{"upper case level", "WARN", "json", false},
		{"error json", "error", "json", false},
		{"unknown level", "verbose", "", true},
		{"unknown format", "info", "xml", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.level, tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestFieldsAndWith(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core))

	l.With(Fields{"query": "cancer"}).Warn("no papers found", Fields{"count": 0})
	l.Error("request failed", Fields{"error": errors.New("boom")})
	l.Debug("plain", nil)

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "cancer", ctx["query"])
	assert.EqualValues(t, 0, ctx["count"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])

	assert.Equal(t, "plain", entries[2].Message)
	assert.Empty(t, entries[2].Context)
}

func TestLevelFiltering(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := FromZap(zap.New(core))

	l.Debug("hidden", nil)
	l.Info("shown", nil)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "shown", logs.All()[0].Message)
}

func TestNopAndSync(t *testing.T) {
	l := Nop()
	l.Info("discarded", Fields{"k": "v"})
	Sync(l)
	Sync(FromZap(zaptest.NewLogger(t)))
}

func TestProductionCodeDoesNotImportTesting(t *testing.T) {
	f, err := parser.ParseFile(token.NewFileSet(), "logging.go", nil, parser.ImportsOnly)
	require.NoError(t, err)
	for _, imp := range f.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		require.NoError(t, err)
		assert.NotEqual(t, "testing", path)
		assert.NotContains(t, path, "zaptest")
	}
}
