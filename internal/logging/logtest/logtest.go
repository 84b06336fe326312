// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logtest provides loggers for tests. Only _test.go files import
// it, which keeps testing and zaptest out of the CLI binary.
package logtest

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/pdiddy/pubmed-fetcher/internal/logging"
)

// New returns a Logger that writes through t.Log at debug level.
func New(t testing.TB) logging.Logger {
	return logging.FromZap(zaptest.NewLogger(t))
}
