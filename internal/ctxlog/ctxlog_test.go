package ctxlog_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/reoring/trunkconf/internal/ctxlog"
)

func TestFromContext(t *testing.T) {
	if got := ctxlog.FromContext(context.Background()); got != slog.Default() {
		t.Fatalf("expected slog.Default() without a logger in context")
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := ctxlog.WithLogger(context.Background(), logger)
	ctxlog.FromContext(ctx).Info("hello", "field", "dist")
	if !strings.Contains(buf.String(), "field=dist") {
		t.Fatalf("logger from context not used: %q", buf.String())
	}
}
