package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestLoggerEmitsServiceField(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "api", Output: &buf})

	logg.Info(context.Background(), "hello")

	line := buf.String()
	if !strings.Contains(line, `"service":"api"`) {
		t.Fatalf("expected service field in %q", line)
	}
	if !strings.Contains(line, `"message":"hello"`) {
		t.Fatalf("expected message in %q", line)
	}
}

func TestLoggerContextFieldsPropagate(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "api", Output: &buf})

	ctx := logg.WithRequestID(context.Background(), "req-1")
	ctx = logg.WithVendorID(ctx, "ven-9")
	logg.Info(ctx, "scoped")

	line := buf.String()
	if !strings.Contains(line, `"request_id":"req-1"`) {
		t.Fatalf("expected request id in %q", line)
	}
	if !strings.Contains(line, `"vendor_id":"ven-9"`) {
		t.Fatalf("expected vendor id in %q", line)
	}
}

func TestParseLevelFallsBackToInfo(t *testing.T) {
	if got := ParseLevel("nonsense"); got.String() != "info" {
		t.Fatalf("expected info fallback, got %s", got)
	}
	if got := ParseLevel("debug"); got.String() != "debug" {
		t.Fatalf("expected debug, got %s", got)
	}
}
