package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestWithCommonAppendsServiceAndVersion(t *testing.T) {
	attrs := WithCommon(nil, "soccer-prophet", "v1")
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attrs, got %d", len(attrs))
	}
	if attrs[0].Key != FieldService || attrs[0].Value.String() != "soccer-prophet" {
		t.Fatalf("expected service attr, got %+v", attrs[0])
	}
	if attrs[1].Key != FieldVersion || attrs[1].Value.String() != "v1" {
		t.Fatalf("expected version attr, got %+v", attrs[1])
	}
}

func TestWithCommonSkipsEmpty(t *testing.T) {
	attrs := WithCommon([]slog.Attr{{Key: FieldResource, Value: slog.StringValue("matches")}}, "", "")
	if len(attrs) != 1 || attrs[0].Key != FieldResource {
		t.Fatalf("expected original attrs preserved, got %+v", attrs)
	}
}

func TestHelpersAreNilSafe(t *testing.T) {
	Debug(nil, "debug")
	Info(nil, "info")
	Warn(nil, "warn")
	Error(nil, "error", errors.New("boom"))
}

func TestHelpersWriteAtTheirLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	Debug(logger, "resource loaded", FieldResource, "players")
	Info(logger, "view switched", FieldView, "standings")
	Warn(logger, "resource fetch failed")
	Error(logger, "resource load failed", errors.New("boom"))

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", "resource=players",
		"level=INFO", "view=standings",
		"level=WARN",
		"level=ERROR", "error=boom",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}
