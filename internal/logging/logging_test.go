package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	attached := New(&buf, "debug")
	fallback := Discard()

	ctx := ContextWithLogger(context.Background(), attached)
	if got := FromContext(ctx, fallback); got != attached {
		t.Error("expected the attached logger")
	}
	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Error("expected the fallback logger")
	}
	if got := FromContext(context.Background(), nil); got != slog.Default() {
		t.Error("expected slog.Default when nothing is attached")
	}

	FromContext(ctx, fallback).Debug("hello", "k", "v")
	if !strings.Contains(buf.String(), "k=v") {
		t.Errorf("expected record in attached logger output, got %q", buf.String())
	}
}
