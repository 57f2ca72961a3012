package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("bad log line %q: %v", line, err)
		}
		out = append(out, rec)
	}
	return out
}

func TestContextHandler_AddsAttempt(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)

	ctx := WithAttempt(context.Background(), "attempt-7")
	logger.InfoContext(ctx, "quiz started")
	logger.Info("no context")

	recs := decodeLines(t, &buf)
	if len(recs) != 2 {
		t.Fatalf("got %d records", len(recs))
	}
	if recs[0]["attempt_id"] != "attempt-7" {
		t.Errorf("attempt_id = %v", recs[0]["attempt_id"])
	}
	if _, ok := recs[1]["attempt_id"]; ok {
		t.Error("record without context should not carry attempt_id")
	}
}

func TestContextHandler_SurvivesWith(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo).With("component", "quiz")

	ctx := WithAttrs(WithAttempt(context.Background(), "a"), slog.Int("question", 3))
	logger.InfoContext(ctx, "advanced")

	recs := decodeLines(t, &buf)
	if recs[0]["attempt_id"] != "a" || recs[0]["component"] != "quiz" || recs[0]["question"] != float64(3) {
		t.Errorf("unexpected record %v", recs[0])
	}
}

func TestWithAttrs_DoesNotAlias(t *testing.T) {
	base := WithAttrs(context.Background(), slog.String("a", "1"), slog.String("b", "2"))
	left := WithAttrs(base, slog.String("c", "left"))
	right := WithAttrs(base, slog.String("c", "right"))

	l := left.Value(slogAttrs).([]slog.Attr)
	r := right.Value(slogAttrs).([]slog.Attr)
	if l[2].Value.String() != "left" || r[2].Value.String() != "right" {
		t.Errorf("derived contexts share storage: %v %v", l, r)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "careerfit.log")

	logger, closer, err := Open(path, "warn")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	logger.Info("dropped")
	logger.Warn("kept")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "dropped") || !strings.Contains(string(data), "kept") {
		t.Errorf("unexpected log contents: %s", data)
	}
}

func TestOpen_Discard(t *testing.T) {
	logger, closer, err := Open("", "info")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	logger.Info("nowhere")
	if err := closer.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
