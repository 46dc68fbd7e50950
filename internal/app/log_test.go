package app

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"
)

func TestJournalHandler_Handle(t *testing.T) {
	ts := time.Date(2026, 6, 15, 14, 30, 45, 0, time.UTC)

	tests := []struct {
		name    string
		opID    string
		level   slog.Level
		message string
		attrs   []slog.Attr
		want    string
	}{
		{
			name:    "basic info message",
			opID:    "op-123",
			level:   slog.LevelInfo,
			message: "entry appended",
			want:    "2026-06-15T14:30:45Z\tINFO\top-123\tentry appended\n",
		},
		{
			name:    "warn level",
			opID:    "op-456",
			level:   slog.LevelWarn,
			message: "corrupt document",
			want:    "2026-06-15T14:30:45Z\tWARN\top-456\tcorrupt document\n",
		},
		{
			name:    "with record attrs",
			opID:    "op-789",
			level:   slog.LevelInfo,
			message: "entry appended",
			attrs:   []slog.Attr{slog.String("user", "alice"), slog.Int("words", 42)},
			want:    "2026-06-15T14:30:45Z\tINFO\top-789\tentry appended\tuser=alice\twords=42\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &journalHandler{w: &buf, opID: tt.opID}

			r := slog.NewRecord(ts, tt.level, tt.message, 0)
			for _, a := range tt.attrs {
				r.AddAttrs(a)
			}

			if err := h.Handle(context.Background(), r); err != nil {
				t.Fatalf("Handle() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Handle() wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJournalHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	base := &journalHandler{w: &buf, opID: "op-1"}
	h := base.WithAttrs([]slog.Attr{slog.String("user", "alice")})

	r := slog.NewRecord(time.Date(2026, 6, 15, 14, 30, 45, 0, time.UTC), slog.LevelInfo, "msg", 0)
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	want := "2026-06-15T14:30:45Z\tINFO\top-1\tmsg\tuser=alice\n"
	if got := buf.String(); got != want {
		t.Errorf("Handle() wrote %q, want %q", got, want)
	}
}
