package zlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestReplaceCapturesEntries(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	Replace(zap.New(core))
	t.Cleanup(func() { Replace(nil) })

	Info("hello", zap.String("k", "v"))
	Warn("careful")

	if logs.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", logs.Len())
	}
	if got := logs.All()[0].ContextMap()["k"]; got != "v" {
		t.Fatalf("unexpected field: %v", got)
	}
}

func TestInitWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	Init(Options{LogPath: path, Level: "warn"})
	t.Cleanup(func() { Replace(nil) })

	Info("skipped")
	Error("written", zap.String("request_id", "r1"))
	Sync()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(raw), "skipped") {
		t.Fatalf("info entry should be filtered at warn level")
	}
	if !strings.Contains(string(raw), `"request_id":"r1"`) {
		t.Fatalf("expected json entry, got %s", raw)
	}
}
