package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pixelfold/webpick/internal/config"
)

func newFileLogger(t *testing.T) (*Logger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs", "run.log")
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = path
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	return l, path
}

func TestLogger_FileSink(t *testing.T) {
	l, path := newFileLogger(t)
	l.Info("converting %s", "photo.png")
	l.Success("done")
	l.Warn("careful")
	l.Error("broke")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)

	for _, want := range []string{
		"[INFO] converting photo.png",
		"[SUCCESS] done",
		"[WARN] careful",
		"[ERROR] broke",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("log file missing %q; got:\n%s", want, content)
		}
	}
	if strings.Contains(content, "\033[") {
		t.Error("log file should never contain ANSI escapes")
	}
}

func TestLogger_DebugGatedByVerbose(t *testing.T) {
	l, path := newFileLogger(t)
	l.Debug(false, "hidden")
	l.Debug(true, "shown")
	l.Close()

	data, _ := os.ReadFile(path)
	content := string(data)
	if strings.Contains(content, "hidden") {
		t.Error("Debug with verbose=false should be a no-op")
	}
	if !strings.Contains(content, "[DEBUG] shown") {
		t.Errorf("Debug with verbose=true missing; got:\n%s", content)
	}
}

func TestLogger_CreatesLogDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "run.log")
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = path

	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer l.Close()

	l.Info("hello")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}

func TestLogger_CloseWithoutFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Errorf("Close without file sink: %v", err)
	}
}
