package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantDebug bool
		wantInfo  bool
		wantErr   bool
	}{
		{name: "default is info", level: "", wantInfo: true},
		{name: "debug", level: "debug", wantDebug: true, wantInfo: true},
		{name: "warn hides info", level: "warn"},
		{name: "unknown level", level: "chatty", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, closeFn, err := New(Options{Level: tc.level, Writer: &buf, Prefix: "flappy"})
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}
			defer closeFn()

			logger.Debug("debug line")
			logger.Info("info line", "score", 3)

			out := buf.String()
			if strings.Contains(out, "debug line") != tc.wantDebug {
				t.Errorf("debug visible = %v, expected %v:\n%s", !tc.wantDebug, tc.wantDebug, out)
			}
			if strings.Contains(out, "info line") != tc.wantInfo {
				t.Errorf("info visible = %v, expected %v:\n%s", !tc.wantInfo, tc.wantInfo, out)
			}
			if tc.wantInfo && !strings.Contains(out, "score=3") {
				t.Errorf("expected key-value pairs in output:\n%s", out)
			}
			if tc.wantInfo && !strings.Contains(out, "flappy") {
				t.Errorf("expected prefix in output:\n%s", out)
			}
		})
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "flappy.log")

	logger, closeFn, err := New(Options{Path: path})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Info("attempt recorded", "score", 12)
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "attempt recorded") {
		t.Errorf("log file content = %q", data)
	}
}

func TestNewWithoutWriterDiscards(t *testing.T) {
	logger, closeFn, err := New(Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer closeFn()

	logger.Info("nowhere")
	Discard().Error("also nowhere")
}
