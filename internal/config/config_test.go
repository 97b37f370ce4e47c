package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"coursebuild/internal/config"
)

func TestLoadDefaultsInTempHome(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantOutput := filepath.Join(tempHome, ".local", "share", "coursebuild", "output")
	if cfg.Paths.OutputDir != wantOutput {
		t.Fatalf("unexpected output dir: got %q want %q", cfg.Paths.OutputDir, wantOutput)
	}
	wantState := filepath.Join(tempHome, ".local", "share", "coursebuild", "drafts.db")
	if cfg.Paths.StatePath != wantState {
		t.Fatalf("unexpected state path: %q", cfg.Paths.StatePath)
	}
	if cfg.Toc.StartLesson != 1 {
		t.Fatalf("unexpected start lesson: %d", cfg.Toc.StartLesson)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[paths]",
		`output_dir = "` + filepath.Join(dir, "out") + `"`,
		`log_dir = "` + filepath.Join(dir, "logs") + `"`,
		`state_path = "` + filepath.Join(dir, "drafts.db") + `"`,
		"",
		"[toc]",
		"start_lesson = 15",
		"",
		"[course]",
		`year = "2025"`,
		`type = "IT"`,
		"",
		"[logging]",
		`format = "JSON"`,
		`level = "DEBUG"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolution: exists=%v resolved=%q", exists, resolved)
	}
	if cfg.Toc.StartLesson != 15 {
		t.Fatalf("start lesson: %d", cfg.Toc.StartLesson)
	}
	if cfg.Course.Year != "2025" || cfg.Course.Type != "IT" {
		t.Fatalf("course defaults: %+v", cfg.Course)
	}
	// Format and level are folded to lower case.
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging: %+v", cfg.Logging)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "bad log format",
			content: "[logging]\nformat = \"xml\"\n",
			wantErr: "logging.format",
		},
		{
			name:    "bad log level",
			content: "[logging]\nlevel = \"verbose\"\n",
			wantErr: "logging.level",
		},
		{
			name:    "bad year",
			content: "[course]\nyear = \"twenty-five\"\n",
			wantErr: "course.year",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, _, err := config.Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected %s error, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNegativeStartLessonNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[toc]\nstart_lesson = -3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Toc.StartLesson != 1 {
		t.Fatalf("start lesson: %d", cfg.Toc.StartLesson)
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.OutputDir = filepath.Join(dir, "out")
	cfg.Paths.LogDir = filepath.Join(dir, "logs")
	cfg.Paths.StatePath = filepath.Join(dir, "state", "drafts.db")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, want := range []string{cfg.Paths.OutputDir, cfg.Paths.LogDir, filepath.Join(dir, "state")} {
		info, err := os.Stat(want)
		if err != nil || !info.IsDir() {
			t.Fatalf("missing directory %s: %v", want, err)
		}
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "[paths]") || !strings.Contains(string(raw), "start_lesson") {
		t.Fatalf("sample content:\n%s", raw)
	}

	// The sample must load cleanly.
	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
}
