package testsupport

import (
	"path/filepath"
	"testing"

	"coursebuild/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.OutputDir = filepath.Join(base, "out")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.StatePath = filepath.Join(base, "drafts.db")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithStartLesson overrides the table-of-contents start lesson.
func WithStartLesson(n int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Toc.StartLesson = n
	}
}

// WithCourseDefaults sets the scaffolding year and course type.
func WithCourseDefaults(year, courseType string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Course.Year = year
		cfg.Course.Type = courseType
	}
}
