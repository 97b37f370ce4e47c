package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeToc()
	c.normalizeCourse()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.StatePath) == "" {
		c.Paths.StatePath = defaultStatePath
	}
	if c.Paths.StatePath, err = expandPath(c.Paths.StatePath); err != nil {
		return fmt.Errorf("paths.state_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeToc() {
	if c.Toc.StartLesson < 1 {
		c.Toc.StartLesson = defaultStartLesson
	}
}

func (c *Config) normalizeCourse() {
	c.Course.Year = strings.TrimSpace(c.Course.Year)
	c.Course.Type = strings.TrimSpace(c.Course.Type)
}

func (c *Config) normalizeLogging() {
	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if format == "" {
		format = defaultLogFormat
	}
	c.Logging.Format = format

	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if level == "" {
		level = defaultLogLevel
	}
	c.Logging.Level = level
}
