package config

import (
	"fmt"
	"regexp"
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCourse(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCourse() error {
	if c.Course.Year != "" && !yearPattern.MatchString(c.Course.Year) {
		return fmt.Errorf("course.year must be a four-digit year, got %q", c.Course.Year)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
