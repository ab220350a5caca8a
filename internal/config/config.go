package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/penwyp/go-conky-deadlines/internal/core/model"
)

// Course maps a course folder to the abbreviation printed in front of its items
type Course struct {
	Folder string `toml:"folder"`
	Abbr   string `toml:"abbr"`
}

// Config is the course table, in display order
type Config struct {
	Courses []Course `toml:"course"`
}

// DefaultConfig returns the built-in course table
func DefaultConfig() Config {
	return Config{
		Courses: []Course{
			{Folder: "2-advanced-programming", Abbr: "AP"},
			{Folder: "2-mobile-app-development", Abbr: "MAD"},
			{Folder: "2-pervasive-computing", Abbr: "PC"},
			{Folder: "2-security", Abbr: "SEC"},
		},
	}
}

// Load reads a course table from path. An empty path yields the built-in table.
func Load(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a TOML course table
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write stores cfg as TOML at path
func Write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Normalize returns a copy with surrounding whitespace removed from every
// folder and abbreviation
func (c Config) Normalize() Config {
	courses := make([]Course, len(c.Courses))
	for i, course := range c.Courses {
		courses[i] = Course{
			Folder: strings.TrimSpace(course.Folder),
			Abbr:   strings.TrimSpace(course.Abbr),
		}
	}
	return Config{Courses: courses}
}

// Validate rejects empty or duplicate entries
func (c Config) Validate() error {
	if len(c.Courses) == 0 {
		return errors.New("config lists no courses")
	}

	seen := make(map[string]struct{}, len(c.Courses))
	for i, course := range c.Courses {
		folder := strings.TrimSpace(course.Folder)
		if folder == "" {
			return fmt.Errorf("course %d: folder is empty", i+1)
		}
		if strings.TrimSpace(course.Abbr) == "" {
			return fmt.Errorf("course %s: abbr is empty", folder)
		}
		if _, dup := seen[folder]; dup {
			return fmt.Errorf("course %s is listed twice", folder)
		}
		seen[folder] = struct{}{}
	}
	return nil
}

// Keys returns the course folders in table order
func (c Config) Keys() []model.CourseKey {
	keys := make([]model.CourseKey, len(c.Courses))
	for i, course := range c.Courses {
		keys[i] = model.CourseKey(strings.TrimSpace(course.Folder))
	}
	return keys
}

// Abbreviations returns the folder to abbreviation lookup
func (c Config) Abbreviations() map[model.CourseKey]string {
	abbrs := make(map[model.CourseKey]string, len(c.Courses))
	for _, course := range c.Courses {
		abbrs[model.CourseKey(strings.TrimSpace(course.Folder))] = strings.TrimSpace(course.Abbr)
	}
	return abbrs
}
