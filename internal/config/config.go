// Package config loads optional strivekit settings from .strivekit.yaml.
// A missing file yields defaults that reproduce the stock export layout.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/strivetech/strivekit/internal/templates"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the config file looked up in the working directory
	FileName = ".strivekit.yaml"

	DefaultOutputDir = "."
	DefaultPlanFile  = "strive_tech_migration_plan.csv"
)

var (
	// ErrInvalidPreviewLimit is returned when preview_limit is not positive
	ErrInvalidPreviewLimit = errors.New("preview_limit must be positive")

	// ErrInvalidFileName is returned when a configured file name contains a path separator
	ErrInvalidFileName = errors.New("file names must not contain path separators")
)

// Config models .strivekit.yaml
type Config struct {
	OutputDir     string `yaml:"output_dir"`
	FilePrefix    string `yaml:"file_prefix"`
	PreviewLimit  int    `yaml:"preview_limit"`
	PlanFile      string `yaml:"plan_file"`
	ChecklistFile string `yaml:"checklist_file"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		OutputDir:     DefaultOutputDir,
		FilePrefix:    templates.DefaultPrefix,
		PreviewLimit:  templates.DefaultPreviewLimit,
		PlanFile:      DefaultPlanFile,
		ChecklistFile: templates.DefaultPrefix + templates.ChecklistName,
	}
}

// Load reads the config at path. When required is false a missing file is
// not an error and defaults are returned.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	// Unset keys keep their defaults
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromDir loads FileName from dir if it exists
func LoadFromDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, FileName), false)
}

// Validate checks field values
func (c *Config) Validate() error {
	if c.PreviewLimit <= 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidPreviewLimit, c.PreviewLimit)
	}
	for _, name := range []string{c.PlanFile, c.ChecklistFile, c.FilePrefix} {
		if strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("%w: %q", ErrInvalidFileName, name)
		}
	}
	if c.PlanFile == "" || c.ChecklistFile == "" {
		return errors.New("plan_file and checklist_file must not be empty")
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	return nil
}

// PlanPath returns the full path of the plan export
func (c *Config) PlanPath() string {
	return filepath.Join(c.OutputDir, c.PlanFile)
}

// ChecklistPath returns the full path of the checklist export
func (c *Config) ChecklistPath() string {
	return filepath.Join(c.OutputDir, c.ChecklistFile)
}

// TemplatePath returns the output path for a template name
func (c *Config) TemplatePath(name string) string {
	return filepath.Join(c.OutputDir, c.FilePrefix+name)
}
