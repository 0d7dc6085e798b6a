package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // .hcl, .json, .yaml or .yml
	BaseDir    string // content globs are relative to it; defaults to the config file's directory

	Check     bool     // load, validate and resolve plugins only
	Print     string   // re-encode the record to stdout: "hcl", "json" or "yaml"
	WritePath string   // re-encode the record into this file
	Resolve   []string // classes to resolve against the build
	Strict    bool     // a content pattern without matches fails the build
	Watch     bool     // rebuild whenever the config file changes

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	WorkerCount     int
}

// NewConfig validates cfg, fills in defaults and returns the result.
func NewConfig(cfg Config) (*Config, error) {
	var problems []string

	if cfg.ConfigPath == "" {
		problems = append(problems, "ConfigPath is a required configuration field and cannot be empty")
	} else if cfg.BaseDir == "" {
		cfg.BaseDir = filepath.Dir(cfg.ConfigPath)
	}
	if cfg.BaseDir != "" {
		abs, err := filepath.Abs(cfg.BaseDir)
		if err != nil {
			problems = append(problems, fmt.Sprintf("BaseDir %q: %v", cfg.BaseDir, err))
		}
		cfg.BaseDir = abs
	}

	switch cfg.Print {
	case "", "hcl", "json", "yaml":
	default:
		problems = append(problems, fmt.Sprintf("Print must be 'hcl', 'json' or 'yaml', got %q", cfg.Print))
	}

	if cfg.Check && len(cfg.Resolve) > 0 {
		problems = append(problems, "Resolve needs a full build and cannot be combined with Check")
	}
	if cfg.Watch && (cfg.Check || cfg.Print != "" || cfg.WritePath != "" || len(cfg.Resolve) > 0) {
		problems = append(problems, "Watch cannot be combined with Check, Print, WritePath or Resolve")
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		problems = append(problems, fmt.Sprintf("HealthcheckPort %d is out of range", cfg.HealthcheckPort))
	}
	switch {
	case cfg.WorkerCount < 0:
		problems = append(problems, fmt.Sprintf("WorkerCount must not be negative, got %d", cfg.WorkerCount))
	case cfg.WorkerCount == 0:
		cfg.WorkerCount = runtime.GOMAXPROCS(0)
	}

	if len(problems) > 0 {
		return nil, errors.New(strings.Join(problems, "; "))
	}
	return &cfg, nil
}
