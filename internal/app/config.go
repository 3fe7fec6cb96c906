package app

import (
	"errors"
	"fmt"
	"strings"
)

// Modes selectable on the command line.
const (
	ModeSplit   = "split"
	ModeCombine = "combine"
	ModeScan    = "scan"
)

// Modes lists every supported mode in usage order.
var Modes = []string{ModeSplit, ModeCombine, ModeScan}

// ErrUnknownMode is returned for a mode outside Modes.
var ErrUnknownMode = errors.New("unknown mode")

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Mode string
	Dir  string // sheet files, fonts and outputs live here by default

	// ConfigPath is the project file; empty means <Dir>/locsanity.hcl if it
	// exists and built-in defaults otherwise.
	ConfigPath string
	// Workbook overrides the project's workbook path when set.
	Workbook string

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Mode {
	case ModeSplit, ModeCombine, ModeScan:
	case "":
		return nil, errors.New("Mode is a required configuration field and cannot be empty")
	default:
		return nil, fmt.Errorf("%w %q: expected one of %s", ErrUnknownMode, cfg.Mode, strings.Join(Modes, ", "))
	}

	if cfg.Dir == "" {
		cfg.Dir = "."
	}

	return &cfg, nil
}
