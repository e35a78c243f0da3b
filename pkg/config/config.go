package config

import (
	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 🔄 PatchRule represents a single verified literal substitution
type PatchRule struct {
	// Old is the literal text expected to exist in the target
	Old string `json:"old" yaml:"old" hcl:"old"`

	// New is the literal replacement text
	New string `json:"new" yaml:"new" hcl:"new"`

	// Glob optionally restricts which target files the rule applies to
	Glob string `json:"glob,omitempty" yaml:"glob,omitempty" hcl:"glob,optional"`
}

// 🔍 ShowRule represents a context window query against a target file
type ShowRule struct {
	// Marker is the literal substring locating the line to display
	Marker string `json:"marker" yaml:"marker" hcl:"marker"`

	// Before is the number of context lines before the match (default 2)
	Before *int `json:"before,omitempty" yaml:"before,omitempty" hcl:"before,optional"`

	// After is the number of context lines after the match (default 2)
	After *int `json:"after,omitempty" yaml:"after,omitempty" hcl:"after,optional"`
}

// 📄 Target represents a single file and the rules applied to it
type Target struct {
	File    string      `json:"file" yaml:"file" hcl:"file,label"`
	Patches []PatchRule `json:"patches,omitempty" yaml:"patches,omitempty" hcl:"patch,block"`
	Shows   []ShowRule  `json:"show,omitempty" yaml:"show,omitempty" hcl:"show,block"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Targets []Target `json:"targets" yaml:"targets" hcl:"target,block"`
	Async   bool     `json:"async,omitempty" yaml:"async,omitempty" hcl:"async,optional"`
}

// Validate checks the configuration for missing or malformed values
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return errors.New("at least one target is required")
	}

	for _, t := range c.Targets {
		if t.File == "" {
			return errors.New("target file is required")
		}
		for i, p := range t.Patches {
			if p.Old == "" {
				return errors.Errorf("target %q patch %d: old text is required", t.File, i)
			}
			if p.Glob != "" && !doublestar.ValidatePattern(p.Glob) {
				return errors.Errorf("target %q patch %d: invalid glob %q", t.File, i, p.Glob)
			}
		}
		for i, s := range t.Shows {
			if s.Marker == "" {
				return errors.Errorf("target %q show %d: marker is required", t.File, i)
			}
			if s.Before != nil && *s.Before < 0 {
				return errors.Errorf("target %q show %d: before must not be negative", t.File, i)
			}
			if s.After != nil && *s.After < 0 {
				return errors.Errorf("target %q show %d: after must not be negative", t.File, i)
			}
		}
	}

	return nil
}
