package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:     "yaml_config",
			filename: "patchline.yaml",
			config: `
async: true
targets:
  - file: SwAutomationApp/test1.cs
    patches:
      - old: OLD TEXT
        new: NEW TEXT
      - old: SECOND
        new: ""
        glob: "**/*.cs"
    show:
      - marker: FullyDefineSketch
        before: 1
`,
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Async, "async should be set")
				require.Len(t, cfg.Targets, 1, "should have 1 target")
				target := cfg.Targets[0]
				assert.Equal(t, "SwAutomationApp/test1.cs", target.File)
				require.Len(t, target.Patches, 2, "should have 2 patches")
				assert.Equal(t, "OLD TEXT", target.Patches[0].Old)
				assert.Equal(t, "NEW TEXT", target.Patches[0].New)
				assert.Empty(t, target.Patches[0].Glob)
				assert.Equal(t, "**/*.cs", target.Patches[1].Glob)
				require.Len(t, target.Shows, 1, "should have 1 show rule")
				assert.Equal(t, "FullyDefineSketch", target.Shows[0].Marker)
				require.NotNil(t, target.Shows[0].Before)
				assert.Equal(t, 1, *target.Shows[0].Before)
				assert.Nil(t, target.Shows[0].After, "after should default later")
			},
		},
		{
			name:     "json_config",
			filename: "patchline.json",
			config: `{
  "targets": [
    {
      "file": "a.cs",
      "patches": [{"old": "OLD", "new": "NEW"}]
    }
  ]
}`,
			check: func(t *testing.T, cfg *Config) {
				require.Len(t, cfg.Targets, 1)
				assert.Equal(t, "a.cs", cfg.Targets[0].File)
				assert.False(t, cfg.Async)
			},
		},
		{
			name:     "hcl_config",
			filename: "patchline.hcl",
			config: `
async = false

target "a.cs" {
  patch {
    old = "OLD"
    new = "NEW"
  }

  show {
    marker = "Sketch"
    after  = 3
  }
}
`,
			check: func(t *testing.T, cfg *Config) {
				require.Len(t, cfg.Targets, 1)
				target := cfg.Targets[0]
				assert.Equal(t, "a.cs", target.File)
				require.Len(t, target.Patches, 1)
				assert.Equal(t, "OLD", target.Patches[0].Old)
				require.Len(t, target.Shows, 1)
				require.NotNil(t, target.Shows[0].After)
				assert.Equal(t, 3, *target.Shows[0].After)
				assert.Nil(t, target.Shows[0].Before)
			},
		},
		{
			name:     "patchline_extension_yaml",
			filename: "edit.patchline",
			config: `
targets:
  - file: a.cs
    patches:
      - old: OLD
        new: NEW
`,
			check: func(t *testing.T, cfg *Config) {
				require.Len(t, cfg.Targets, 1)
			},
		},
		{
			name:     "patchline_extension_hcl",
			filename: "edit.patchline",
			config: `
target "a.cs" {
  patch {
    old = "OLD"
    new = "NEW"
  }
}
`,
			check: func(t *testing.T, cfg *Config) {
				require.Len(t, cfg.Targets, 1)
			},
		},
		{
			name:        "unknown_yaml_field",
			filename:    "patchline.yaml",
			config:      "surprise: true\ntargets: []\n",
			errContains: "parsing YAML",
		},
		{
			name:        "unknown_json_field",
			filename:    "patchline.json",
			config:      `{"surprise": true}`,
			errContains: "parsing JSON",
		},
		{
			name:        "unsupported_extension",
			filename:    "patchline.toml",
			config:      "whatever",
			errContains: `unsupported file extension ".toml"`,
		},
		{
			name:        "invalid_config_rejected",
			filename:    "patchline.yaml",
			config:      "targets: []\n",
			errContains: "validating config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.filename, tt.config)
			cfg, err := Load(context.Background(), path)

			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}
