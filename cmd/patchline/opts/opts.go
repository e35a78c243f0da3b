package opts

import (
	"context"

	"gitlab.com/tozd/go/errors"

	"github.com/kareem0o0/patchline/pkg/config"
	"github.com/kareem0o0/patchline/pkg/status"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string
	Printer    *status.Printer
}

// LoadConfig loads the config file the root flags point at. It is called
// lazily so commands driven entirely by flags work without a config file.
func (o *RootOpts) LoadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx, o.ConfigFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
