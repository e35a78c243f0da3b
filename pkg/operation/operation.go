package operation

import (
	"context"

	"github.com/kareem0o0/patchline/pkg/config"
	"github.com/kareem0o0/patchline/pkg/status"
)

// 🎯 Operation is a unit of work over a single target file
type Operation interface {
	// Name returns a short human-readable name for error messages
	Name() string

	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains the dependencies for building operations
type Options struct {
	Target  config.Target
	Printer *status.Printer
}
