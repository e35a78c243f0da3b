package operation

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 Runner executes operations, one per target
type Runner struct {
	async bool
}

// 🏗️ NewRunner creates a new runner
func NewRunner(async bool) *Runner {
	return &Runner{async: async}
}

// 🏃 Run executes the given operations. In async mode each operation runs in
// its own goroutine; the first error cancels the rest. Targets are
// independent files, so async and sync runs produce the same results.
func (r *Runner) Run(ctx context.Context, ops ...Operation) error {
	if r.async {
		return r.runAsync(ctx, ops)
	}
	return r.runSync(ctx, ops)
}

// 🔄 runSync runs operations one after another
func (r *Runner) runSync(ctx context.Context, ops []Operation) error {
	for _, op := range ops {
		zerolog.Ctx(ctx).Debug().Str("operation", op.Name()).Msg("running")
		if err := op.Execute(ctx); err != nil {
			return errors.Errorf("running %s: %w", op.Name(), err)
		}
	}
	return nil
}

// ⚡ runAsync fans operations out over an errgroup
func (r *Runner) runAsync(ctx context.Context, ops []Operation) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, op := range ops {
		op := op // per-iteration copy; required while go.mod targets go < 1.22
		g.Go(func() error {
			zerolog.Ctx(gctx).Debug().Str("operation", op.Name()).Msg("running")
			if err := op.Execute(gctx); err != nil {
				return errors.Errorf("running %s: %w", op.Name(), err)
			}
			return nil
		})
	}
	return g.Wait()
}
