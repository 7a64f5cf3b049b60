package submodule

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/shinji-kodama/kate-sync/internal/model"
	"github.com/shinji-kodama/kate-sync/internal/runner"
)

// Initializer runs the submodule update for a fixed list of targets.
type Initializer struct {
	runner  runner.Runner
	targets []model.Submodule
	logger  zerolog.Logger

	// Root is joined in front of every target path. Empty means the
	// process working directory, in which case target paths are passed to
	// the runner unchanged.
	Root string
}

// NewInitializer creates an Initializer for targets. The slice is copied.
func NewInitializer(r runner.Runner, targets []model.Submodule, logger zerolog.Logger) *Initializer {
	return &Initializer{
		runner:  r,
		targets: append([]model.Submodule(nil), targets...),
		logger:  logger,
	}
}

// Targets returns the submodules this Initializer processes, in order.
func (i *Initializer) Targets() []model.Submodule {
	return append([]model.Submodule(nil), i.targets...)
}

// Dir returns the working directory used for sub.
func (i *Initializer) Dir(sub model.Submodule) string {
	if i.Root == "" {
		return sub.Path
	}
	return filepath.Join(i.Root, filepath.FromSlash(sub.Path))
}

// UpdateAll updates every target in order. It returns at the first target
// whose git process cannot be started; the remaining targets are not
// attempted.
func (i *Initializer) UpdateAll(ctx context.Context) error {
	for _, sub := range i.targets {
		if err := i.Update(ctx, sub); err != nil {
			return err
		}
	}
	return nil
}

// Update runs `git submodule update --init .` in sub's directory.
//
// The exit status of git is logged and otherwise ignored. The returned
// error is non-nil only when git could not be started, and is a
// *model.CLIError with code model.ExitSpawnFailed.
func (i *Initializer) Update(ctx context.Context, sub model.Submodule) error {
	dir := i.Dir(sub)

	res, err := i.runner.Run(ctx, dir, model.GitBinary, model.UpdateArgs()...)
	if err != nil {
		return model.WrapCLIError(model.ExitSpawnFailed,
			fmt.Sprintf("cannot run git in %s", dir), err)
	}

	i.logger.Debug().
		Str("submodule", sub.Name()).
		Int("exit_code", res.ExitCode).
		Msg("submodule update finished")
	return nil
}
