// Package bootstrap sequences the kate-sync steps: the placeholder binary
// fetch, then the submodule updates.
//
// The two steps share no data. The fetch step always runs first and cannot
// fail; the submodule step runs unconditionally after it.
package bootstrap

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/shinji-kodama/kate-sync/internal/model"
	"github.com/shinji-kodama/kate-sync/internal/runner"
	"github.com/shinji-kodama/kate-sync/internal/submodule"
	"github.com/shinji-kodama/kate-sync/internal/toolchain"
)

// Bootstrapper runs a full bootstrap.
type Bootstrapper struct {
	Fetcher    *toolchain.Fetcher
	Submodules *submodule.Initializer

	logger zerolog.Logger
}

// New wires a Bootstrapper for the default submodules. The fetch notice is
// written to out and every git process runs through r. r may be nil when
// the Bootstrapper is only used for Plan.
func New(out io.Writer, r runner.Runner, logger zerolog.Logger) *Bootstrapper {
	return &Bootstrapper{
		Fetcher:    toolchain.NewFetcher(out, logger),
		Submodules: submodule.NewInitializer(r, model.DefaultSubmodules(), logger),
		logger:     logger,
	}
}

// Run performs the fetch step and then updates every submodule. It returns
// the first spawn failure from the submodule step, if any.
func (b *Bootstrapper) Run(ctx context.Context) error {
	b.logger.Debug().Str("step", model.StepFetchBinaries.String()).Msg("starting step")
	b.Fetcher.Fetch(ctx)

	b.logger.Debug().Str("step", model.StepUpdateSubmodule.String()).Msg("starting step")
	return b.Submodules.UpdateAll(ctx)
}

// Plan returns the steps Run performs, in order, without executing any of
// them.
func (b *Bootstrapper) Plan() []model.Step {
	targets := b.Submodules.Targets()

	steps := make([]model.Step, 0, 1+len(targets))
	steps = append(steps, model.Step{
		Kind:   model.StepFetchBinaries,
		Output: model.FetchNotice,
	})
	for _, sub := range targets {
		steps = append(steps, model.Step{
			Kind:    model.StepUpdateSubmodule,
			Program: model.GitBinary,
			Args:    model.UpdateArgs(),
			Dir:     b.Submodules.Dir(sub),
		})
	}
	return steps
}
