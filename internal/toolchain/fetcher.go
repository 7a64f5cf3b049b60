// Package toolchain will acquire the prebuilt build tools (Ninja, CMake,
// Clang) the kate tree needs.
//
// Downloading is not implemented. Fetcher prints a placeholder notice and
// returns, so a bootstrap run proceeds straight to the submodule step.
package toolchain

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/shinji-kodama/kate-sync/internal/model"
)

// Fetcher is the binary fetch step.
type Fetcher struct {
	out    io.Writer
	logger zerolog.Logger
}

// NewFetcher creates a Fetcher that writes its notice to out.
func NewFetcher(out io.Writer, logger zerolog.Logger) *Fetcher {
	return &Fetcher{out: out, logger: logger}
}

// Fetch prints model.FetchNotice on its own line. It cannot fail: a failed
// write to out is dropped, the same as an unchecked print.
func (f *Fetcher) Fetch(ctx context.Context) {
	tools := model.PlannedTools()
	names := make([]string, len(tools))
	for i, tool := range tools {
		names[i] = string(tool)
	}
	f.logger.Debug().Strs("tools", names).Msg("binary fetch not implemented")

	_, _ = fmt.Fprintln(f.out, model.FetchNotice)
}
