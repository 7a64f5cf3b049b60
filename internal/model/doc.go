// Package model defines the domain types and value objects for the
// kate-sync bootstrap tool.
//
// This package contains pure data structures with no external dependencies:
// the fixed list of vendored submodules, the git argument vector used to
// initialize them, the placeholder toolchain names, and the step kinds that
// make up a bootstrap run.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
