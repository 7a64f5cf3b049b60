// Package runner spawns external programs for kate-sync.
//
// The Runner interface is the seam between the bootstrap steps and the
// operating system. ExecRunner is the production implementation backed by
// os/exec; the runnertest subpackage provides a recording fake so tests
// can assert exactly which commands ran, in which directories, and in what
// order, without touching git.
//
// Runner draws one distinction that the rest of the tool relies on:
//   - A process that started and exited (with any status) yields a Result
//     and a nil error.
//   - A process that could not be started at all (missing working
//     directory, executable not on PATH) yields an error.
package runner
