// Package model defines the domain types for the kate-sync tool.
//
// Nothing here is persisted. Every value is either a literal baked into the
// binary (submodule paths, git arguments, tool names) or a transient
// description of work derived from those literals.
package model

import (
	"fmt"
	"path"
	"strings"
)

// GitBinary is the version-control executable invoked for every submodule
// update. It is resolved through PATH by the command runner.
const GitBinary = "git"

// FetchNotice is the line the binary fetch step prints in place of
// downloading anything.
const FetchNotice = "todo"

// SubmoduleUpdateArgs is the argument vector passed to git in each
// submodule directory. The trailing "." limits the update to the
// submodules registered under the working directory.
//
// Callers must treat the slice as read-only; use UpdateArgs for a copy.
var SubmoduleUpdateArgs = []string{"submodule", "update", "--init", "."}

// UpdateArgs returns a fresh copy of SubmoduleUpdateArgs that callers may
// modify or retain without aliasing the package-level slice.
func UpdateArgs() []string {
	args := make([]string, len(SubmoduleUpdateArgs))
	copy(args, SubmoduleUpdateArgs)
	return args
}

// Submodule identifies a vendored dependency whose nested submodules must be
// initialized before the tree builds.
type Submodule struct {
	// Path is the working directory for the git invocation, relative to the
	// root of the kate checkout. Always slash-separated.
	Path string `json:"path" yaml:"path"`
}

// Name returns the final element of Path (e.g. "tinyxml2"), used in log
// lines and error messages.
func (s Submodule) Name() string {
	return path.Base(s.Path)
}

// String satisfies fmt.Stringer.
func (s Submodule) String() string {
	return s.Path
}

// vulkanHppRoot is the vendored Vulkan-Hpp checkout that carries both
// nested submodules.
const vulkanHppRoot = "src/third_party/khronos/vulkan-hpp"

// DefaultSubmodules returns the submodules initialized by a bootstrap run,
// in the order they are processed. A new slice is returned on every call.
func DefaultSubmodules() []Submodule {
	return []Submodule{
		{Path: vulkanHppRoot + "/tinyxml2"},
		{Path: vulkanHppRoot + "/Vulkan-Headers"},
	}
}

// Tool names a build tool binary that the fetch step will eventually
// provide. Only the name exists today.
type Tool string

const (
	ToolNinja Tool = "ninja"
	ToolCMake Tool = "cmake"
	ToolClang Tool = "clang"
)

// PlannedTools lists the tools the fetch step stands in for.
func PlannedTools() []Tool {
	return []Tool{ToolNinja, ToolCMake, ToolClang}
}

// StepKind identifies what a single bootstrap step does.
type StepKind string

const (
	// StepFetchBinaries is the placeholder toolchain fetch. It only prints
	// FetchNotice.
	StepFetchBinaries StepKind = "fetch-binaries"

	// StepUpdateSubmodule runs `git submodule update --init .` in one
	// vendored directory.
	StepUpdateSubmodule StepKind = "update-submodule"
)

// String returns the string representation of StepKind.
func (k StepKind) String() string {
	return string(k)
}

// Step describes one unit of work in a bootstrap run. Steps are produced by
// the bootstrap planner and rendered by `kate-sync plan`; executing them is
// the job of the toolchain and submodule packages.
type Step struct {
	Kind StepKind `json:"kind" yaml:"kind"`

	// Program and Args are empty for steps that spawn no process.
	Program string   `json:"program,omitempty" yaml:"program,omitempty"`
	Args    []string `json:"args,omitempty" yaml:"args,omitempty"`

	// Dir is the working directory of the spawned process, relative to the
	// invocation root.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`

	// Output is the fixed text a step writes to stdout, if any.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// CommandLine renders the step's process invocation as a single
// space-separated string, or "" for steps that spawn nothing.
func (s Step) CommandLine() string {
	if s.Program == "" {
		return ""
	}
	return strings.Join(append([]string{s.Program}, s.Args...), " ")
}

// ExitCode defines the CLI exit codes. Scripts wrapping kate-sync can use
// them to tell a broken checkout apart from a usage error.
type ExitCode int

const (
	// ExitSuccess indicates every step ran. Note that a git process exiting
	// non-zero still counts as a completed step.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred, including
	// cobra usage errors.
	ExitGeneralError ExitCode = 1

	// ExitSpawnFailed indicates a git process could not be started at all,
	// typically because its working directory does not exist or git is not
	// on PATH. The run stops at the failing step.
	ExitSpawnFailed ExitCode = 2
)

// CLIError is the error type returned by every kate-sync step that can
// stop a run. Today that is only a git process failing to start, but the
// CLI layer maps any CLIError to its Code without knowing which step
// produced it.
type CLIError struct {
	// Code is the process exit code, e.g. ExitSpawnFailed.
	Code ExitCode

	// Message names what could not be done, including the working
	// directory for git failures ("cannot run git in <dir>").
	Message string

	// Err is the cause reported by the runner, such as a chdir or
	// executable lookup failure. May be nil.
	Err error
}

// Error returns Message, followed by the cause when there is one.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the runner's cause, so callers can test for
// exec.ErrNotFound or fs.ErrNotExist with errors.Is.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// WrapCLIError creates a CLIError carrying err as its cause.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
