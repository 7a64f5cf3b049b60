// Package runnertest provides a recording runner.Runner for tests.
package runnertest

import (
	"context"
	"sync"

	"github.com/shinji-kodama/kate-sync/internal/runner"
)

// Call is one recorded Runner.Run invocation.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// Response is the scripted outcome of a single call.
type Response struct {
	Result runner.Result
	Err    error
}

// Recorder records every call it receives and replays Responses in order.
// Calls beyond the scripted responses succeed with exit code 0.
type Recorder struct {
	// Responses are consumed one per call.
	Responses []Response

	// Hook, when set, is invoked with each call before its response is
	// returned. Tests use it to interleave calls with other observed events.
	Hook func(Call)

	mu    sync.Mutex
	calls []Call
}

// Run implements runner.Runner.
func (r *Recorder) Run(_ context.Context, dir, name string, args ...string) (runner.Result, error) {
	call := Call{Dir: dir, Name: name, Args: append([]string(nil), args...)}

	r.mu.Lock()
	idx := len(r.calls)
	r.calls = append(r.calls, call)
	r.mu.Unlock()

	if r.Hook != nil {
		r.Hook(call)
	}

	if idx < len(r.Responses) {
		resp := r.Responses[idx]
		return resp.Result, resp.Err
	}
	return runner.Result{}, nil
}

// Calls returns a copy of the recorded calls in invocation order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}
