package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/kate-sync/internal/model"
	"github.com/shinji-kodama/kate-sync/internal/runner"
	"github.com/shinji-kodama/kate-sync/internal/runner/runnertest"
)

// eventLog collects stdout writes and runner calls in one ordered stream so
// tests can check that the notice precedes every git invocation.
type eventLog struct {
	events []string
}

func (l *eventLog) Write(p []byte) (int, error) {
	l.events = append(l.events, "stdout:"+string(p))
	return len(p), nil
}

func (l *eventLog) hook(c runnertest.Call) {
	l.events = append(l.events, "git:"+c.Dir)
}

func TestRun_NoticeBeforeSubmodules(t *testing.T) {
	log := &eventLog{}
	rec := &runnertest.Recorder{Hook: log.hook}

	b := New(log, rec, zerolog.Nop())
	require.NoError(t, b.Run(context.Background()))

	assert.Equal(t, []string{
		"stdout:todo\n",
		"git:src/third_party/khronos/vulkan-hpp/tinyxml2",
		"git:src/third_party/khronos/vulkan-hpp/Vulkan-Headers",
	}, log.events)
}

// TestRun_NonZeroExitDoesNotBranch runs with every git call failing and
// checks the run is indistinguishable from a successful one.
func TestRun_NonZeroExitDoesNotBranch(t *testing.T) {
	var out bytes.Buffer
	rec := &runnertest.Recorder{Responses: []runnertest.Response{
		{Result: runner.Result{ExitCode: 128}},
		{Result: runner.Result{ExitCode: 128}},
	}}

	b := New(&out, rec, zerolog.Nop())
	require.NoError(t, b.Run(context.Background()))

	assert.Equal(t, "todo\n", out.String())
	assert.Len(t, rec.Calls(), 2)
}

func TestRun_SpawnFailureAborts(t *testing.T) {
	var out bytes.Buffer
	rec := &runnertest.Recorder{Responses: []runnertest.Response{
		{Err: errors.New("chdir: no such file or directory")},
	}}

	b := New(&out, rec, zerolog.Nop())
	err := b.Run(context.Background())

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitSpawnFailed, cliErr.Code)

	// The notice was already printed; only one git call was attempted.
	assert.Equal(t, "todo\n", out.String())
	assert.Len(t, rec.Calls(), 1)
}

func TestPlan(t *testing.T) {
	rec := &runnertest.Recorder{}
	b := New(&bytes.Buffer{}, rec, zerolog.Nop())

	steps := b.Plan()
	require.Len(t, steps, 3)

	assert.Equal(t, model.StepFetchBinaries, steps[0].Kind)
	assert.Equal(t, "todo", steps[0].Output)
	assert.Empty(t, steps[0].Program)

	for i, dir := range []string{
		"src/third_party/khronos/vulkan-hpp/tinyxml2",
		"src/third_party/khronos/vulkan-hpp/Vulkan-Headers",
	} {
		step := steps[i+1]
		assert.Equal(t, model.StepUpdateSubmodule, step.Kind)
		assert.Equal(t, "git submodule update --init .", step.CommandLine())
		assert.Equal(t, dir, step.Dir)
	}

	assert.Empty(t, rec.Calls(), "planning must not run anything")
}
