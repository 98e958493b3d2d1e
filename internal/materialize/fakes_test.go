package materialize

import (
	"context"

	"github.com/internetdata/create-my-internet/internal/exec"
)

type call struct {
	Name string
	Args []string
	Dir  string
}

// recordingRunner records every command and returns scripted statuses in order.
type recordingRunner struct {
	calls    []call
	statuses []exec.ExitStatus
	err      error
}

func (r *recordingRunner) Run(_ context.Context, name string, args []string, opts exec.RunOpts) (exec.ExitStatus, error) {
	r.calls = append(r.calls, call{Name: name, Args: args, Dir: opts.Dir})
	if r.err != nil {
		return -1, r.err
	}
	if len(r.statuses) == 0 {
		return 0, nil
	}
	s := r.statuses[0]
	r.statuses = r.statuses[1:]
	return s, nil
}
