package hooks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/mark3labs/cockup/internal/config"
	apperrors "github.com/mark3labs/cockup/internal/errors"
)

// waitDelay bounds how long Wait blocks on output pipes after the
// process has been killed.
const waitDelay = 2 * time.Second

// execute runs one validated hook and blocks until it exits or its
// timeout fires.
func (r *Runner) execute(ctx context.Context, hook config.Hook) error {
	argv := hook.Command.Argv(r.shell)

	hookCtx := ctx
	if hook.Timeout != nil {
		var cancel context.CancelFunc
		hookCtx, cancel = context.WithTimeout(ctx, hook.Timeout.Std())
		defer cancel()
	}

	// #nosec G204 -- command comes from the user's config file
	cmd := exec.CommandContext(hookCtx, argv[0], argv[1:]...)
	cmd.Dir = r.workDir
	cmd.Env = r.env
	cmd.Stdin = r.stdin
	if hook.Output {
		cmd.Stdout = r.stdout
		cmd.Stderr = r.stderr
	} else {
		// Captured output is drained and dropped.
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard
	}
	configureProcess(cmd)
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	if err != nil && hook.Timeout != nil && ctx.Err() == nil &&
		errors.Is(hookCtx.Err(), context.DeadlineExceeded) {
		return apperrors.NewTimeoutError(fmt.Sprintf("command `%s`", hook.Name), hook.Timeout.Std())
	}
	return err
}

func isTimeout(err error) bool {
	return errors.Is(err, apperrors.ErrTimeout)
}
