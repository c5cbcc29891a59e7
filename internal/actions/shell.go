// Package actions provides concrete task.Action constructors — tool
// wrappers an engine treats as an external collaborator — adapted from
// per-type config step plugins into single-closure actions.
package actions

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/alexisbeaulieu97/forge/internal/buildctx"
	"github.com/alexisbeaulieu97/forge/internal/task"
)

// ShellOption configures a Shell action.
type ShellOption func(*shellConfig)

type shellConfig struct {
	shell string
}

// WithShell overrides the shell used to run the command (default: sh -c
// on Unix, cmd /C on Windows).
func WithShell(shell string) ShellOption {
	return func(c *shellConfig) { c.shell = shell }
}

// Shell returns an Action that runs cmd through a shell, honoring the
// Context's working directory and environment, and cancelling when the
// Context is done. Grounded on internal/plugins/command's shell-dispatch
// idiom.
func Shell(cmd string, opts ...ShellOption) task.Action {
	cfg := shellConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(ctx *buildctx.Context) error {
		shell, shellArgs, err := determineShell(cfg.shell)
		if err != nil {
			return err
		}

		args := append(shellArgs, cmd)
		c := exec.CommandContext(ctx, shell, args...)
		c.Dir = ctx.Dir
		c.Env = ctx.Environ()

		output, err := c.CombinedOutput()
		if err != nil {
			return fmt.Errorf("command %q failed: %w: %s", cmd, err, output)
		}
		if ctx.Logger != nil {
			ctx.Logger.Debug().Str("command", cmd).Msg("command completed")
		}
		return nil
	}
}

func determineShell(override string) (string, []string, error) {
	if override != "" {
		return override, []string{"-c"}, nil
	}
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C"}, nil
	}
	return "sh", []string{"-c"}, nil
}
