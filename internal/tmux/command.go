package tmux

import (
	"context"
	"errors"
	"os/exec"
	"strings"
)

// Runner executes a single external command and returns its combined output.
type Runner interface {
	Run(ctx context.Context, argv []string) ([]byte, error)
}

// ExecRunner runs commands as child processes.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, argv []string) ([]byte, error) {
	if len(argv) == 0 {
		return nil, errors.New("empty command")
	}
	return exec.CommandContext(ctx, argv[0], argv[1:]...).CombinedOutput()
}

func baseArgs(socketPath string) []string {
	if strings.TrimSpace(socketPath) == "" {
		return []string{}
	}
	return []string{"-S", socketPath}
}

func tmuxArgv(socketPath string, args ...string) []string {
	argv := append([]string{"tmux"}, baseArgs(socketPath)...)
	return append(argv, args...)
}
