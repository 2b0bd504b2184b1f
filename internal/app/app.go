package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/tmux-node-picker/internal/clierrors"
	"github.com/atomicstack/tmux-node-picker/internal/logging"
	"github.com/atomicstack/tmux-node-picker/internal/logging/events"
	"github.com/atomicstack/tmux-node-picker/internal/menu"
	"github.com/atomicstack/tmux-node-picker/internal/nvm"
	"github.com/atomicstack/tmux-node-picker/internal/theme"
	"github.com/atomicstack/tmux-node-picker/internal/tmux"
)

// Config describes user-provided application options.
type Config struct {
	NvmDir     string
	SocketPath string
	Executable string
	Sort       bool
	NoEnter    bool
}

type deps struct {
	stdin  io.Reader
	stdout io.Writer
	getenv func(string) string
	runner tmux.Runner
	styles *theme.Styles
}

// Run probes the tmux environment, lists installed versions and drives the
// picker on the process's standard streams.
func Run(ctx context.Context, cfg Config) error {
	styles := theme.Plain()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		styles = theme.Default()
	}
	return run(ctx, cfg, deps{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		getenv: os.Getenv,
		runner: tmux.ExecRunner{},
		styles: styles,
	})
}

func run(ctx context.Context, cfg Config, d deps) error {
	env, err := tmux.EnsureEnvironment(cfg.SocketPath, d.getenv)
	if err != nil {
		events.Probe.Failed(err)
		return clierrors.Exit(err, clierrors.CodeEnvironment)
	}
	events.Probe.Resolved(env.SocketPath, env.PaneID)

	root, err := nvm.ResolveRoot(cfg.NvmDir)
	if err != nil {
		return clierrors.Exit(fmt.Errorf("resolve nvm directory: %w", err), clierrors.CodeEnvironment)
	}

	lister := nvm.Lister{Executable: cfg.Executable, Sort: cfg.Sort}
	versions, err := lister.List(root)
	if err != nil {
		// An unreadable root is reported the same way as an empty one.
		logging.Error(err)
		events.Versions.Error(root, err)
		versions = nil
	}

	sender := tmux.NewPaneSender(d.runner, env, !cfg.NoEnter)
	picker := menu.New(d.stdin, d.stdout, versions, sender,
		menu.WithStyles(d.styles),
		menu.WithDefaultAlias(nvm.DefaultAlias(root)),
	)

	err = picker.Run(ctx)
	var injErr *tmux.InjectionError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, menu.ErrNoVersions):
		return clierrors.Exit(err, clierrors.CodeNoVersions)
	case errors.As(err, &injErr):
		return clierrors.Exit(err, clierrors.CodeInjection)
	default:
		return err
	}
}
