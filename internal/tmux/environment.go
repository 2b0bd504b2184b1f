package tmux

import (
	"errors"
	"fmt"
	"os/user"
	"path/filepath"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"

	"github.com/atomicstack/tmux-node-picker/internal/logging/events"
)

// ErrNotInTmux reports that the process was not launched from a tmux pane.
var ErrNotInTmux = errors.New("this program must be run inside a tmux session; start one with 'tmux' first")

// Environment is the tmux context captured once at startup. Every dispatch
// targets PaneID on the server listening at SocketPath.
type Environment struct {
	SocketPath string
	PaneID     string
}

type paneQuerier interface {
	DisplayMessage(target, format string) (string, error)
	Close() error
}

var (
	newControlClient = func(socketPath string) (paneQuerier, error) {
		if socketPath != "" {
			return gotmux.NewTmux(socketPath)
		}
		return gotmux.DefaultTmux()
	}

	currentUID = func() (string, error) {
		u, err := user.Current()
		if err != nil {
			return "", err
		}
		return u.Uid, nil
	}
)

// EnsureEnvironment checks that a tmux session is active and resolves the
// socket and pane the picker was started from. getenv is usually os.Getenv.
func EnsureEnvironment(socketFlag string, getenv func(string) string) (Environment, error) {
	if strings.TrimSpace(getenv("TMUX")) == "" {
		return Environment{}, ErrNotInTmux
	}
	socketPath, err := ResolveSocketPath(socketFlag, getenv)
	if err != nil {
		return Environment{}, fmt.Errorf("resolve socket path: %w", err)
	}
	paneID := strings.TrimSpace(getenv("TMUX_PANE"))
	if paneID == "" {
		paneID, err = queryCurrentPane(socketPath)
		if err != nil {
			return Environment{}, fmt.Errorf("detect current pane: %w", err)
		}
	}
	return Environment{SocketPath: socketPath, PaneID: paneID}, nil
}

// ResolveSocketPath picks the tmux server socket: an explicit value first,
// then the socket recorded in $TMUX, then the tmux default location.
func ResolveSocketPath(flagValue string, getenv func(string) string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if tmuxEnv := getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	uid, err := currentUID()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", uid), "default"), nil
}

func queryCurrentPane(socketPath string) (string, error) {
	client, err := newControlClient(socketPath)
	if err != nil {
		return "", err
	}
	defer client.Close()
	id, err := client.DisplayMessage("", "#{pane_id}")
	if err != nil {
		return "", err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", errors.New("tmux reported no active pane")
	}
	events.Probe.PaneQuery(socketPath, id)
	return id, nil
}
