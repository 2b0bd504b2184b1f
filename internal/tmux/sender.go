package tmux

import (
	"context"
	"fmt"
	"strings"

	"github.com/atomicstack/tmux-node-picker/internal/logging/events"
)

// InjectionError describes a send-keys call that tmux rejected.
type InjectionError struct {
	PaneID string
	Line   string
	Output string
	Err    error
}

func (e *InjectionError) Error() string {
	msg := fmt.Sprintf("send %q to pane %s: %v", e.Line, e.PaneID, e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}

func (e *InjectionError) Unwrap() error {
	return e.Err
}

// PaneSender types lines into a single pane as if the user entered them.
type PaneSender struct {
	runner     Runner
	socketPath string
	paneID     string
	enter      bool
}

// NewPaneSender returns a sender bound to env.PaneID. When enter is false the
// text is typed but left for the user to confirm.
func NewPaneSender(runner Runner, env Environment, enter bool) *PaneSender {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &PaneSender{
		runner:     runner,
		socketPath: env.SocketPath,
		paneID:     env.PaneID,
		enter:      enter,
	}
}

// Send delivers each line in order and stops at the first failure.
func (s *PaneSender) Send(ctx context.Context, lines ...string) error {
	for _, line := range lines {
		if err := s.sendLine(ctx, line); err != nil {
			events.Dispatch.Error(s.paneID, line, err)
			return err
		}
	}
	return nil
}

func (s *PaneSender) sendLine(ctx context.Context, line string) error {
	if strings.TrimSpace(s.paneID) == "" {
		return &InjectionError{Line: line, Err: fmt.Errorf("pane target required")}
	}
	events.Dispatch.Send(s.paneID, line, s.enter)
	literal := tmuxArgv(s.socketPath, "send-keys", "-t", s.paneID, "-l", line)
	if out, err := s.runner.Run(ctx, literal); err != nil {
		return &InjectionError{PaneID: s.paneID, Line: line, Output: string(out), Err: err}
	}
	if !s.enter {
		return nil
	}
	enter := tmuxArgv(s.socketPath, "send-keys", "-t", s.paneID, "Enter")
	if out, err := s.runner.Run(ctx, enter); err != nil {
		return &InjectionError{PaneID: s.paneID, Line: line, Output: string(out), Err: err}
	}
	return nil
}
