// Package menu implements the line-oriented picker: it lists installed
// versions, reads an action and a version number from the user, and hands
// the resulting nvm commands to a Sender.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/tmux-node-picker/internal/format/table"
	"github.com/atomicstack/tmux-node-picker/internal/logging/events"
	"github.com/atomicstack/tmux-node-picker/internal/nvm"
	"github.com/atomicstack/tmux-node-picker/internal/theme"
)

const title = "--- NVM Node Version Picker ---"

const (
	levelAction  = "action"
	levelVersion = "version"
	levelEmpty   = "empty"
)

// ErrNoVersions is returned when input ends while no versions are installed.
var ErrNoVersions = errors.New("no Node.js versions detected; install one with 'nvm install <version>'")

var errQuit = errors.New("quit")

// Sender delivers command lines to the shell that should run them.
type Sender interface {
	Send(ctx context.Context, lines ...string) error
}

type Option func(*Menu)

// WithStyles overrides the plain default styling.
func WithStyles(styles *theme.Styles) Option {
	return func(m *Menu) {
		if styles != nil {
			m.styles = styles
		}
	}
}

// WithDefaultAlias marks the version matching alias as the current default.
func WithDefaultAlias(alias string) Option {
	return func(m *Menu) {
		m.defaultAlias = alias
	}
}

type Menu struct {
	in           *bufio.Reader
	out          io.Writer
	versions     []nvm.RuntimeVersion
	sender       Sender
	styles       *theme.Styles
	defaultAlias string
}

func New(in io.Reader, out io.Writer, versions []nvm.RuntimeVersion, sender Sender, opts ...Option) *Menu {
	m := &Menu{
		in:       bufio.NewReader(in),
		out:      out,
		versions: versions,
		sender:   sender,
		styles:   theme.Plain(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run drives a single pick. It returns nil when the user quits or after a
// successful dispatch, and loops on any input it cannot map to a choice.
func (m *Menu) Run(ctx context.Context) error {
	m.println(m.styles.Title.Render(title))
	m.println("")
	if len(m.versions) == 0 {
		return m.runEmpty()
	}
	m.renderVersions()

	action, err := m.chooseAction()
	if err != nil {
		return m.finish(levelAction, err)
	}
	version, err := m.chooseVersion()
	if err != nil {
		return m.finish(levelVersion, err)
	}
	return m.dispatch(ctx, action, version)
}

func (m *Menu) runEmpty() error {
	m.println(m.styles.Info.Render("No Node.js versions detected. Install one with 'nvm install <version>'."))
	m.println("")
	m.println(m.styles.Action.Render("q. Quit"))
	for {
		input, err := m.prompt(levelEmpty, "Enter your choice:")
		if err != nil {
			if errors.Is(err, io.EOF) {
				events.Menu.Quit(levelEmpty, "eof")
				return ErrNoVersions
			}
			return err
		}
		if isQuit(input) {
			return m.finish(levelEmpty, errQuit)
		}
		events.Menu.Invalid(levelEmpty, input)
		m.println(m.styles.Error.Render("Invalid choice. No versions are installed; enter 'q' to quit."))
	}
}

func (m *Menu) renderVersions() {
	m.println(m.styles.Section.Render("Installed Node.js versions:"))
	rows := make([][]string, len(m.versions))
	for i, v := range m.versions {
		marker := ""
		if v.Matches(m.defaultAlias) {
			marker = m.styles.Marker.Render("(default)")
		}
		rows[i] = []string{
			m.styles.Index.Render(fmt.Sprintf("%d.", i+1)),
			m.styles.Item.Render(v.Name),
			marker,
		}
	}
	for _, line := range table.Format(rows, []table.Alignment{table.AlignRight, table.AlignLeft, table.AlignLeft}) {
		m.println(line)
	}
	m.println("")
}

func (m *Menu) chooseAction() (Action, error) {
	m.println(m.styles.Section.Render("Select an action:"))
	m.println(m.styles.Action.Render("1. " + ActionSession.Label()))
	m.println(m.styles.Action.Render("2. " + ActionDefault.Label()))
	m.println(m.styles.Action.Render("q. Quit"))
	for {
		input, err := m.prompt(levelAction, "Enter your choice:")
		if err != nil {
			return 0, err
		}
		if isQuit(input) {
			return 0, errQuit
		}
		if action, ok := parseAction(input); ok {
			events.Menu.Action(action.String())
			return action, nil
		}
		events.Menu.Invalid(levelAction, input)
		m.println(m.styles.Error.Render("Invalid choice. Please enter '1', '2', or 'q'."))
	}
}

func (m *Menu) chooseVersion() (nvm.RuntimeVersion, error) {
	m.println("")
	for {
		input, err := m.prompt(levelVersion, "Enter the number of the version you want to use (or 'q' to quit):")
		if err != nil {
			return nvm.RuntimeVersion{}, err
		}
		if isQuit(input) {
			return nvm.RuntimeVersion{}, errQuit
		}
		if idx, ok := parseIndex(input, len(m.versions)); ok {
			return m.versions[idx], nil
		}
		events.Menu.Invalid(levelVersion, input)
		hint := fmt.Sprintf("Invalid choice. Please enter a number from 1 to %d, or 'q'.", len(m.versions))
		if idx, ok := suggest(input, m.versions); ok {
			hint += fmt.Sprintf(" Did you mean %d (%s)?", idx+1, m.versions[idx].Name)
		}
		m.println(m.styles.Error.Render(hint))
	}
}

func (m *Menu) dispatch(ctx context.Context, action Action, version nvm.RuntimeVersion) error {
	events.Menu.Select(action.String(), version.Name)
	switch action {
	case ActionDefault:
		m.println(m.styles.Info.Render(fmt.Sprintf("Setting default Node.js version to %s and applying now...", version.Name)))
	default:
		m.println(m.styles.Info.Render(fmt.Sprintf("Switching Node.js version for this session to %s...", version.Name)))
	}
	if err := m.sender.Send(ctx, action.Commands(version)...); err != nil {
		return fmt.Errorf("switch to %s: %w", version.Name, err)
	}
	switch action {
	case ActionDefault:
		m.println(m.styles.Success.Render("Default updated."))
	default:
		m.println(m.styles.Success.Render("Session updated."))
	}
	return nil
}

// finish converts the quit and end-of-input signals into a clean exit.
func (m *Menu) finish(level string, err error) error {
	switch {
	case errors.Is(err, errQuit):
		events.Menu.Quit(level, "quit")
		m.println("Exiting.")
		return nil
	case errors.Is(err, io.EOF):
		events.Menu.Quit(level, "eof")
		return nil
	default:
		return err
	}
}

func (m *Menu) prompt(level, text string) (string, error) {
	events.Menu.Prompt(level)
	fmt.Fprint(m.out, m.styles.Prompt.Render(text)+" ")
	line, err := m.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			m.println("")
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) println(text string) {
	fmt.Fprintln(m.out, text)
}
