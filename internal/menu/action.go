package menu

import (
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/tmux-node-picker/internal/nvm"
)

// Action is a top-level menu choice.
type Action int

const (
	ActionSession Action = iota + 1
	ActionDefault
)

func (a Action) String() string {
	switch a {
	case ActionSession:
		return "session"
	case ActionDefault:
		return "default"
	default:
		return "unknown"
	}
}

// Label is the text shown for the action in the menu.
func (a Action) Label() string {
	switch a {
	case ActionSession:
		return "Change Node version for current session"
	case ActionDefault:
		return "Change default Node version"
	default:
		return ""
	}
}

// Commands returns the lines to type into the pane for version v.
func (a Action) Commands(v nvm.RuntimeVersion) []string {
	switch a {
	case ActionDefault:
		return nvm.DefaultCommands(v)
	default:
		return nvm.SessionCommands(v)
	}
}

func parseAction(input string) (Action, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "1", "s":
		return ActionSession, true
	case "2", "d":
		return ActionDefault, true
	default:
		return 0, false
	}
}

func isQuit(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), "q")
}

// parseIndex maps a 1-based menu number to a slice index.
func parseIndex(input string, count int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > count {
		return 0, false
	}
	return n - 1, true
}

// suggest finds the version whose name best matches non-numeric input,
// e.g. a user typing "20.10" instead of its menu number.
func suggest(input string, versions []nvm.RuntimeVersion) (int, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" || len(versions) == 0 {
		return 0, false
	}
	if _, err := strconv.Atoi(trimmed); err == nil {
		return 0, false
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, nvm.Names(versions))
	if len(ranks) == 0 {
		return 0, false
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex, true
}
