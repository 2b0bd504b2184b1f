package events

import "github.com/atomicstack/tmux-node-picker/internal/logging"

type MenuTracer struct{}

type DispatchTracer struct{}

var (
	Menu     = MenuTracer{}
	Dispatch = DispatchTracer{}
)

func (MenuTracer) Prompt(level string) {
	logging.Trace("menu.prompt", map[string]interface{}{"level": level})
}

func (MenuTracer) Invalid(level, input string) {
	logging.Trace("menu.invalid", map[string]interface{}{"level": level, "input": input})
}

func (MenuTracer) Action(action string) {
	logging.Trace("menu.action", map[string]interface{}{"action": action})
}

func (MenuTracer) Select(action, version string) {
	logging.Trace("menu.select", map[string]interface{}{"action": action, "version": version})
}

func (MenuTracer) Quit(level, reason string) {
	logging.Trace("menu.quit", map[string]interface{}{"level": level, "reason": reason})
}

func (DispatchTracer) Send(paneID, line string, enter bool) {
	logging.Trace("dispatch.send", map[string]interface{}{"pane": paneID, "line": line, "enter": enter})
}

func (DispatchTracer) Error(paneID, line string, err error) {
	if err == nil {
		return
	}
	logging.Trace("dispatch.error", map[string]interface{}{"pane": paneID, "line": line, "error": err.Error()})
}
