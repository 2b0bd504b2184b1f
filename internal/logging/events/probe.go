package events

import "github.com/atomicstack/tmux-node-picker/internal/logging"

type ProbeTracer struct{}

var Probe = ProbeTracer{}

func (ProbeTracer) Resolved(socketPath, paneID string) {
	logging.Trace("probe.resolved", map[string]interface{}{"socket": socketPath, "pane": paneID})
}

func (ProbeTracer) PaneQuery(socketPath, paneID string) {
	logging.Trace("probe.pane-query", map[string]interface{}{"socket": socketPath, "pane": paneID})
}

func (ProbeTracer) Failed(err error) {
	if err == nil {
		return
	}
	logging.Trace("probe.failed", map[string]interface{}{"error": err.Error()})
}
