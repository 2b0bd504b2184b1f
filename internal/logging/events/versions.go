package events

import "github.com/atomicstack/tmux-node-picker/internal/logging"

type VersionsTracer struct{}

var Versions = VersionsTracer{}

func (VersionsTracer) Scan(dir, executable string) {
	logging.Trace("versions.scan", map[string]interface{}{"dir": dir, "executable": executable})
}

func (VersionsTracer) Missing(dir string) {
	logging.Trace("versions.missing", map[string]interface{}{"dir": dir})
}

func (VersionsTracer) Skip(name, reason string) {
	logging.Trace("versions.skip", map[string]interface{}{"name": name, "reason": reason})
}

func (VersionsTracer) Listed(dir string, names []string) {
	logging.Trace("versions.listed", map[string]interface{}{"dir": dir, "names": names, "count": len(names)})
}

func (VersionsTracer) Error(dir string, err error) {
	if err == nil {
		return
	}
	logging.Trace("versions.error", map[string]interface{}{"dir": dir, "error": err.Error()})
}
