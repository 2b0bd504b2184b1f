package nvm

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/tmux-node-picker/internal/logging/events"
)

// Lister scans an nvm root for installed versions. The zero value looks for
// bin/node and keeps directory order.
type Lister struct {
	Executable string
	Sort       bool
}

// VersionsDir is the directory under root that holds one entry per version.
func VersionsDir(root string) string {
	return filepath.Join(root, "versions", "node")
}

// List returns the versions under root whose executable is a regular file.
// A missing root is not an error; it simply yields no versions.
func (l Lister) List(root string) ([]RuntimeVersion, error) {
	exe := l.executable()
	dir := VersionsDir(root)
	events.Versions.Scan(dir, exe)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			events.Versions.Missing(dir)
			return []RuntimeVersion{}, nil
		}
		return []RuntimeVersion{}, fmt.Errorf("read versions dir %s: %w", dir, err)
	}

	versions := make([]RuntimeVersion, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			events.Versions.Skip(entry.Name(), "not a directory")
			continue
		}
		if !isRegularFile(filepath.Join(path, "bin", exe)) {
			events.Versions.Skip(entry.Name(), "missing bin/"+exe)
			continue
		}
		versions = append(versions, RuntimeVersion{Name: entry.Name(), Path: path, HasBinary: true})
	}
	if l.Sort {
		SortVersions(versions)
	}
	events.Versions.Listed(dir, Names(versions))
	return versions, nil
}

func (l Lister) executable() string {
	if exe := strings.TrimSpace(l.Executable); exe != "" {
		return exe
	}
	return DefaultExecutable
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
