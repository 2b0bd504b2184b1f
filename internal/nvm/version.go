// Package nvm discovers Node.js versions installed by nvm and builds the
// shell commands that switch between them.
package nvm

import (
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DefaultExecutable is the binary every usable version directory carries.
const DefaultExecutable = "node"

// RuntimeVersion is one installed Node.js version directory.
type RuntimeVersion struct {
	Name      string
	Path      string
	HasBinary bool
}

func (v RuntimeVersion) String() string {
	return v.Name
}

// Matches reports whether alias names this version, with or without the
// leading "v" nvm puts on directory names.
func (v RuntimeVersion) Matches(alias string) bool {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return false
	}
	return strings.TrimPrefix(alias, "v") == strings.TrimPrefix(v.Name, "v")
}

// Names returns the directory names of versions in order.
func Names(versions []RuntimeVersion) []string {
	names := make([]string, len(versions))
	for i, v := range versions {
		names[i] = v.Name
	}
	return names
}

// SortVersions orders versions ascending by semantic version. Names that do
// not parse keep their relative order after every parseable one.
func SortVersions(versions []RuntimeVersion) {
	parsed := make(map[string]*semver.Version, len(versions))
	for _, v := range versions {
		if sv, err := semver.NewVersion(v.Name); err == nil {
			parsed[v.Name] = sv
		}
	}
	sort.SliceStable(versions, func(i, j int) bool {
		a, aok := parsed[versions[i].Name]
		b, bok := parsed[versions[j].Name]
		switch {
		case aok && bok:
			return a.LessThan(b)
		case aok:
			return true
		default:
			return false
		}
	})
}
