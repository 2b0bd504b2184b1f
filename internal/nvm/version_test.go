package nvm

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCommands(t *testing.T) {
	v := RuntimeVersion{Name: "v20.10.0"}
	if got, want := SessionCommands(v), []string{"nvm use v20.10.0"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got, want := DefaultCommands(v), []string{"nvm alias default v20.10.0", "nvm use default"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMatches(t *testing.T) {
	v := RuntimeVersion{Name: "v20.10.0"}
	for _, alias := range []string{"v20.10.0", "20.10.0", " 20.10.0 "} {
		if !v.Matches(alias) {
			t.Fatalf("expected %q to match %s", alias, v.Name)
		}
	}
	for _, alias := range []string{"", "20", "lts/iron"} {
		if v.Matches(alias) {
			t.Fatalf("expected %q not to match %s", alias, v.Name)
		}
	}
}

func TestSortVersionsKeepsUnparseableOrder(t *testing.T) {
	versions := []RuntimeVersion{{Name: "zeta"}, {Name: "v2.0.0"}, {Name: "alpha"}, {Name: "v1.0.0"}}
	SortVersions(versions)
	if got, want := Names(versions), []string{"v1.0.0", "v2.0.0", "zeta", "alpha"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestResolveRoot(t *testing.T) {
	prev := userHomeDir
	userHomeDir = func() (string, error) { return "/home/tester", nil }
	t.Cleanup(func() { userHomeDir = prev })

	tests := map[string]string{
		"":             "/home/tester/.nvm",
		"  ":           "/home/tester/.nvm",
		"/opt/nvm":     "/opt/nvm",
		"~/tools/nvm":  "/home/tester/tools/nvm",
		"~":            "/home/tester",
		"relative/nvm": "relative/nvm",
	}
	for input, want := range tests {
		got, err := ResolveRoot(input)
		if err != nil {
			t.Fatalf("ResolveRoot(%q) error: %v", input, err)
		}
		if got != want {
			t.Fatalf("ResolveRoot(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestDefaultAlias(t *testing.T) {
	root := t.TempDir()
	if got := DefaultAlias(root); got != "" {
		t.Fatalf("expected empty alias without file, got %q", got)
	}
	if err := os.MkdirAll(filepath.Join(root, "alias"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "alias", "default"), []byte("v20.10.0\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := DefaultAlias(root); got != "v20.10.0" {
		t.Fatalf("expected v20.10.0, got %q", got)
	}
}
