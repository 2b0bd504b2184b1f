package nvm

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

type fixture struct {
	name   string
	binary bool
}

func writeTree(t *testing.T, entries ...fixture) string {
	t.Helper()
	root := t.TempDir()
	dir := VersionsDir(root)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, e := range entries {
		path := filepath.Join(dir, e.name)
		if err := os.MkdirAll(path, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}
		if !e.binary {
			continue
		}
		bin := filepath.Join(path, "bin")
		if err := os.MkdirAll(bin, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", bin, err)
		}
		if err := os.WriteFile(filepath.Join(bin, "node"), []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatalf("write node: %v", err)
		}
	}
	return root
}

func TestListKeepsOnlyDirectoriesWithExecutable(t *testing.T) {
	root := writeTree(t,
		fixture{name: "18.20.0", binary: true},
		fixture{name: "20.10.0", binary: true},
		fixture{name: "cache"},
	)

	versions, err := Lister{}.List(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := Names(versions), []string{"18.20.0", "20.10.0"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for _, v := range versions {
		if !v.HasBinary {
			t.Fatalf("expected %s to report HasBinary", v.Name)
		}
		if v.Path != filepath.Join(VersionsDir(root), v.Name) {
			t.Fatalf("unexpected path %q for %s", v.Path, v.Name)
		}
	}
}

func TestListSkipsBrokenInstalls(t *testing.T) {
	root := writeTree(t, fixture{name: "v16.20.2", binary: true})
	dir := VersionsDir(root)

	// bin/ exists but node is a directory.
	if err := os.MkdirAll(filepath.Join(dir, "v17.0.0", "bin", "node"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	// Empty bin/.
	if err := os.MkdirAll(filepath.Join(dir, "v19.0.0", "bin"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	// Stray file next to the version directories.
	if err := os.WriteFile(filepath.Join(dir, "README"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	versions, err := Lister{}.List(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := Names(versions), []string{"v16.20.2"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestListFollowsSymlinkedVersionDirs(t *testing.T) {
	root := writeTree(t, fixture{name: "v20.10.0", binary: true})
	link := filepath.Join(VersionsDir(root), "v20-link")
	if err := os.Symlink(filepath.Join(VersionsDir(root), "v20.10.0"), link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	versions, err := Lister{}.List(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(versions) != 2 {
		t.Fatalf("expected symlinked dir to be listed, got %v", Names(versions))
	}
}

func TestListMissingRootIsEmpty(t *testing.T) {
	versions, err := Lister{}.List(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(versions) != 0 {
		t.Fatalf("expected no versions, got %v", Names(versions))
	}

	rootOnly := t.TempDir()
	versions, err = Lister{}.List(rootOnly)
	if err != nil {
		t.Fatalf("expected no error for root without versions/node, got %v", err)
	}
	if len(versions) != 0 {
		t.Fatalf("expected no versions, got %v", Names(versions))
	}
}

func TestListIsIdempotentAndReadsThrough(t *testing.T) {
	root := writeTree(t,
		fixture{name: "v18.20.0", binary: true},
		fixture{name: "v20.10.0", binary: true},
	)
	lister := Lister{}

	first, err := lister.List(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := lister.List(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %v and %v", first, second)
	}

	if err := os.RemoveAll(filepath.Join(VersionsDir(root), "v18.20.0", "bin")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	third, err := lister.List(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := Names(third), []string{"v20.10.0"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected filesystem change to be observed, got %v", got)
	}
}

func TestListCustomExecutable(t *testing.T) {
	root := writeTree(t, fixture{name: "v20.10.0", binary: true})
	versions, err := Lister{Executable: "iojs"}.List(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(versions) != 0 {
		t.Fatalf("expected no versions without bin/iojs, got %v", Names(versions))
	}
}

func TestListSorted(t *testing.T) {
	root := writeTree(t,
		fixture{name: "v9.11.2", binary: true},
		fixture{name: "v18.20.0", binary: true},
		fixture{name: "v10.24.1", binary: true},
		fixture{name: "system", binary: true},
	)

	unsorted, err := Lister{}.List(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := Names(unsorted), []string{"system", "v10.24.1", "v18.20.0", "v9.11.2"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected directory order %v, got %v", want, got)
	}

	sorted, err := Lister{Sort: true}.List(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := Names(sorted), []string{"v9.11.2", "v10.24.1", "v18.20.0", "system"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected semver order %v, got %v", want, got)
	}
}
