package menu

import (
	"testing"

	"github.com/atomicstack/tmux-node-picker/internal/nvm"
)

func TestParseAction(t *testing.T) {
	tests := map[string]struct {
		action Action
		ok     bool
	}{
		"1":   {ActionSession, true},
		"s":   {ActionSession, true},
		" S ": {ActionSession, true},
		"2":   {ActionDefault, true},
		"d":   {ActionDefault, true},
		"3":   {0, false},
		"q":   {0, false},
		"":    {0, false},
		"12":  {0, false},
	}
	for input, want := range tests {
		action, ok := parseAction(input)
		if action != want.action || ok != want.ok {
			t.Fatalf("parseAction(%q) = (%v, %v), want (%v, %v)", input, action, ok, want.action, want.ok)
		}
	}
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		input string
		count int
		idx   int
		ok    bool
	}{
		{"1", 2, 0, true},
		{" 2 ", 2, 1, true},
		{"0", 2, 0, false},
		{"3", 2, 0, false},
		{"-1", 2, 0, false},
		{"1.5", 2, 0, false},
		{"1", 0, 0, false},
	}
	for _, tt := range tests {
		idx, ok := parseIndex(tt.input, tt.count)
		if idx != tt.idx || ok != tt.ok {
			t.Fatalf("parseIndex(%q, %d) = (%d, %v), want (%d, %v)", tt.input, tt.count, idx, ok, tt.idx, tt.ok)
		}
	}
}

func TestSuggest(t *testing.T) {
	versions := []nvm.RuntimeVersion{{Name: "v18.20.0"}, {Name: "v20.10.0"}}
	if idx, ok := suggest("v18", versions); !ok || idx != 0 {
		t.Fatalf("expected suggestion 0, got (%d, %v)", idx, ok)
	}
	if idx, ok := suggest("20.1", versions); !ok || idx != 1 {
		t.Fatalf("expected suggestion 1, got (%d, %v)", idx, ok)
	}
	if _, ok := suggest("42", versions); ok {
		t.Fatalf("expected no suggestion for numeric input")
	}
	if _, ok := suggest("lts", versions); ok {
		t.Fatalf("expected no suggestion for unrelated input")
	}
}

func TestActionCommands(t *testing.T) {
	v := nvm.RuntimeVersion{Name: "v18.20.0"}
	if got := ActionSession.Commands(v); len(got) != 1 || got[0] != "nvm use v18.20.0" {
		t.Fatalf("unexpected session commands %v", got)
	}
	if got := ActionDefault.Commands(v); len(got) != 2 || got[0] != "nvm alias default v18.20.0" || got[1] != "nvm use default" {
		t.Fatalf("unexpected default commands %v", got)
	}
}
