package table

import (
	"reflect"
	"testing"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"1.", "v9.11.2", ""},
		{"10.", "v18.20.0", "(default)"},
	}
	got := Format(rows, []Alignment{AlignRight, AlignLeft, AlignLeft})
	want := []string{
		" 1.  v9.11.2",
		"10.  v18.20.0  (default)",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected rows:\n got %q\nwant %q", got, want)
	}
}

func TestFormatIgnoresANSIWidth(t *testing.T) {
	rows := [][]string{
		{"\x1b[1ma\x1b[0m", "x"},
		{"bbb", "y"},
	}
	got := Format(rows, nil)
	want := []string{
		"\x1b[1ma\x1b[0m    x",
		"bbb  y",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected rows:\n got %q\nwant %q", got, want)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
