package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Format
	}{
		{"y", YAMLFormat},
		{"yaml", YAMLFormat},
		{"yml", YAMLFormat},
		{"j", JSONFormat},
		{"json", JSONFormat},
	} {
		got, err := ParseFormat(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %s want %s", tc.in, got, tc.want)
		}
	}
	if _, err := ParseFormat("sjson"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestFromPath(t *testing.T) {
	if f := FromPath("a/b/c.JSON"); f != JSONFormat {
		t.Errorf("got %s", f)
	}
	if f := FromPath("c.yml"); f != YAMLFormat {
		t.Errorf("got %s", f)
	}
	if f := FromPath("noext"); f != YAMLFormat {
		t.Errorf("got %s", f)
	}
}

func TestFormatText(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("json")); err != nil {
		t.Fatal(err)
	}
	if !f.IsJSON() || f.String() != "json" {
		t.Errorf("unexpected %s", f)
	}
}
