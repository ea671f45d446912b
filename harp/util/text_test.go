package util

import (
	"reflect"
	"testing"
)

func TestIndent(t *testing.T) {
	if got := Indent("", "\t"); got != "" {
		t.Errorf("Indent(empty) = %q", got)
	}
	if got, want := Indent("a\nb", "  "), "  a\n  b"; got != want {
		t.Errorf("Indent = %q, want %q", got, want)
	}
}

func TestHex(t *testing.T) {
	if got := Hex(nil); got != "[]" {
		t.Errorf("Hex(nil) = %q", got)
	}
	if got, want := Hex([]uint8{0x90, 0x2D, 0x60}), "[90 2D 60]"; got != want {
		t.Errorf("Hex = %q, want %q", got, want)
	}
}

func TestJoinLines(t *testing.T) {
	s := JoinLines("", "")
	s = JoinLines(s, "C major")
	s = JoinLines(s, "")
	s = JoinLines(s, "G7")
	if want := "C major\nG7"; s != want {
		t.Errorf("JoinLines = %q, want %q", s, want)
	}
}

func TestFields(t *testing.T) {
	got := Fields("C, E  G,Bb\n")
	want := []string{"C", "E", "G", "Bb"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Fields = %v, want %v", got, want)
	}
}
