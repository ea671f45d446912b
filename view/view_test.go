package view

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/but80/harppedal/harp/note"
	"github.com/but80/harppedal/harp/pedal"
)

func TestLines(t *testing.T) {
	tests := []struct {
		pos  string
		want []string
	}{
		{
			"",
			[]string{
				"b . . . | . . . .",
				"- D C B | E F G A",
				"# . . . | . . . .",
			},
		},
		{
			"Ab Bb C D Eb F# G",
			[]string{
				"b . . B | E . . A",
				"- D C . | . . G .",
				"# . . . | . F . .",
			},
		},
	}
	for _, tt := range tests {
		pos, err := pedal.ParsePosition(tt.pos)
		if err != nil {
			t.Fatal(err)
		}
		if got := Lines(pos); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Lines(%q) = %q, want %q", tt.pos, got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	got := PlainTheme.Render(pedal.AllNatural, "C major")
	for _, want := range []string{"- D C B | E F G A", "C major"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() = %q, missing %q", got, want)
		}
	}
	if got := PlainTheme.Render(pedal.AllNatural, ""); strings.Contains(got, "---") {
		t.Errorf("rule without names: %q", got)
	}
}

func TestWatcher(t *testing.T) {
	p := pedal.NewPedals()
	out := &bytes.Buffer{}
	v := NewWatcher(out, p, PlainTheme)

	p.SetPosition(note.F, note.Sharp)
	if v.Drawn != 1 {
		t.Fatalf("drawn %d times", v.Drawn)
	}
	if !strings.Contains(out.String(), "G major") {
		t.Errorf("output %q", out.String())
	}

	// unchanged position
	p.SetPosition(note.F, note.Sharp)
	if v.Drawn != 1 {
		t.Errorf("redrawn without change")
	}

	v.Close()
	p.SetAllNatural()
	if v.Drawn != 1 {
		t.Errorf("drawn after Close")
	}
}
