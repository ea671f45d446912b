package note

import (
	"testing"

	"github.com/but80/harppedal/harp/mask"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		n    Note
		want int
	}{
		{New(A, Natural), 0},
		{New(A, Flat), -1},
		{Note{Basic: A, SharpFlat: Flat, Octave: true}, 11},
		{New(C, Natural), 3},
		{New(C, Sharp), 4},
		{New(D, Flat), 4},
		{New(F, DoubleSharp), 10},
		{Note{Basic: G, SharpFlat: Sharp, Octave: true}, 23},
		{New(C, Flat), 2},
	}
	for _, tt := range tests {
		if got := tt.n.Number(); got != tt.want {
			t.Errorf("%v.Number() = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestPitchMaskAndClass(t *testing.T) {
	ab := New(A, Flat)
	if ab.PitchClass() != 11 {
		t.Errorf("A-flat class = %d", ab.PitchClass())
	}
	if ab.PitchMask() != mask.Mask(0x001) {
		t.Errorf("A-flat mask = %s", ab.PitchMask())
	}
	if !ab.SamePitch(New(G, Sharp)) {
		t.Error("A-flat and G-sharp should share a pitch")
	}
	if New(B, Sharp).SamePitch(New(B, Natural)) {
		t.Error("B-sharp and B should differ")
	}
	if !New(B, Sharp).SamePitch(New(C, Natural)) {
		t.Error("B-sharp and C should share a pitch")
	}
}

func TestFromPitch(t *testing.T) {
	for num := -1; num < 24; num++ {
		n := FromPitch(num)
		if n.PitchClass() != mask.Class(num) {
			t.Errorf("FromPitch(%d) = %v with class %d", num, n, n.PitchClass())
		}
		if 0 <= num && num < 12 && n.Number() != num {
			t.Errorf("FromPitch(%d).Number() = %d", num, n.Number())
		}
	}
	if got := FromPitch(4).String(); got != "C#" {
		t.Errorf("FromPitch(4) = %s", got)
	}
	if got := FromPitch(6).String(); got != "Eb" {
		t.Errorf("FromPitch(6) = %s", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Note
	}{
		{"C", New(C, Natural)},
		{"bb", New(B, Flat)},
		{"F#", New(F, Sharp)},
		{"Gx", New(G, DoubleSharp)},
		{"E♭", New(E, Flat)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"", "H", "C?", "Cbb"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) succeeded", bad)
		}
	}
}

func TestNextAndJoin(t *testing.T) {
	if G.Next(1) != A || A.Next(-1) != G || C.Next(7) != C {
		t.Error("Next does not wrap")
	}
	notes, err := ParseList([]string{"C", "E", "G", "Bb"})
	if err != nil {
		t.Fatal(err)
	}
	if got := Join(notes); got != "C E G Bb" {
		t.Errorf("Join = %q", got)
	}
	want := mask.FromPitch(3) | mask.FromPitch(7) | mask.FromPitch(10) | mask.FromPitch(1)
	if got := Mask(notes); got != want {
		t.Errorf("Mask = %s, want %s", got, want)
	}
}
