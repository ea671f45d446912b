package key

import (
	"reflect"
	"testing"

	"github.com/but80/harppedal/harp/note"
)

func TestCatalog(t *testing.T) {
	if len(KeySignatures) != KeySignatureCount {
		t.Fatalf("catalog has %d entries", len(KeySignatures))
	}
	for _, ks := range KeySignatures {
		n := len(ks.SharpFlats())
		switch {
		case ks == None:
			if n != 0 || ks.HasSharps() || ks.HasFlats() {
				t.Errorf("None alters %d letters", n)
			}
		case ks.HasSharps():
			if ks.HasFlats() || n != int(ks-None) {
				t.Errorf("%v alters %d letters", ks, n)
			}
		case ks.HasFlats():
			if n != int(None-ks) {
				t.Errorf("%v alters %d letters", ks, n)
			}
		default:
			t.Errorf("%v has neither sharps nor flats", ks)
		}
		// the relative minor sits three semitones below the major tonic
		diff := (ks.MajorNote().Number() - ks.MinorNote().Number() + 12) % 12
		if diff != 3 {
			t.Errorf("%v: major %v and minor %v are %d apart", ks, ks.MajorNote(), ks.MinorNote(), diff)
		}
	}
}

func TestSharpFlatsIsCopy(t *testing.T) {
	list := Sharp2.SharpFlats()
	list[0] = note.B
	if Sharp2.SharpFlats()[0] != note.F {
		t.Error("SharpFlats exposes the catalog")
	}
}

func TestKeysByNote(t *testing.T) {
	tests := []struct {
		num   int
		major bool
		want  []KeySignature
	}{
		{note.New(note.E, note.Natural).Number(), true, []KeySignature{Sharp4}},
		{note.New(note.C, note.Sharp).Number(), true, []KeySignature{Flat5, Sharp7}},
		{note.New(note.B, note.Natural).Number(), true, []KeySignature{Flat7, Sharp5}},
		{note.New(note.A, note.Flat).Number(), true, []KeySignature{Flat4}},
		{11, false, []KeySignature{Flat7, Sharp5}},
		{note.New(note.A, note.Natural).Number(), false, []KeySignature{None}},
		{note.New(note.A, note.Sharp).Number(), false, []KeySignature{Flat5, Sharp7}},
		{note.New(note.G, note.Sharp).Number(), true, []KeySignature{Flat4}},
	}
	for _, tt := range tests {
		got := KeysByNote(tt.num, tt.major)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("KeysByNote(%d, %v) = %v, want %v", tt.num, tt.major, got, tt.want)
		}
	}
}

func TestKeysByNoteCoversEveryPitch(t *testing.T) {
	for p := 0; p < 12; p++ {
		for _, major := range []bool{true, false} {
			if len(KeysByNote(p, major)) == 0 {
				t.Errorf("no key for pitch %d major=%v", p, major)
			}
		}
	}
}

func TestParseKeySignature(t *testing.T) {
	tests := []struct {
		in   string
		want KeySignature
	}{
		{"none", None},
		{"C", None},
		{"3#", Sharp3},
		{"2b", Flat2},
		{"sharp7", Sharp7},
		{"Flat1", Flat1},
		{"4 flats", Flat4},
		{"6 sharps", Sharp6},
	}
	for _, tt := range tests {
		got, err := ParseKeySignature(tt.in)
		if err != nil {
			t.Errorf("ParseKeySignature(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKeySignature(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"", "8#", "0b", "x", "sharp"} {
		if _, err := ParseKeySignature(bad); err == nil {
			t.Errorf("ParseKeySignature(%q) succeeded", bad)
		}
	}
}
