package note

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/but80/harppedal/harp/mask"
	"github.com/pkg/errors"
)

// BasicNote is a natural letter. Harp pedals are numbered in this order too.
type BasicNote int

const (
	A BasicNote = iota
	B
	C
	D
	E
	F
	G
)

// BasicNoteCount is the number of letters.
const BasicNoteCount = 7

var basicNoteName = []string{"A", "B", "C", "D", "E", "F", "G"}

// Semitones above A natural.
var basicNoteNum = []int{0, 2, 3, 5, 7, 8, 10}

// BasicNotes lists A..G.
var BasicNotes = []BasicNote{A, B, C, D, E, F, G}

func (b BasicNote) String() string {
	if b < A || G < b {
		return fmt.Sprintf("undefined(%d)", int(b))
	}
	return basicNoteName[b]
}

// Num is the pitch number of the natural letter.
func (b BasicNote) Num() int {
	return basicNoteNum[b]
}

// Next walks the letters cyclically.
func (b BasicNote) Next(n int) BasicNote {
	i := (int(b) + n) % BasicNoteCount
	if i < 0 {
		i += BasicNoteCount
	}
	return BasicNote(i)
}

func (b BasicNote) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func ParseBasicNote(s string) (BasicNote, error) {
	t := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range basicNoteName {
		if t == name {
			return BasicNote(i), nil
		}
	}
	return A, errors.Errorf("unknown note letter %q", s)
}

// SharpFlat is an accidental. Only the first three are pedal positions.
type SharpFlat int

const (
	Sharp SharpFlat = iota
	Natural
	Flat
	DoubleSharp
)

// PedalPositions are the settable SharpFlat values in search order.
var PedalPositions = []SharpFlat{Sharp, Natural, Flat}

var sharpFlatName = []string{"sharp", "natural", "flat", "double sharp"}
var sharpFlatSuffix = []string{"#", "", "b", "x"}
var sharpFlatOffset = []int{1, 0, -1, 2}

func (sf SharpFlat) String() string {
	if sf < Sharp || DoubleSharp < sf {
		return fmt.Sprintf("undefined(%d)", int(sf))
	}
	return sharpFlatName[sf]
}

func (sf SharpFlat) Suffix() string {
	return sharpFlatSuffix[sf]
}

func (sf SharpFlat) Offset() int {
	return sharpFlatOffset[sf]
}

func (sf SharpFlat) MarshalJSON() ([]byte, error) {
	return json.Marshal(sf.String())
}

// ParseSharpFlat accepts a suffix ("#", "b", "x", "") or a name.
func ParseSharpFlat(s string) (SharpFlat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "#", "♯", "s", "sharp":
		return Sharp, nil
	case "", "♮", "n", "natural":
		return Natural, nil
	case "b", "♭", "f", "flat":
		return Flat, nil
	case "x", "##", "double sharp", "doublesharp":
		return DoubleSharp, nil
	}
	return Natural, errors.Errorf("unknown accidental %q", s)
}

// Note is a spelled pitch. Octave raises it by 12.
type Note struct {
	Basic     BasicNote `json:"basic"`
	SharpFlat SharpFlat `json:"sharp_flat"`
	Octave    bool      `json:"octave,omitempty"`
}

func New(b BasicNote, sf SharpFlat) Note {
	return Note{Basic: b, SharpFlat: sf}
}

// Number is the pitch number counted from A natural. A-flat without Octave
// is -1.
func (n Note) Number() int {
	num := n.Basic.Num() + n.SharpFlat.Offset()
	if n.Octave {
		num += 12
	}
	return num
}

func (n Note) PitchClass() int {
	return mask.Class(n.Number())
}

func (n Note) PitchMask() mask.Mask {
	return mask.FromPitch(n.Number())
}

// SamePitch compares pitch classes regardless of spelling.
func (n Note) SamePitch(o Note) bool {
	return n.PitchClass() == o.PitchClass()
}

func (n Note) String() string {
	return n.Basic.String() + n.SharpFlat.Suffix()
}

// defaultSpelling names each pitch class when only a number is known.
var defaultSpelling = []Note{
	{Basic: A, SharpFlat: Natural},
	{Basic: B, SharpFlat: Flat},
	{Basic: B, SharpFlat: Natural},
	{Basic: C, SharpFlat: Natural},
	{Basic: C, SharpFlat: Sharp},
	{Basic: D, SharpFlat: Natural},
	{Basic: E, SharpFlat: Flat},
	{Basic: E, SharpFlat: Natural},
	{Basic: F, SharpFlat: Natural},
	{Basic: F, SharpFlat: Sharp},
	{Basic: G, SharpFlat: Natural},
	{Basic: A, SharpFlat: Flat},
}

// FromPitch spells a pitch number with the common choice of accidental.
// Octave is set for numbers of 12 and above.
func FromPitch(num int) Note {
	n := defaultSpelling[mask.Class(num)]
	n.Octave = 12 <= num
	if n.Basic == A && n.SharpFlat == Flat {
		// A-flat is spelled below A natural and needs the flag to reach 11
		n.Octave = 11 <= num
	}
	return n
}

// Parse reads a letter followed by an optional accidental, e.g. "Bb", "F#",
// "Cx" or "e".
func Parse(s string) (Note, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Note{}, errors.New("empty note name")
	}
	b, err := ParseBasicNote(t[:1])
	if err != nil {
		return Note{}, errors.Wrapf(err, "parsing note %q", s)
	}
	sf, err := ParseSharpFlat(t[1:])
	if err != nil {
		return Note{}, errors.Wrapf(err, "parsing note %q", s)
	}
	return New(b, sf), nil
}

// ParseList parses each name in turn and stops at the first error.
func ParseList(names []string) ([]Note, error) {
	notes := []Note{}
	for _, name := range names {
		n, err := Parse(name)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// Join renders notes separated by single spaces.
func Join(notes []Note) string {
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = n.String()
	}
	return strings.Join(names, " ")
}

// Mask unions the pitch masks of notes.
func Mask(notes []Note) mask.Mask {
	var m mask.Mask
	for _, n := range notes {
		m |= n.PitchMask()
	}
	return m
}
