// Package chord holds the seventh and ninth chord qualities that pedal
// settings are named by.
package chord

import (
	"strings"

	"github.com/but80/harppedal/harp/mask"
	"github.com/but80/harppedal/harp/note"
	"github.com/but80/harppedal/harp/util"
	"github.com/pkg/errors"
)

// Chord is a quality. Mask is written from the root, root at the leftmost bit.
type Chord struct {
	Abbreviation string    `json:"abbreviation"`
	Name         string    `json:"name"`
	Mask         mask.Mask `json:"mask"`
}

func (c Chord) String() string {
	return c.Name
}

// PitchMask transposes the quality to root.
func (c Chord) PitchMask(root note.Note) mask.Mask {
	return mask.RotateRight(c.Mask, root.PitchClass())
}

// Notes spells the chord above root with the default spelling of each pitch.
func (c Chord) Notes(root note.Note) []note.Note {
	notes := []note.Note{}
	base := root.Number()
	for _, p := range c.Mask.Pitches() {
		notes = append(notes, note.FromPitch(base+p))
	}
	notes[0] = root
	return notes
}

type Catalog []Chord

// Names lists every root and quality whose mask equals m, one per line, such
// as "G7" or "Bbmaj9".
func (cat Catalog) Names(m mask.Mask) string {
	str := ""
	for _, c := range cat {
		r := m & mask.All
		for i := 0; i < 12; i++ {
			if r == c.Mask {
				str = util.JoinLines(str, note.FromPitch(i).String()+c.Abbreviation)
			}
			r = mask.RotateLeft(r)
		}
	}
	return str
}

// Find returns the first quality whose abbreviation matches.
func (cat Catalog) Find(abbr string) (Chord, bool) {
	for _, c := range cat {
		if c.Abbreviation == abbr {
			return c, true
		}
	}
	return Chord{}, false
}

var Sevenths = Catalog{
	{"maj7", "major seventh", 0x891},            // 100010010001
	{"7", "dominant seventh", 0x892},            // 100010010010
	{"m7", "minor seventh", 0x912},              // 100100010010
	{"m7b5", "half diminished seventh", 0x922},  // 100100100010
	{"dim7", "diminished seventh", 0x924},       // 100100100100
	{"mMaj7", "minor major seventh", 0x911},     // 100100010001
	{"+maj7", "augmented major seventh", 0x889}, // 100010001001
	{"+7", "augmented seventh", 0x88A},          // 100010001010
}

var Ninths = Catalog{
	{"9", "dominant ninth", 0xA92},         // 101010010010
	{"maj9", "major ninth", 0xA91},         // 101010010001
	{"m9", "minor ninth", 0xB12},           // 101100010010
	{"7b9", "dominant minor ninth", 0xC92}, // 110010010010
	{"7#9", "dominant sharp ninth", 0x992}, // 100110010010
}

// All is every quality, sevenths first.
var All = append(append(Catalog{}, Sevenths...), Ninths...)

// Lookup finds a quality by abbreviation. "maj7", "M7" and "Δ7" name the same
// chord, as do "m7b5" and "ø7".
func Lookup(abbr string) (Chord, error) {
	a := strings.TrimSpace(abbr)
	if alias, ok := aliases[a]; ok {
		a = alias
	}
	if c, ok := All.Find(a); ok {
		return c, nil
	}
	return Chord{}, errors.Errorf("unknown chord %q", abbr)
}

var aliases = map[string]string{
	"M7":    "maj7",
	"Δ7":    "maj7",
	"dom7":  "7",
	"min7":  "m7",
	"-7":    "m7",
	"ø7":    "m7b5",
	"o7":    "dim7",
	"°7":    "dim7",
	"mM7":   "mMaj7",
	"aug7":  "+7",
	"M9":    "maj9",
	"min9":  "m9",
	"-9":    "m9",
	"+M7":   "+maj7",
	"augM7": "+maj7",
}

// ParseSymbol splits a chord symbol such as "Bbm7" or "F#7b9" into its root
// and quality.
func ParseSymbol(s string) (note.Note, Chord, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return note.Note{}, Chord{}, errors.New("empty chord symbol")
	}
	// the longest accidental prefix that still leaves a known quality wins
	for _, n := range []int{2, 1} {
		if len(t) <= n {
			continue
		}
		root, err := note.Parse(t[:n])
		if err != nil {
			continue
		}
		if c, err := Lookup(t[n:]); err == nil {
			return root, c, nil
		}
	}
	return note.Note{}, Chord{}, errors.Errorf("unknown chord symbol %q", s)
}
