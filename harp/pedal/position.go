package pedal

import (
	"encoding/json"
	"strings"

	"github.com/but80/harppedal/harp/note"
	"github.com/pkg/errors"
)

// Position is a snapshot of all seven pedals, indexed by note.BasicNote.
type Position [note.BasicNoteCount]note.SharpFlat

// AllNatural is the resting position.
var AllNatural = Position{
	note.Natural, note.Natural, note.Natural, note.Natural,
	note.Natural, note.Natural, note.Natural,
}

func (pos Position) Get(b note.BasicNote) note.SharpFlat {
	return pos[b]
}

// Notes returns the note of every pedal from A to G.
func (pos Position) Notes() []note.Note {
	notes := make([]note.Note, len(pos))
	for i, sf := range pos {
		notes[i] = note.New(note.BasicNote(i), sf)
	}
	return notes
}

// String renders the pedals from A to G, e.g. "A B C# D E F# G".
func (pos Position) String() string {
	return note.Join(pos.Notes())
}

func (pos Position) MarshalJSON() ([]byte, error) {
	return json.Marshal(pos.String())
}

// Diagram renders the pedals the way they sit at the harp: D C B on the left
// foot, E F G A on the right.
func (pos Position) Diagram() string {
	left := []note.BasicNote{note.D, note.C, note.B}
	right := []note.BasicNote{note.E, note.F, note.G, note.A}
	names := func(list []note.BasicNote) string {
		s := []string{}
		for _, b := range list {
			s = append(s, note.New(b, pos[b]).String())
		}
		return strings.Join(s, " ")
	}
	return names(left) + " | " + names(right)
}

// ParsePosition reads seven notes, one per letter in any order, e.g.
// "D C B E F# G A". Letters not named stay natural.
func ParsePosition(s string) (Position, error) {
	pos := AllNatural
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '|'
	})
	notes, err := note.ParseList(fields)
	if err != nil {
		return pos, err
	}
	seen := map[note.BasicNote]bool{}
	for _, n := range notes {
		if n.SharpFlat == note.DoubleSharp {
			return pos, errors.Errorf("pedal %v cannot be double sharp", n.Basic)
		}
		if seen[n.Basic] {
			return pos, errors.Errorf("pedal %v given twice", n.Basic)
		}
		seen[n.Basic] = true
		pos[n.Basic] = n.SharpFlat
	}
	return pos, nil
}
