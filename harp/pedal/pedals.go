package pedal

import (
	"github.com/but80/harppedal/harp/chord"
	"github.com/but80/harppedal/harp/event"
	"github.com/but80/harppedal/harp/key"
	"github.com/but80/harppedal/harp/mask"
	"github.com/but80/harppedal/harp/note"
	"github.com/but80/harppedal/harp/util"
)

// Pedals is the whole set of seven pedals. Every mutation fires one
// event.PropPedals event with the old and new Position. Pedals is not safe for
// concurrent use.
type Pedals struct {
	event.Notifier
	pedals [note.BasicNoteCount]*Pedal

	// Catalogs are searched by FindChordName after the scales.
	Catalogs []chord.Catalog
}

// DefaultCatalogs are the chords a new Pedals is named by.
var DefaultCatalogs = []chord.Catalog{chord.Sevenths, chord.Ninths}

// NewPedals returns all pedals natural.
func NewPedals() *Pedals {
	p := &Pedals{
		Catalogs: DefaultCatalogs,
	}
	for _, b := range note.BasicNotes {
		p.pedals[b] = NewPedal(b)
	}
	return p
}

func (p *Pedals) String() string {
	return p.Positions().String()
}

func (p *Pedals) Pedal(b note.BasicNote) *Pedal {
	return p.pedals[b]
}

func (p *Pedals) Position(b note.BasicNote) note.SharpFlat {
	return p.pedals[b].Position()
}

func (p *Pedals) Positions() Position {
	var pos Position
	for i, pd := range p.pedals {
		pos[i] = pd.Position()
	}
	return pos
}

func (p *Pedals) fire(old Position) {
	p.Fire(event.PropPedals, old, p.Positions())
}

// SetPosition does nothing for note.DoubleSharp.
func (p *Pedals) SetPosition(b note.BasicNote, sf note.SharpFlat) {
	if sf == note.DoubleSharp {
		return
	}
	old := p.Positions()
	p.pedals[b].SetPosition(sf)
	p.fire(old)
}

// SetNote sets the pedal of the note's letter.
func (p *Pedals) SetNote(n note.Note) {
	p.SetPosition(n.Basic, n.SharpFlat)
}

// SetNotes applies each note in turn and fires once. Double sharps are skipped.
func (p *Pedals) SetNotes(notes []note.Note) {
	old := p.Positions()
	for _, n := range notes {
		p.pedals[n.Basic].SetPosition(n.SharpFlat)
	}
	p.fire(old)
}

func (p *Pedals) SetPositions(pos Position) {
	old := p.Positions()
	for i, sf := range pos {
		p.pedals[i].SetPosition(sf)
	}
	p.fire(old)
}

func (p *Pedals) SetAllNatural() {
	p.SetPositions(AllNatural)
}

// PitchMask unions the pedal masks. Fewer than seven bits are set when two
// letters sound the same pitch.
func (p *Pedals) PitchMask() mask.Mask {
	var m mask.Mask
	for _, pd := range p.pedals {
		m |= pd.PitchMask()
	}
	return m
}

// Notes lists the notes a glissando starting on the letter of first plays, one
// per pedal. Notes after G carry the octave flag, as does a start on A when the
// A pedal is flat.
func (p *Pedals) Notes(first note.Note) []note.Note {
	notes := make([]note.Note, 0, note.BasicNoteCount)
	num := int(first.Basic)
	octave := first.Basic == note.A && p.pedals[note.A].Position() == note.Flat
	for i := 0; i < note.BasicNoteCount; i++ {
		pd := p.pedals[num%note.BasicNoteCount]
		notes = append(notes, note.Note{Basic: pd.BasicNote(), SharpFlat: pd.Position(), Octave: octave})
		num++
		if note.BasicNoteCount <= num {
			octave = true
		}
	}
	return notes
}

// FindAlternate looks among the other positions of n's pedal for one that
// sounds the same pitch as some note of list. The second result is false when
// none does.
func (p *Pedals) FindAlternate(n note.Note, list []note.Note) (note.Note, bool) {
	for _, option := range p.pedals[n.Basic].Options() {
		for _, m := range list {
			if m.SamePitch(option) {
				return option, true
			}
		}
	}
	return note.Note{}, false
}

// ForPitchMask returns every pedal position that sounds exactly m.
func (p *Pedals) ForPitchMask(m mask.Mask) []Position {
	return Search(m)
}

// FindChordName names the current pitch set with Names.
func (p *Pedals) FindChordName() string {
	return Names(p.PitchMask(), p.Catalogs)
}

// Names lists the scales and then the chords of each catalog that sound
// exactly m, separated by newlines. "" means no name was found.
func Names(m mask.Mask, catalogs []chord.Catalog) string {
	str := key.NameByMask(m)
	for _, cat := range catalogs {
		str = util.JoinLines(str, cat.Names(m))
	}
	return str
}
