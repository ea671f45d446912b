// Package pedal models the seven pedals of a concert harp and searches pedal
// settings that sound a given pitch class set.
package pedal

import (
	"github.com/but80/harppedal/harp/mask"
	"github.com/but80/harppedal/harp/note"
)

// Pedal is the state of one letter. Its position is never note.DoubleSharp.
type Pedal struct {
	basic    note.BasicNote
	position note.SharpFlat
	pitches  [3]int       // indexed by note.Sharp, note.Natural, note.Flat
	masks    [3]mask.Mask // same index
}

// NewPedal returns a natural pedal for b.
func NewPedal(b note.BasicNote) *Pedal {
	p := &Pedal{basic: b, position: note.Natural}
	num := b.Num()
	flat := num - 1
	if num == 0 {
		flat = 11 // A-flat
	}
	p.pitches = [3]int{num + 1, num, flat}
	for i, pitch := range p.pitches {
		p.masks[i] = mask.FromPitch(pitch)
	}
	return p
}

func (p *Pedal) BasicNote() note.BasicNote {
	return p.basic
}

func (p *Pedal) Position() note.SharpFlat {
	return p.position
}

// SetPosition ignores note.DoubleSharp.
func (p *Pedal) SetPosition(sf note.SharpFlat) {
	if sf == note.DoubleSharp {
		return
	}
	p.position = sf
}

func (p *Pedal) Note() note.Note {
	return note.New(p.basic, p.position)
}

func (p *Pedal) String() string {
	return p.Note().String()
}

// Options returns the notes of the two other positions.
func (p *Pedal) Options() []note.Note {
	options := make([]note.Note, 0, 2)
	for _, sf := range note.PedalPositions {
		if sf != p.position {
			options = append(options, note.New(p.basic, sf))
		}
	}
	return options
}

// Pitch is 0..11. A-flat is 11.
func (p *Pedal) Pitch() int {
	return p.pitches[p.position]
}

func (p *Pedal) PitchMask() mask.Mask {
	return p.masks[p.position]
}

// AllPitchMasks returns the masks for sharp, natural and flat.
func (p *Pedal) AllPitchMasks() [3]mask.Mask {
	return p.masks
}
