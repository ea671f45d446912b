package key

import (
	"github.com/but80/harppedal/harp/event"
	"github.com/but80/harppedal/harp/mask"
	"github.com/but80/harppedal/harp/note"
	"github.com/pkg/errors"
)

// Key pairs a signature with a scale. Setters notify listeners with
// event.PropKeySig and event.PropScale. A Key is not safe for concurrent use.
type Key struct {
	event.Notifier
	keySig KeySignature
	scale  Scale
}

// NewKey returns C major when called with None and Major.
func NewKey(ks KeySignature, s Scale) *Key {
	return &Key{keySig: ks, scale: s}
}

func (k *Key) String() string {
	return tonicName(k.tonic(), k.IsMajor()) + " " + k.scale.Name()
}

func (k *Key) KeySignature() KeySignature {
	return k.keySig
}

func (k *Key) SetKeySignature(ks KeySignature) {
	old := k.keySig
	k.keySig = ks
	k.Fire(event.PropKeySig, old, k.keySig)
}

func (k *Key) Scale() Scale {
	return k.scale
}

func (k *Key) SetScale(s Scale) {
	old := k.scale
	k.scale = s
	k.Fire(event.PropScale, old, k.scale)
}

func (k *Key) IsMajor() bool {
	return k.scale == Major
}

func (k *Key) tonic() note.Note {
	if k.IsMajor() {
		return k.keySig.MajorNote()
	}
	return k.keySig.MinorNote()
}

// FirstNote is the tonic of the current mode, the same note Notes starts with.
func (k *Key) FirstNote() note.Note {
	n := k.tonic()
	if n.Basic == note.A && n.SharpFlat == note.Flat {
		n.Octave = true
	}
	return n
}

// Notes returns the seven degrees from the tonic upwards, one per letter.
// Harmonic minor raises degree 7 and melodic minor raises degrees 6 and 7, which
// can yield double sharps.
func (k *Key) Notes() []note.Note {
	notes := make([]note.Note, 0, 7)
	first := k.tonic()
	num := int(first.Basic)
	if first.Basic == note.A && first.SharpFlat == note.Flat {
		num = 7 // start an octave up; an unraised A-flat would be pitch -1
	}
	for i := 0; i < 7; i++ {
		b := note.BasicNote(num % 7)
		raised := k.raises(i)
		var sf note.SharpFlat
		switch {
		case k.keySig.HasSharps() && k.keySig.Alters(b):
			sf = note.Sharp
			if raised {
				sf = note.DoubleSharp
			}
		case k.keySig.HasFlats() && k.keySig.Alters(b):
			sf = note.Flat
			if raised {
				sf = note.Natural
			}
		default:
			sf = note.Natural
			if raised {
				sf = note.Sharp
			}
		}
		notes = append(notes, note.Note{Basic: b, SharpFlat: sf, Octave: 7 <= num})
		num++
	}
	return notes
}

// raises reports whether degree index i (0 based) is raised by the scale.
func (k *Key) raises(i int) bool {
	switch {
	case i == 6:
		return k.scale == Harmonic || k.scale == Melodic
	case i == 5:
		return k.scale == Melodic
	}
	return false
}

func (k *Key) PitchMask() mask.Mask {
	return note.Mask(k.Notes())
}

// ParseKey finds the key of scale s whose tonic is spelled as tonic, e.g. "Eb".
// A tonic no signature spells, such as D#, takes its enharmonic key.
func ParseKey(tonic string, s Scale) (*Key, error) {
	n, err := note.Parse(tonic)
	if err != nil {
		return nil, err
	}
	if n.SharpFlat == note.DoubleSharp {
		return nil, errors.Errorf("no key on %v", n)
	}
	list := KeysByNote(n.Number(), s == Major)
	if len(list) == 0 {
		return nil, errors.Errorf("no %s key on %v", s, n)
	}
	for _, ks := range list {
		k := NewKey(ks, s)
		if t := k.tonic(); t.Basic == n.Basic && t.SharpFlat == n.SharpFlat {
			return k, nil
		}
	}
	return NewKey(list[0], s), nil
}
