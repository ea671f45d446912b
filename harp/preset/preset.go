// Package preset sets pedals for common harp tasks: playing in a key, tonic
// and dominant seventh glissandi, and chords.
package preset

import (
	"github.com/but80/harppedal/harp/chord"
	"github.com/but80/harppedal/harp/key"
	"github.com/but80/harppedal/harp/log"
	"github.com/but80/harppedal/harp/note"
	"github.com/but80/harppedal/harp/pedal"
)

func hasDoubleSharps(notes []note.Note) bool {
	for _, n := range notes {
		if n.SharpFlat == note.DoubleSharp {
			return true
		}
	}
	return false
}

// ForKey sets the pedals to the notes of k and returns the note a glissando
// starts on. A key spelled with double sharps takes the first pedal position
// that sounds the same pitches; when there is none the pedals stay natural.
func ForKey(p *pedal.Pedals, k *key.Key) note.Note {
	log.Debugf("pedals for %v", k)
	log.Enter()
	defer log.Leave()
	p.SetAllNatural()
	notes := k.Notes()
	if hasDoubleSharps(notes) {
		found := p.ForPitchMask(k.PitchMask())
		if 0 < len(found) {
			p.SetPositions(found[0])
		} else {
			log.Warnf("no pedals for %v", k)
		}
	} else {
		p.SetNotes(notes)
	}
	return k.FirstNote()
}

// replace swaps the pedals of the given scale degrees (0 based) for an
// enharmonic that doubles one of the remaining degrees.
func replace(p *pedal.Pedals, notes []note.Note, degrees ...int) {
	rest := []note.Note{}
	for i, n := range notes {
		skip := false
		for _, d := range degrees {
			if i == d {
				skip = true
			}
		}
		if !skip {
			rest = append(rest, n)
		}
	}
	for _, d := range degrees {
		alt, ok := p.FindAlternate(notes[d], rest)
		if !ok {
			log.Debugf("no alternate for %v", notes[d])
			continue
		}
		p.SetNote(alt)
	}
}

// ForTonic prepares a glissando that only sounds the tonic triad plus the
// second and sixth, by replacing degrees 4 and 7 of the major scale. k is
// switched to major.
func ForTonic(p *pedal.Pedals, k *key.Key) note.Note {
	k.SetScale(key.Major)
	first := ForKey(p, k)
	replace(p, k.Notes(), 3, 6)
	return first
}

// ForV7 prepares a dominant seventh glissando by replacing degrees 1 and 3 of
// the major scale. It starts on the dominant. k is switched to major.
func ForV7(p *pedal.Pedals, k *key.Key) note.Note {
	k.SetScale(key.Major)
	first := ForKey(p, k)
	replace(p, k.Notes(), 0, 2)
	return note.FromPitch(first.Number() + 7)
}

// ForChord applies the first position sounding c on root. False means the chord
// cannot be set and the pedals are untouched.
func ForChord(p *pedal.Pedals, c chord.Chord, root note.Note) (pedal.Position, bool) {
	log.Debugf("pedals for %v%s", root, c.Abbreviation)
	log.Enter()
	defer log.Leave()
	found := p.ForPitchMask(c.PitchMask(root))
	if len(found) == 0 {
		return pedal.Position{}, false
	}
	p.SetPositions(found[0])
	return found[0], true
}

// Alternates lists every position sounding the same pitches as p does now,
// the current one included.
func Alternates(p *pedal.Pedals) []pedal.Position {
	return p.ForPitchMask(p.PitchMask())
}

// Gliss returns the pitch numbers of a glissando from first over the given
// number of octaves.
func Gliss(p *pedal.Pedals, first note.Note, octaves int) []int {
	base := p.Notes(first)
	nums := make([]int, 0, len(base)*octaves)
	for o := 0; o < octaves; o++ {
		for _, n := range base {
			nums = append(nums, n.Number()+12*o)
		}
	}
	return nums
}

// Arpeggio returns the pitch numbers of c on root over the given number of
// octaves. The lowest root is the pitch class of root, so an A-flat chord
// starts on 11.
func Arpeggio(c chord.Chord, root note.Note, octaves int) []int {
	base := root.PitchClass()
	pitches := c.Mask.Pitches()
	nums := make([]int, 0, len(pitches)*octaves)
	for o := 0; o < octaves; o++ {
		for _, p := range pitches {
			nums = append(nums, base+p+12*o)
		}
	}
	return nums
}
