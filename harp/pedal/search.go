package pedal

import (
	"github.com/but80/harppedal/harp/log"
	"github.com/but80/harppedal/harp/mask"
	"github.com/but80/harppedal/harp/note"
)

// pedalMasks[letter][position] never changes, so Search can run concurrently.
var pedalMasks = func() [note.BasicNoteCount][3]mask.Mask {
	var t [note.BasicNoteCount][3]mask.Mask
	for _, b := range note.BasicNotes {
		t[b] = NewPedal(b).AllPitchMasks()
	}
	return t
}()

// Search enumerates the pedal positions whose pitch set equals m. Only masks of
// 4 to 7 pitch classes are searched. B-sharp with C-flat and E-sharp with
// F-flat are never produced.
//
// Letters are tried from A to G and positions in sharp, natural, flat order, so
// the first result is the preferred one. No result is not an error.
func Search(m mask.Mask) []Position {
	list := []Position{}
	n := mask.PopCount(m)
	if n < 4 || 7 < n {
		log.Debugf("search %s: %d pitch classes, skipped", m, n)
		return list
	}
	var pos Position
	var walk func(letter int, cum mask.Mask)
	walk = func(letter int, cum mask.Mask) {
		if letter == note.BasicNoteCount {
			if cum == m {
				list = append(list, pos)
			}
			return
		}
		for _, sf := range note.PedalPositions {
			if reversed(letter, pos, sf) {
				continue
			}
			pm := pedalMasks[letter][sf]
			if pm&m == 0 {
				continue
			}
			pos[letter] = sf
			walk(letter+1, cum|pm)
		}
	}
	walk(0, 0)
	log.Debugf("search %s: %d solutions", m, len(list))
	return list
}

// reversed reports whether setting letter to sf would put it below its lower
// neighbour: C-flat under B-sharp or F-flat under E-sharp.
func reversed(letter int, pos Position, sf note.SharpFlat) bool {
	if sf != note.Flat {
		return false
	}
	switch note.BasicNote(letter) {
	case note.C:
		return pos[note.B] == note.Sharp
	case note.F:
		return pos[note.E] == note.Sharp
	}
	return false
}
