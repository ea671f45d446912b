package key

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/but80/harppedal/harp/mask"
	"github.com/but80/harppedal/harp/note"
	"github.com/pkg/errors"
)

// KeySignature is one of the 15 signatures, from 7 flats to 7 sharps.
type KeySignature int

const (
	Flat7 KeySignature = iota
	Flat6
	Flat5
	Flat4
	Flat3
	Flat2
	Flat1
	None
	Sharp1
	Sharp2
	Sharp3
	Sharp4
	Sharp5
	Sharp6
	Sharp7
)

// KeySignatureCount is the size of the catalog.
const KeySignatureCount = 15

type keySignatureDef struct {
	name       string
	text       string
	major      note.Note
	minor      note.Note
	sharpFlats []note.BasicNote
}

// Order in which signatures add sharps and flats.
var (
	sharpOrder = []note.BasicNote{note.F, note.C, note.G, note.D, note.A, note.E, note.B}
	flatOrder  = []note.BasicNote{note.B, note.E, note.A, note.D, note.G, note.C, note.F}
)

var keySignatureDefs = []keySignatureDef{
	{"Flat7", "7 flats", note.New(note.C, note.Flat), note.New(note.A, note.Flat), flatOrder[:7]},
	{"Flat6", "6 flats", note.New(note.G, note.Flat), note.New(note.E, note.Flat), flatOrder[:6]},
	{"Flat5", "5 flats", note.New(note.D, note.Flat), note.New(note.B, note.Flat), flatOrder[:5]},
	{"Flat4", "4 flats", note.New(note.A, note.Flat), note.New(note.F, note.Natural), flatOrder[:4]},
	{"Flat3", "3 flats", note.New(note.E, note.Flat), note.New(note.C, note.Natural), flatOrder[:3]},
	{"Flat2", "2 flats", note.New(note.B, note.Flat), note.New(note.G, note.Natural), flatOrder[:2]},
	{"Flat1", "1 flats", note.New(note.F, note.Natural), note.New(note.D, note.Natural), flatOrder[:1]},
	{"None", "(none)", note.New(note.C, note.Natural), note.New(note.A, note.Natural), nil},
	{"Sharp1", "1 sharps", note.New(note.G, note.Natural), note.New(note.E, note.Natural), sharpOrder[:1]},
	{"Sharp2", "2 sharps", note.New(note.D, note.Natural), note.New(note.B, note.Natural), sharpOrder[:2]},
	{"Sharp3", "3 sharps", note.New(note.A, note.Natural), note.New(note.F, note.Sharp), sharpOrder[:3]},
	{"Sharp4", "4 sharps", note.New(note.E, note.Natural), note.New(note.C, note.Sharp), sharpOrder[:4]},
	{"Sharp5", "5 sharps", note.New(note.B, note.Natural), note.New(note.G, note.Sharp), sharpOrder[:5]},
	{"Sharp6", "6 sharps", note.New(note.F, note.Sharp), note.New(note.D, note.Sharp), sharpOrder[:6]},
	{"Sharp7", "7 sharps", note.New(note.C, note.Sharp), note.New(note.A, note.Sharp), sharpOrder[:7]},
}

// KeySignatures lists the catalog from Flat7 to Sharp7.
var KeySignatures = func() []KeySignature {
	list := make([]KeySignature, KeySignatureCount)
	for i := range list {
		list[i] = KeySignature(i)
	}
	return list
}()

func (ks KeySignature) valid() bool {
	return Flat7 <= ks && ks <= Sharp7
}

func (ks KeySignature) String() string {
	if !ks.valid() {
		return fmt.Sprintf("undefined(%d)", int(ks))
	}
	return keySignatureDefs[ks].name
}

func (ks KeySignature) MarshalJSON() ([]byte, error) {
	return json.Marshal(ks.String())
}

// Text is the label shown to players, e.g. "4 flats".
func (ks KeySignature) Text() string {
	return keySignatureDefs[ks].text
}

// MajorNote is the tonic of the major key with this signature.
func (ks KeySignature) MajorNote() note.Note {
	return keySignatureDefs[ks].major
}

// MinorNote is the tonic of the relative minor.
func (ks KeySignature) MinorNote() note.Note {
	return keySignatureDefs[ks].minor
}

// SharpFlats returns a copy of the letters the signature alters. This is the
// signature only; harmonic and melodic minor raise more notes.
func (ks KeySignature) SharpFlats() []note.BasicNote {
	return append([]note.BasicNote{}, keySignatureDefs[ks].sharpFlats...)
}

// Alters reports whether the signature sharpens or flattens b.
func (ks KeySignature) Alters(b note.BasicNote) bool {
	for _, x := range keySignatureDefs[ks].sharpFlats {
		if x == b {
			return true
		}
	}
	return false
}

func (ks KeySignature) HasSharps() bool {
	return Sharp1 <= ks && ks <= Sharp7
}

func (ks KeySignature) HasFlats() bool {
	return Flat7 <= ks && ks <= Flat1
}

// KeysByNote returns the signatures whose major (or minor) tonic has the pitch
// class of num. Keys with 5 to 7 accidentals share tonics with their
// enharmonic twins, so there may be zero, one or two results.
func KeysByNote(num int, major bool) []KeySignature {
	list := []KeySignature{}
	for _, ks := range KeySignatures {
		tonic := ks.MinorNote()
		if major {
			tonic = ks.MajorNote()
		}
		if tonic.PitchClass() == mask.Class(num) {
			list = append(list, ks)
		}
	}
	return list
}

// ParseKeySignature accepts "none", "C", "3#", "2b", "sharp3", "flat2",
// "3 sharps" or a catalog name.
func ParseKeySignature(s string) (KeySignature, error) {
	t := strings.ToLower(strings.Replace(strings.TrimSpace(s), " ", "", -1))
	switch t {
	case "none", "(none)", "0", "c", "natural":
		return None, nil
	}
	var count string
	var sharp bool
	switch {
	case strings.HasSuffix(t, "#"):
		count, sharp = strings.TrimSuffix(t, "#"), true
	case strings.HasSuffix(t, "b"):
		count = strings.TrimSuffix(t, "b")
	case strings.HasPrefix(t, "sharp"):
		count, sharp = strings.TrimPrefix(t, "sharp"), true
	case strings.HasPrefix(t, "flat"):
		count = strings.TrimPrefix(t, "flat")
	case strings.HasSuffix(t, "sharps"):
		count, sharp = strings.TrimSuffix(t, "sharps"), true
	case strings.HasSuffix(t, "flats"):
		count = strings.TrimSuffix(t, "flats")
	default:
		return None, errors.Errorf("unknown key signature %q", s)
	}
	n, err := strconv.Atoi(count)
	if err != nil || n < 1 || 7 < n {
		return None, errors.Errorf("key signature %q: want 1 to 7 sharps or flats", s)
	}
	if sharp {
		return None + KeySignature(n), nil
	}
	return None - KeySignature(n), nil
}
