package key

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/but80/harppedal/harp/mask"
	"github.com/but80/harppedal/harp/note"
	"github.com/but80/harppedal/harp/util"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Scale int

const (
	Major Scale = iota
	Minor
	Harmonic
	Melodic
)

// ScaleCount is the size of the catalog.
const ScaleCount = 4

// Scales lists the catalog in search order.
var Scales = []Scale{Major, Minor, Harmonic, Melodic}

type scaleDef struct {
	mask mask.Mask
	name string
}

// The leftmost bit of each mask is the tonic.
var scaleDefs = []scaleDef{
	{0xAD5, "major"},          // 101011010101
	{0xB5A, "minor"},          // 101101011010
	{0xB59, "harmonic minor"}, // 101101011001
	{0xB55, "melodic minor"},  // 101101010101
}

func (s Scale) String() string {
	if s < Major || Melodic < s {
		return fmt.Sprintf("undefined(%d)", int(s))
	}
	return scaleDefs[s].name
}

func (s Scale) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Mask is the interval pattern relative to the tonic.
func (s Scale) Mask() mask.Mask {
	return scaleDefs[s].mask
}

func (s Scale) Name() string {
	return scaleDefs[s].name
}

// IsModeOfEarlier reports whether the mask of s is a rotation of a scale that
// comes before it in the catalog. Natural minor is a mode of major.
func (s Scale) IsModeOfEarlier() bool {
	for _, earlier := range Scales[:s] {
		r := earlier.Mask()
		for i := 0; i < 12; i++ {
			if r == s.Mask() {
				return true
			}
			r = mask.RotateLeft(r)
		}
	}
	return false
}

var lower = cases.Lower(language.Und)

// tonicName writes the tonic the way key names do: minor keys in lower case.
func tonicName(n note.Note, major bool) string {
	if major {
		return n.String()
	}
	return lower.String(n.String())
}

// NameByMask names the scales a pitch mask forms, one line per scale and
// tonic, with enharmonic tonic spellings joined by "/". Scales that are only
// modes of an earlier scale are not reported, so a diatonic set gets the single
// name of its major key. An empty string means nothing matched.
func NameByMask(m mask.Mask) string {
	return nameByMask(m, false)
}

// NameByMaskWithModes also reports modes, e.g. "a minor" next to "C major".
func NameByMaskWithModes(m mask.Mask) string {
	return nameByMask(m, true)
}

func nameByMask(m mask.Mask, modes bool) string {
	str := ""
	for _, s := range Scales {
		if !modes && s.IsModeOfEarlier() {
			continue
		}
		major := s == Major
		r := m & mask.All
		for i := 0; i < 12; i++ {
			if r == s.Mask() {
				names := []string{}
				for _, ks := range KeysByNote(i, major) {
					tonic := ks.MinorNote()
					if major {
						tonic = ks.MajorNote()
					}
					names = append(names, tonicName(tonic, major))
				}
				if 0 < len(names) {
					str = util.JoinLines(str, strings.Join(names, "/")+" "+s.Name())
				}
			}
			r = mask.RotateLeft(r)
		}
	}
	return str
}

func ParseScale(s string) (Scale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "major", "maj", "ionian":
		return Major, nil
	case "minor", "min", "m", "natural", "natural minor", "aeolian":
		return Minor, nil
	case "harmonic", "harmonic minor", "harm":
		return Harmonic, nil
	case "melodic", "melodic minor", "mel":
		return Melodic, nil
	}
	return Major, errors.Errorf("unknown scale %q", s)
}
