package pedal

import (
	"testing"

	"github.com/but80/harppedal/harp/key"
	"github.com/but80/harppedal/harp/note"
	pb "github.com/but80/harppedal/pb/harp"
)

func TestPositionToPB(t *testing.T) {
	pos := AllNatural
	pos[note.B] = note.Flat
	pos[note.F] = note.Sharp
	s := pos.ToPB()
	if s.Text != "A Bb C D E F# G" || s.Diagram != "D C Bb | E F# G A" {
		t.Errorf("setting = %v", s)
	}
	if got := PositionFromPB(s); got != pos {
		t.Errorf("PositionFromPB = %v", got)
	}
	if got := PositionFromPB(&pb.PedalSetting{Positions: []uint32{0}}); got[note.A] != note.Sharp || got[note.G] != note.Natural {
		t.Errorf("short setting read as %v", got)
	}
}

func TestResultToPB(t *testing.T) {
	m := key.NewKey(key.Sharp7, key.Major).PitchMask()
	list := Search(m)
	r := ResultToPB(m, "Db/C# major", list)
	if r.PitchMask != uint32(m) || len(r.Settings) != len(list) {
		t.Errorf("result = %v", r)
	}
	if len(r.Names) != 1 || r.Names[0] != "Db/C# major" {
		t.Errorf("names = %v", r.Names)
	}
	for _, s := range r.Settings {
		if s.PitchMask != uint32(m) {
			t.Errorf("%s sounds %X", s.Text, s.PitchMask)
		}
	}
	if empty := ResultToPB(0, "", nil); len(empty.Names) != 0 || len(empty.Settings) != 0 {
		t.Errorf("empty result = %v", empty)
	}
}
