package pedal

import (
	"strings"

	"github.com/but80/harppedal/harp/mask"
	"github.com/but80/harppedal/harp/note"
	pb "github.com/but80/harppedal/pb/harp"
)

func (pos Position) ToPB() *pb.PedalSetting {
	positions := make([]uint32, len(pos))
	for i, sf := range pos {
		positions[i] = uint32(sf)
	}
	return &pb.PedalSetting{
		Positions: positions,
		Text:      pos.String(),
		Diagram:   pos.Diagram(),
		PitchMask: uint32(note.Mask(pos.Notes())),
	}
}

// PositionFromPB reads a setting back. Out of range values are normalized.
func PositionFromPB(s *pb.PedalSetting) Position {
	s.Normalize()
	var pos Position
	for i, v := range s.Positions {
		pos[i] = note.SharpFlat(v)
	}
	return pos
}

// ResultToPB describes a search for m and the positions found.
func ResultToPB(m mask.Mask, names string, list []Position) *pb.SearchResult {
	r := &pb.SearchResult{
		PitchMask: uint32(m),
		Names:     []string{},
		Settings:  make([]*pb.PedalSetting, len(list)),
	}
	if names != "" {
		r.Names = strings.Split(names, "\n")
	}
	for i, pos := range list {
		r.Settings[i] = pos.ToPB()
	}
	return r
}
