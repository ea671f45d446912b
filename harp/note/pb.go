package note

import (
	pb "github.com/but80/harppedal/pb/harp"
)

func (n Note) ToPB() *pb.Note {
	return &pb.Note{
		Basic:     uint32(n.Basic),
		SharpFlat: uint32(n.SharpFlat),
		Octave:    n.Octave,
		Name:      n.String(),
		Number:    int32(n.Number()),
	}
}

// ListToPB converts each note.
func ListToPB(notes []Note) []*pb.Note {
	list := make([]*pb.Note, len(notes))
	for i, n := range notes {
		list[i] = n.ToPB()
	}
	return list
}
