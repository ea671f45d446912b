package key

import (
	"github.com/but80/harppedal/harp/note"
	pb "github.com/but80/harppedal/pb/harp"
)

func (k *Key) ToPB() *pb.Key {
	return &pb.Key{
		Name:         k.String(),
		KeySignature: k.keySig.String(),
		Scale:        k.scale.String(),
		Notes:        note.ListToPB(k.Notes()),
		PitchMask:    uint32(k.PitchMask()),
		FirstNote:    k.FirstNote().ToPB(),
	}
}
