package harp

import (
	"github.com/golang/protobuf/proto"
)

// Note is a spelled note.
type Note struct {
	Basic     uint32 `protobuf:"varint,1,opt,name=basic,proto3" json:"basic,omitempty"`
	SharpFlat uint32 `protobuf:"varint,2,opt,name=sharp_flat,json=sharpFlat,proto3" json:"sharp_flat,omitempty"`
	Octave    bool   `protobuf:"varint,3,opt,name=octave,proto3" json:"octave,omitempty"`
	Name      string `protobuf:"bytes,4,opt,name=name,proto3" json:"name,omitempty"`
	Number    int32  `protobuf:"varint,5,opt,name=number,proto3" json:"number,omitempty"`
}

func (m *Note) Reset()         { *m = Note{} }
func (m *Note) String() string { return proto.CompactTextString(m) }
func (*Note) ProtoMessage()    {}

// PedalSetting holds the positions of the seven pedals, A to G.
type PedalSetting struct {
	Positions []uint32 `protobuf:"varint,1,rep,packed,name=positions,proto3" json:"positions,omitempty"`
	Text      string   `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	Diagram   string   `protobuf:"bytes,3,opt,name=diagram,proto3" json:"diagram,omitempty"`
	PitchMask uint32   `protobuf:"varint,4,opt,name=pitch_mask,json=pitchMask,proto3" json:"pitch_mask,omitempty"`
}

func (m *PedalSetting) Reset()         { *m = PedalSetting{} }
func (m *PedalSetting) String() string { return proto.CompactTextString(m) }
func (*PedalSetting) ProtoMessage()    {}

// SearchResult is the outcome of a pedal search for a pitch class set.
type SearchResult struct {
	PitchMask uint32          `protobuf:"varint,1,opt,name=pitch_mask,json=pitchMask,proto3" json:"pitch_mask,omitempty"`
	Names     []string        `protobuf:"bytes,2,rep,name=names,proto3" json:"names,omitempty"`
	Settings  []*PedalSetting `protobuf:"bytes,3,rep,name=settings,proto3" json:"settings,omitempty"`
}

func (m *SearchResult) Reset()         { *m = SearchResult{} }
func (m *SearchResult) String() string { return proto.CompactTextString(m) }
func (*SearchResult) ProtoMessage()    {}

// Key describes a key.
type Key struct {
	Name         string        `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	KeySignature string        `protobuf:"bytes,2,opt,name=key_signature,json=keySignature,proto3" json:"key_signature,omitempty"`
	Scale        string        `protobuf:"bytes,3,opt,name=scale,proto3" json:"scale,omitempty"`
	Notes        []*Note       `protobuf:"bytes,4,rep,name=notes,proto3" json:"notes,omitempty"`
	PitchMask    uint32        `protobuf:"varint,5,opt,name=pitch_mask,json=pitchMask,proto3" json:"pitch_mask,omitempty"`
	Pedals       *PedalSetting `protobuf:"bytes,6,opt,name=pedals,proto3" json:"pedals,omitempty"`
	FirstNote    *Note         `protobuf:"bytes,7,opt,name=first_note,json=firstNote,proto3" json:"first_note,omitempty"`
}

func (m *Key) Reset()         { *m = Key{} }
func (m *Key) String() string { return proto.CompactTextString(m) }
func (*Key) ProtoMessage()    {}

// LoadSearchResult decodes a SearchResult from b.
func LoadSearchResult(b []byte) (*SearchResult, error) {
	var loaded SearchResult
	if err := proto.Unmarshal(b, &loaded); err != nil {
		return nil, err
	}
	loaded.Normalize()
	return &loaded, nil
}

func normalizeUint32(ok *bool, target *uint32, min, max uint32) {
	if *target < min {
		*target = min
		*ok = false
	}
	if max < *target {
		*target = max
		*ok = false
	}
}

// Normalize replaces invalid values. It returns true if nothing was changed.
func (m *SearchResult) Normalize() bool {
	ok := true
	normalizeUint32(&ok, &m.PitchMask, 0, 0xFFF)
	if m.Names == nil {
		m.Names = []string{}
	}
	for i, s := range m.Settings {
		if s == nil {
			s = &PedalSetting{}
			m.Settings[i] = s
			ok = false
		}
		if !s.Normalize() {
			ok = false
		}
	}
	return ok
}

// Normalize replaces invalid values. It returns true if nothing was changed.
func (m *PedalSetting) Normalize() bool {
	ok := true
	// missing pedals are natural
	for len(m.Positions) < 7 {
		m.Positions = append(m.Positions, 1)
		ok = false
	}
	if 7 < len(m.Positions) {
		m.Positions = m.Positions[:7]
		ok = false
	}
	for i := range m.Positions {
		normalizeUint32(&ok, &m.Positions[i], 0, 2)
	}
	normalizeUint32(&ok, &m.PitchMask, 0, 0xFFF)
	return ok
}
