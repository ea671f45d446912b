package player

import (
	"fmt"
	"strings"
)

var keyName = []string{
	"C",
	"C#",
	"D",
	"D#",
	"E",
	"F",
	"F#",
	"G",
	"G#",
	"A",
	"A#",
	"B",
}

// Key is a MIDI note number.
type Key uint8

func (k Key) String() string {
	return fmt.Sprintf("%s(%d)", k.Name(), int(k))
}

// Name returns the scientific pitch name, e.g. A2 for 45.
func (k Key) Name() string {
	i := int(k)
	return fmt.Sprintf("%s%d", keyName[i%12], i/12-1)
}

// State remembers which keys are sounding.
type State struct {
	sounding [128]bool
	order    []Key
}

func (s *State) IsSounding(k Key) bool {
	return s.sounding[k&127]
}

func (s *State) NoteOn(k Key) {
	k &= 127
	if !s.sounding[k] {
		s.order = append(s.order, k)
	}
	s.sounding[k] = true
}

func (s *State) NoteOff(k Key) {
	k &= 127
	if !s.sounding[k] {
		return
	}
	s.sounding[k] = false
	for i, o := range s.order {
		if o == k {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
}

// AllOff forgets every key and returns them in the order they started.
func (s *State) AllOff() []Key {
	keys := s.order
	s.order = nil
	s.sounding = [128]bool{}
	return keys
}

func (s *State) Sounding() []Key {
	return append([]Key{}, s.order...)
}

func (s *State) HasRest() bool {
	return 0 < len(s.order)
}

func (s *State) String() string {
	if len(s.order) == 0 {
		return "-"
	}
	names := []string{}
	for _, k := range s.order {
		names = append(names, k.Name())
	}
	return strings.Join(names, " ")
}
