// Package mask handles 12 bit pitch class sets.
//
// The leftmost of the 12 bits (0x800) is pitch 0, A natural. Pitch p lives at
// bit 11-p, so a scale or chord template written as a binary literal reads
// left to right from its tonic.
package mask

import (
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

type Mask uint16

const (
	// MSB is the bit of pitch 0.
	MSB Mask = 0x800
	// All is every pitch class.
	All Mask = 0xFFF
)

// FromPitch returns the single bit of the pitch class of p.
func FromPitch(p int) Mask {
	return MSB >> uint(Class(p))
}

// Class folds a pitch number into 0..11.
func Class(p int) int {
	c := p % 12
	if c < 0 {
		c += 12
	}
	return c
}

// RotateLeft rotates one step and wraps the top bit around to the bottom.
func RotateLeft(m Mask) Mask {
	m &= All
	r := (m << 1) & All
	if m&MSB != 0 {
		r |= 1
	}
	return r
}

// RotateRight undoes n left rotations.
func RotateRight(m Mask, n int) Mask {
	m &= All
	n = Class(n)
	if n == 0 {
		return m
	}
	return ((m >> uint(n)) | (m << uint(12-n))) & All
}

func PopCount(m Mask) int {
	return bits.OnesCount16(uint16(m & All))
}

// Has reports whether pitch p is in the set.
func (m Mask) Has(p int) bool {
	return m&FromPitch(p) != 0
}

// Pitches lists the pitch classes in the set, lowest first.
func (m Mask) Pitches() []int {
	ps := []int{}
	for p := 0; p < 12; p++ {
		if m.Has(p) {
			ps = append(ps, p)
		}
	}
	return ps
}

func (m Mask) String() string {
	var b strings.Builder
	for bit := MSB; bit != 0; bit >>= 1 {
		if m&bit != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Parse reads the 12 digit binary form produced by String. An optional 0b
// prefix and underscores are accepted.
func Parse(s string) (Mask, error) {
	t := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0b")
	t = strings.Replace(t, "_", "", -1)
	if len(t) != 12 {
		return 0, errors.Errorf("pitch mask %q: want 12 binary digits, got %d", s, len(t))
	}
	var m Mask
	for _, c := range t {
		m <<= 1
		switch c {
		case '1':
			m |= 1
		case '0':
		default:
			return 0, errors.Errorf("pitch mask %q: unexpected %q", s, c)
		}
	}
	return m, nil
}
