package mask

import (
	"reflect"
	"testing"
)

func TestRotateLeftCycle(t *testing.T) {
	for m := Mask(0); m <= All; m++ {
		r := m
		for i := 0; i < 12; i++ {
			if PopCount(RotateLeft(r)) != PopCount(r) {
				t.Fatalf("PopCount changed rotating %s", r)
			}
			r = RotateLeft(r)
		}
		if r != m {
			t.Fatalf("12 rotations of %s gave %s", m, r)
		}
	}
}

func TestRotateLeftWrap(t *testing.T) {
	tests := []struct {
		in, want Mask
	}{
		{0x800, 0x001},
		{0x001, 0x002},
		{0xAD5, 0x5AB},
		{0x000, 0x000},
	}
	for _, tt := range tests {
		if got := RotateLeft(tt.in); got != tt.want {
			t.Errorf("RotateLeft(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestRotateRightUndoesLeft(t *testing.T) {
	m := Mask(0xAD5)
	r := m
	for n := 0; n < 12; n++ {
		if got := RotateRight(r, n); got != m {
			t.Errorf("RotateRight(RotateLeft^%d(m), %d) = %s, want %s", n, n, got, m)
		}
		r = RotateLeft(r)
	}
}

func TestPopCount(t *testing.T) {
	tests := []struct {
		in   Mask
		want int
	}{
		{0, 0},
		{0xFFF, 12},
		{0xFFFF, 12},
		{0xAD5, 7},
		{0x810, 2},
	}
	for _, tt := range tests {
		if got := PopCount(tt.in); got != tt.want {
			t.Errorf("PopCount(%#x) = %d, want %d", uint16(tt.in), got, tt.want)
		}
	}
}

func TestFromPitch(t *testing.T) {
	tests := []struct {
		p    int
		want Mask
	}{
		{0, 0x800},
		{11, 0x001},
		{-1, 0x001},
		{12, 0x800},
		{3, 0x100},
	}
	for _, tt := range tests {
		if got := FromPitch(tt.p); got != tt.want {
			t.Errorf("FromPitch(%d) = %s, want %s", tt.p, got, tt.want)
		}
	}
}

func TestPitches(t *testing.T) {
	m := FromPitch(3) | FromPitch(7) | FromPitch(10)
	if got, want := m.Pitches(), []int{3, 7, 10}; !reflect.DeepEqual(got, want) {
		t.Errorf("Pitches = %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	m, err := Parse("0b1010_1101_0101")
	if err != nil {
		t.Fatal(err)
	}
	if m != 0xAD5 {
		t.Errorf("Parse = %s", m)
	}
	if got := m.String(); got != "101011010101" {
		t.Errorf("String = %s", got)
	}
	for _, bad := range []string{"", "1010", "10101101010x", "1010110101011"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) succeeded", bad)
		}
	}
}
