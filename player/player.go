// Package player sounds notes of the harp as MIDI note messages.
package player

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/but80/harppedal/harp/log"
	"github.com/but80/harppedal/harp/mask"
	"github.com/but80/harppedal/harp/note"
	"github.com/gomidi/midi"
	"github.com/gomidi/midi/midimessage/channel"
	"github.com/gomidi/midi/midiwriter"
	"github.com/pkg/errors"
)

const (
	// SlowDelay is the interval of an arpeggio.
	SlowDelay = 250 * time.Millisecond
	// FastDelay is the interval of a glissando.
	FastDelay = 50 * time.Millisecond
	// BaseKey is the MIDI key of pitch number 0, A2.
	BaseKey = 45
	// Range is the count of playable pitch numbers, A2 to A6.
	Range = 49
)

type Options struct {
	Velocity int
	Slow     time.Duration
	Fast     time.Duration
}

var DefaultOptions = Options{
	Velocity: 96,
	Slow:     SlowDelay,
	Fast:     FastDelay,
}

type flusher interface {
	Flush() error
}

// Player writes note on/off messages to a MIDI byte stream, typically a
// serial.Port. Notes keep sounding until they are struck again or AllOff.
type Player struct {
	wr      midi.Writer
	dest    io.Writer
	ch      channel.Channel
	state   State
	opts    Options
	stopped int32

	// Sleep waits between notes. Tests replace it.
	Sleep func(time.Duration)
}

func New(dest io.Writer, opts Options) *Player {
	if opts.Velocity <= 0 || 127 < opts.Velocity {
		opts.Velocity = DefaultOptions.Velocity
	}
	if opts.Slow <= 0 {
		opts.Slow = DefaultOptions.Slow
	}
	if opts.Fast <= 0 {
		opts.Fast = DefaultOptions.Fast
	}
	return &Player{
		wr:    midiwriter.New(dest, midiwriter.NoRunningStatus()),
		dest:  dest,
		ch:    channel.Channel0,
		opts:  opts,
		Sleep: time.Sleep,
	}
}

// State is what is sounding now.
func (p *Player) State() *State {
	return &p.state
}

// Stop makes a running PlayNotes return before its next note.
func (p *Player) Stop() {
	atomic.StoreInt32(&p.stopped, 1)
}

func (p *Player) isStopped() bool {
	return atomic.LoadInt32(&p.stopped) != 0
}

func (p *Player) write(msg midi.Message) error {
	if err := p.wr.Write(msg); err != nil {
		return errors.Wrapf(err, "writing %s", msg)
	}
	return nil
}

func (p *Player) flush() error {
	if f, ok := p.dest.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// strike sounds pitch number num, restarting it when it still rings.
func (p *Player) strike(num int) error {
	if num < 0 || Range <= num {
		log.Debugf("pitch %d out of range", num)
		return nil
	}
	k := Key(BaseKey + num)
	if p.state.IsSounding(k) {
		if err := p.write(p.ch.NoteOff(uint8(k))); err != nil {
			return err
		}
		p.state.NoteOff(k)
	}
	log.Debugf("note on %s", k)
	if err := p.write(p.ch.NoteOn(uint8(k), uint8(p.opts.Velocity))); err != nil {
		return err
	}
	p.state.NoteOn(k)
	return p.flush()
}

// PlayNotes strikes the pitch numbers one after another. Numbers outside
// 0..Range-1 are skipped with a warning.
func (p *Player) PlayNotes(nums []int, delay time.Duration) error {
	atomic.StoreInt32(&p.stopped, 0)
	if n := OutOfRange(nums); 0 < n {
		log.Warnf("%d of %d notes out of range, skipped", n, len(nums))
	}
	for i, num := range nums {
		if 0 < i {
			p.Sleep(delay)
		}
		if p.isStopped() {
			return nil
		}
		if err := p.strike(num); err != nil {
			return err
		}
	}
	return nil
}

// Arpeggio plays at the slow interval.
func (p *Player) Arpeggio(nums []int) error {
	return p.PlayNotes(nums, p.opts.Slow)
}

// Gliss plays at the fast interval.
func (p *Player) Gliss(nums []int) error {
	return p.PlayNotes(nums, p.opts.Fast)
}

// OutOfRange counts the numbers a Player cannot sound.
func OutOfRange(nums []int) int {
	n := 0
	for _, num := range nums {
		if num < 0 || Range <= num {
			n++
		}
	}
	return n
}

// Numbers converts notes to pitch numbers.
func Numbers(notes []note.Note) []int {
	nums := make([]int, len(notes))
	for i, n := range notes {
		nums[i] = n.Number()
	}
	return nums
}

// MaskNumbers lists the pitch numbers in m over span octaves from start. The
// leftmost bit of m is start.
func MaskNumbers(m mask.Mask, start, span int) []int {
	nums := []int{}
	for o := 0; o < span; o++ {
		for i := 0; i < 12; i++ {
			if m&(mask.MSB>>uint(i)) != 0 {
				nums = append(nums, start+12*o+i)
			}
		}
	}
	return nums
}

// PlayMask arpeggiates m upwards from start over one octave. The leftmost bit
// of m is start.
func (p *Player) PlayMask(m mask.Mask, start int) error {
	return p.Arpeggio(MaskNumbers(m, start, 1))
}

// PlayMask2 is PlayMask over two octaves.
func (p *Player) PlayMask2(m mask.Mask, start int) error {
	return p.Arpeggio(MaskNumbers(m, start, 2))
}

// AllOff releases every sounding note.
func (p *Player) AllOff() error {
	for _, k := range p.state.AllOff() {
		if err := p.write(p.ch.NoteOff(uint8(k))); err != nil {
			return err
		}
	}
	return p.flush()
}
