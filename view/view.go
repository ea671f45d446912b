// Package view draws the pedal setting of a harp on a terminal.
package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/ahmetalpbalkan/go-cursor"
	"github.com/but80/harppedal/harp/event"
	"github.com/but80/harppedal/harp/note"
	"github.com/but80/harppedal/harp/pedal"
	"github.com/charmbracelet/lipgloss"
)

// Layout is the order of the pedals from the left foot to the right.
var Layout = []note.BasicNote{note.D, note.C, note.B, note.E, note.F, note.G, note.A}

// Rows are drawn from the top: a flat pedal is up, a sharp pedal is down.
var Rows = []note.SharpFlat{note.Flat, note.Natural, note.Sharp}

const (
	empty     = "."
	separator = "|"
)

func rowLabel(sf note.SharpFlat) string {
	switch sf {
	case note.Flat:
		return "b"
	case note.Sharp:
		return "#"
	}
	return "-"
}

type Theme struct {
	Label   lipgloss.Style
	Pedals  map[note.SharpFlat]lipgloss.Style
	Empty   lipgloss.Style
	Name    lipgloss.Style
	Border  lipgloss.Style
	Padding int
}

// PlainTheme renders no escape sequences.
var PlainTheme = Theme{
	Label:  lipgloss.NewStyle(),
	Pedals: map[note.SharpFlat]lipgloss.Style{},
	Empty:  lipgloss.NewStyle(),
	Name:   lipgloss.NewStyle(),
	Border: lipgloss.NewStyle(),
}

var DefaultTheme = Theme{
	Label: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	Pedals: map[note.SharpFlat]lipgloss.Style{
		note.Flat:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		note.Natural: lipgloss.NewStyle().Bold(true),
		note.Sharp:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
	},
	Empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	Name:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
	Border:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")),
	Padding: 1,
}

func (t Theme) pedal(sf note.SharpFlat, s string) string {
	if style, ok := t.Pedals[sf]; ok {
		return style.Render(s)
	}
	return s
}

// Lines renders one line per row, e.g. for all pedals natural:
//
//	b . . . | . . . .
//	- D C B | E F G A
//	# . . . | . . . .
func (t Theme) Lines(pos pedal.Position) []string {
	lines := []string{}
	for _, sf := range Rows {
		cells := []string{t.Label.Render(rowLabel(sf))}
		for i, b := range Layout {
			if i == 3 {
				cells = append(cells, t.Label.Render(separator))
			}
			if pos.Get(b) == sf {
				cells = append(cells, t.pedal(sf, b.String()))
			} else {
				cells = append(cells, t.Empty.Render(empty))
			}
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return lines
}

// Render draws pos with the names of the chord or scale it sounds below it.
func (t Theme) Render(pos pedal.Position, names string) string {
	body := strings.Join(t.Lines(pos), "\n")
	if names != "" {
		width := lipgloss.Width(body)
		list := []string{}
		for _, name := range strings.Split(names, "\n") {
			list = append(list, t.Name.Render(name))
		}
		body += "\n" + strings.Repeat("-", width) + "\n" + strings.Join(list, "\n")
	}
	return t.Border.Padding(0, t.Padding).Render(body)
}

// Lines renders pos without styles.
func Lines(pos pedal.Position) []string {
	return PlainTheme.Lines(pos)
}

// Print clears the screen and draws the current pedals.
func Print(w io.Writer, p *pedal.Pedals, t Theme) {
	fmt.Fprint(w, cursor.ClearEntireScreen())
	fmt.Fprint(w, cursor.MoveTo(0, 0))
	fmt.Fprintln(w, t.Render(p.Positions(), p.FindChordName()))
}

// Watcher redraws whenever the pedals it watches change.
type Watcher struct {
	Out    io.Writer
	Pedals *pedal.Pedals
	Theme  Theme
	Drawn  int
}

func NewWatcher(w io.Writer, p *pedal.Pedals, t Theme) *Watcher {
	v := &Watcher{Out: w, Pedals: p, Theme: t}
	p.AddListener(v)
	return v
}

func (v *Watcher) Changed(e event.Event) {
	if e.Property != event.PropPedals {
		return
	}
	if old, ok := e.Old.(pedal.Position); ok && old == e.New {
		return
	}
	Print(v.Out, v.Pedals, v.Theme)
	v.Drawn++
}

// Close stops watching.
func (v *Watcher) Close() {
	v.Pedals.RemoveListener(v)
}
