package subcmd

import (
	"fmt"
	"strings"

	"github.com/but80/harppedal/harp/note"
	"github.com/but80/harppedal/harp/pedal"
	"github.com/but80/harppedal/harp/preset"
	"github.com/urfave/cli"
)

var Key = cli.Command{
	Name:      "key",
	Aliases:   []string{"k"},
	Usage:     "Shows the notes and pedals of a key",
	ArgsUsage: "<tonic|key signature> [major|minor|harmonic|melodic]",
	Flags: flags(
		[]cli.Flag{
			cli.BoolFlag{
				Name:  "tonic, t",
				Usage: `Sets pedals for a tonic glissando`,
			},
			cli.BoolFlag{
				Name:  "v7, 7",
				Usage: `Sets pedals for a dominant seventh glissando`,
			},
			cli.BoolFlag{
				Name:  "alternates, a",
				Usage: `Lists other pedals sounding the same pitches`,
			},
		},
		dumpFlags,
		logFlags,
	),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 || (ctx.Bool("tonic") && ctx.Bool("v7")) {
			usage(ctx)
		}
		setLogLevel(ctx)
		k, err := parseKey(ctx.Args())
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		p := pedal.NewPedals()
		var first note.Note
		switch {
		case ctx.Bool("tonic"):
			first = preset.ForTonic(p, k)
		case ctx.Bool("v7"):
			first = preset.ForV7(p, k)
		default:
			first = preset.ForKey(p, k)
		}
		var alternates []pedal.Position
		if ctx.Bool("alternates") {
			alternates = preset.Alternates(p)
		}

		msg := k.ToPB()
		msg.Pedals = p.Positions().ToPB()
		msg.FirstNote = first.ToPB()
		return dump(ctx, msg, func() string {
			lines := []string{
				fmt.Sprintf("Key:           %v", k),
				fmt.Sprintf("Key signature: %s", k.KeySignature().Text()),
				fmt.Sprintf("Notes:         %s", note.Join(k.Notes())),
				fmt.Sprintf("Pedals:        %v", p),
				fmt.Sprintf("Glissando:     %s", note.Join(p.Notes(first))),
				theme(ctx).Render(p.Positions(), p.FindChordName()),
			}
			for i, pos := range alternates {
				lines = append(lines, fmt.Sprintf("Alternate %d:   %v", i+1, pos))
			}
			return strings.Join(lines, "\n")
		})
	},
}
