package subcmd

import (
	"fmt"
	"strings"

	"github.com/but80/harppedal/harp/chord"
	"github.com/but80/harppedal/harp/note"
	"github.com/but80/harppedal/harp/pedal"
	"github.com/but80/harppedal/harp/preset"
	"github.com/but80/harppedal/harp/util"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var Chord = cli.Command{
	Name:      "chord",
	Aliases:   []string{"c"},
	Usage:     "Sets pedals for a seventh or ninth chord",
	ArgsUsage: "<symbol> (e.g. Bbmaj7, F#m7b5, C9)",
	Flags: flags(
		[]cli.Flag{
			cli.BoolFlag{
				Name:  "all, a",
				Usage: `Lists every pedal setting instead of the first`,
			},
		},
		dumpFlags,
		logFlags,
	),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			usage(ctx)
		}
		setLogLevel(ctx)
		root, c, err := chord.ParseSymbol(ctx.Args()[0])
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		p := pedal.NewPedals()
		pos, ok := preset.ForChord(p, c, root)
		if !ok {
			return cli.NewExitError(errors.Errorf("no pedal setting sounds %v%s", root, c.Abbreviation), 1)
		}
		found := []pedal.Position{pos}
		if ctx.Bool("all") {
			found = preset.Alternates(p)
		}
		m := c.PitchMask(root)
		return dump(ctx, pedal.ResultToPB(m, p.FindChordName(), found), func() string {
			lines := []string{
				fmt.Sprintf("Chord: %v%s (%s)", root, c.Abbreviation, c.Name),
				fmt.Sprintf("Notes: %s", note.Join(c.Notes(root))),
			}
			for _, pos := range found {
				lines = append(lines, util.Indent(theme(ctx).Render(pos, ""), "  "))
				lines = append(lines, util.Indent(pos.String(), "  "))
			}
			return strings.Join(lines, "\n")
		})
	},
}
