package subcmd

import (
	"fmt"
	"strings"

	"github.com/but80/harppedal/harp/key"
	"github.com/but80/harppedal/harp/pedal"
	"github.com/but80/harppedal/harp/util"
	"github.com/urfave/cli"
)

// positionNames names pos like Pedals.FindChordName. With modes, a scale is
// also named as the modes it contains, e.g. "C major" and "a minor".
func positionNames(pos pedal.Position, modes bool) string {
	p := pedal.NewPedals()
	p.SetPositions(pos)
	if !modes {
		return p.FindChordName()
	}
	m := p.PitchMask()
	names := key.NameByMaskWithModes(m)
	for _, cat := range p.Catalogs {
		names = util.JoinLines(names, cat.Names(m))
	}
	return names
}

var Name = cli.Command{
	Name:      "name",
	Aliases:   []string{"n"},
	Usage:     "Names the scale or chord a pedal setting sounds",
	ArgsUsage: "<note>... (e.g. D C B E F# G A)",
	Flags: flags(
		[]cli.Flag{
			cli.BoolFlag{
				Name:  "modes, m",
				Usage: `Also names the minor mode of a major scale`,
			},
		},
		dumpFlags,
		logFlags,
	),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			usage(ctx)
		}
		setLogLevel(ctx)
		pos, err := pedal.ParsePosition(strings.Join(ctx.Args(), " "))
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		names := positionNames(pos, ctx.Bool("modes"))
		p := pedal.NewPedals()
		p.SetPositions(pos)
		return dump(ctx, pedal.ResultToPB(p.PitchMask(), names, []pedal.Position{pos}), func() string {
			if names == "" {
				names = "(unknown)"
			}
			return fmt.Sprintf("%s\n%s", theme(ctx).Render(pos, ""), names)
		})
	},
}
