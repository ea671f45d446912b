package subcmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/but80/harppedal/harp/mask"
	"github.com/but80/harppedal/harp/note"
	"github.com/but80/harppedal/harp/pedal"
	"github.com/but80/harppedal/harp/util"
	pb "github.com/but80/harppedal/pb/harp"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// loadResult reads a search result written by "search --protobuf".
func loadResult(path string) (mask.Mask, string, []pedal.Position, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, "", nil, errors.Wrapf(err, "reading %s", path)
	}
	r, err := pb.LoadSearchResult(b)
	if err != nil {
		return 0, "", nil, errors.Wrapf(err, "parsing %s", path)
	}
	found := make([]pedal.Position, len(r.Settings))
	for i, s := range r.Settings {
		found[i] = pedal.PositionFromPB(s)
	}
	return mask.Mask(r.PitchMask), strings.Join(r.Names, "\n"), found, nil
}

var Search = cli.Command{
	Name:      "search",
	Aliases:   []string{"s"},
	Usage:     "Finds every pedal setting sounding the given pitches",
	ArgsUsage: "<note>... | --mask <mask> | --load <file>",
	Flags: flags(
		[]cli.Flag{
			cli.StringFlag{
				Name:  "mask, m",
				Usage: `Pitch mask in 12 binary digits from A (e.g. 101011010101)`,
			},
			cli.StringFlag{
				Name:  "load, l",
				Usage: `Shows a result saved with --protobuf instead of searching`,
			},
		},
		dumpFlags,
		logFlags,
	),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 && !ctx.IsSet("mask") && !ctx.IsSet("load") {
			usage(ctx)
		}
		setLogLevel(ctx)
		var m mask.Mask
		var names string
		var found []pedal.Position
		if ctx.IsSet("load") {
			var err error
			m, names, found, err = loadResult(ctx.String("load"))
			if err != nil {
				return cli.NewExitError(err, 1)
			}
		} else if ctx.IsSet("mask") {
			var err error
			m, err = mask.Parse(ctx.String("mask"))
			if err != nil {
				return cli.NewExitError(err, 1)
			}
		} else {
			notes, err := note.ParseList(util.Fields(strings.Join(ctx.Args(), " ")))
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			m = note.Mask(notes)
		}
		if !ctx.IsSet("load") {
			found = pedal.Search(m)
			names = pedal.Names(m, pedal.DefaultCatalogs)
		}
		return dump(ctx, pedal.ResultToPB(m, names, found), func() string {
			lines := []string{
				fmt.Sprintf("Mask:  %s", m),
				fmt.Sprintf("Names: %s", strings.Replace(names, "\n", ", ", -1)),
				fmt.Sprintf("Found: %d", len(found)),
			}
			for _, pos := range found {
				lines = append(lines, util.Indent(theme(ctx).Render(pos, ""), "  "))
				lines = append(lines, util.Indent(pos.String(), "  "))
			}
			return strings.Join(lines, "\n")
		})
	},
}
