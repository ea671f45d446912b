package subcmd

import (
	"fmt"
	"strings"

	"github.com/but80/harppedal/harp/chord"
	"github.com/but80/harppedal/harp/key"
	"github.com/but80/harppedal/harp/note"
	"github.com/urfave/cli"
)

func listKeySignatures() string {
	lines := []string{}
	for _, ks := range key.KeySignatures {
		major := key.NewKey(ks, key.Major)
		minor := key.NewKey(ks, key.Minor)
		lines = append(lines, fmt.Sprintf("%-6s %-9s %-10s %s", ks, ks.Text(), major, minor))
	}
	return strings.Join(lines, "\n")
}

func listScales() string {
	lines := []string{}
	for _, s := range key.Scales {
		lines = append(lines, fmt.Sprintf("%-15s %s", s, s.Mask()))
	}
	return strings.Join(lines, "\n")
}

func listChords() string {
	lines := []string{}
	for _, c := range chord.All {
		lines = append(lines, fmt.Sprintf("%-6s %-26s %s  C%s = %s",
			c.Abbreviation, c.Name, c.Mask, c.Abbreviation,
			note.Join(c.Notes(note.New(note.C, note.Natural)))))
	}
	return strings.Join(lines, "\n")
}

var List = cli.Command{
	Name:      "list",
	Aliases:   []string{"l"},
	Usage:     "Lists key signatures, scales and chords",
	ArgsUsage: "[keys|scales|chords]",
	Flags:     logFlags,
	Action: func(ctx *cli.Context) error {
		setLogLevel(ctx)
		what := "all"
		if 0 < ctx.NArg() {
			what = ctx.Args()[0]
		}
		switch what {
		case "keys":
			fmt.Println(listKeySignatures())
		case "scales":
			fmt.Println(listScales())
		case "chords":
			fmt.Println(listChords())
		case "all":
			fmt.Println(listKeySignatures())
			fmt.Println()
			fmt.Println(listScales())
			fmt.Println()
			fmt.Println(listChords())
		default:
			usage(ctx)
		}
		return nil
	},
}
