package subcmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/but80/harppedal/harp/key"
	"github.com/but80/harppedal/harp/log"
	"github.com/but80/harppedal/harp/note"
	"github.com/but80/harppedal/view"
	"github.com/golang/protobuf/proto"
	"github.com/urfave/cli"
)

var logFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "debug, d",
		Usage: `Show debug messages`,
	},
	cli.BoolFlag{
		Name:  "quiet, q",
		Usage: `Suppress information messages`,
	},
	cli.BoolFlag{
		Name:  "silent, Q",
		Usage: `Do not output any messages`,
	},
}

var dumpFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "json, j",
		Usage: `Dumps in JSON format`,
	},
	cli.BoolFlag{
		Name:  "protobuf, p",
		Usage: `Dumps in protobuf`,
	},
	cli.BoolFlag{
		Name:  "color, c",
		Usage: `Draws pedal diagrams in color`,
	},
}

func flags(list ...[]cli.Flag) []cli.Flag {
	result := []cli.Flag{}
	for _, l := range list {
		result = append(result, l...)
	}
	return result
}

func setLogLevel(ctx *cli.Context) {
	log.SetByFlags(ctx.Bool("debug"), ctx.Bool("quiet"), ctx.Bool("silent"))
}

func usage(ctx *cli.Context) {
	cli.ShowCommandHelp(ctx, ctx.Command.Name)
	os.Exit(1)
}

func theme(ctx *cli.Context) view.Theme {
	if ctx.Bool("color") {
		return view.DefaultTheme
	}
	return view.PlainTheme
}

// dump prints msg as JSON or protobuf when requested, and text otherwise.
func dump(ctx *cli.Context, msg proto.Message, text func() string) error {
	if ctx.Bool("json") {
		j, err := json.MarshalIndent(msg, "", "  ")
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		fmt.Println(string(j))
	} else if ctx.Bool("protobuf") {
		b, err := proto.Marshal(msg)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		fmt.Print(string(b))
	} else {
		fmt.Println(text())
	}
	return nil
}

// parseKey reads "<tonic> [scale]" or "<key signature> [scale]".
func parseKey(args []string) (*key.Key, error) {
	s := key.Major
	if 2 <= len(args) {
		var err error
		s, err = key.ParseScale(strings.Join(args[1:], " "))
		if err != nil {
			return nil, err
		}
	}
	if _, err := note.Parse(args[0]); err == nil {
		return key.ParseKey(args[0], s)
	}
	ks, err := key.ParseKeySignature(args[0])
	if err != nil {
		return nil, err
	}
	return key.NewKey(ks, s), nil
}
