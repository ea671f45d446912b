package main

import (
	"os"

	"github.com/but80/harppedal/subcmd"
	"github.com/urfave/cli"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "harppedal"
	app.Version = version
	app.Usage = "Finds pedal settings of a pedal harp for keys, scales and chords"
	app.Authors = []cli.Author{
		{
			Name:  "but80",
			Email: "mersenne.sister@gmail.com",
		},
	}
	app.HelpName = "harppedal"

	app.Commands = []cli.Command{
		subcmd.Key,
		subcmd.Search,
		subcmd.Name,
		subcmd.Chord,
		subcmd.Play,
		subcmd.List,
		subcmd.Config,
	}

	app.Action = func(ctx *cli.Context) error {
		cli.ShowAppHelp(ctx)
		return nil
	}

	app.Run(os.Args)
}
