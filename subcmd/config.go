package subcmd

import (
	"fmt"
	"os"

	"github.com/but80/harppedal/config"
	"github.com/but80/harppedal/harp/log"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// initConfig writes the default settings to path. An existing file is kept
// unless force is set.
func initConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.Errorf("%s already exists", path)
	}
	return config.Default().Save(path)
}

var Config = cli.Command{
	Name:  "config",
	Usage: "Shows or creates the settings file",
	Flags: flags(
		[]cli.Flag{
			cli.StringFlag{
				Name:  "file, f",
				Usage: `Settings file (default: ` + config.FileName + ` under the user config directory)`,
			},
			cli.BoolFlag{
				Name:  "init",
				Usage: `Writes the default settings to the file`,
			},
			cli.BoolFlag{
				Name:  "force",
				Usage: `Overwrites an existing file with --init`,
			},
		},
		logFlags,
	),
	Action: func(ctx *cli.Context) error {
		setLogLevel(ctx)
		path := ctx.String("file")
		if path == "" {
			var err error
			path, err = config.Path()
			if err != nil {
				return cli.NewExitError(err, 1)
			}
		}
		if ctx.Bool("init") {
			if err := initConfig(path, ctx.Bool("force")); err != nil {
				return cli.NewExitError(err, 1)
			}
			log.Infof("wrote %s", path)
		}
		cfg, err := config.LoadFrom(path)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		fmt.Printf("# %s\n%s", path, cfg)
		return nil
	},
}
