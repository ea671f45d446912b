package subcmd

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/but80/harppedal/config"
	"github.com/but80/harppedal/harp/chord"
	"github.com/but80/harppedal/harp/log"
	"github.com/but80/harppedal/harp/note"
	"github.com/but80/harppedal/harp/pedal"
	"github.com/but80/harppedal/harp/preset"
	"github.com/but80/harppedal/player"
	"github.com/but80/harppedal/serial"
	"github.com/but80/harppedal/view"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"github.com/xlab/closer"
)

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if ctx.IsSet("config") {
		cfg, err = config.LoadFrom(ctx.String("config"))
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if ctx.IsSet("device") {
		cfg.Device = ctx.String("device")
	}
	if ctx.IsSet("baudrate") {
		cfg.BaudRate = ctx.Int("baudrate")
	}
	if ctx.IsSet("velocity") {
		cfg.Velocity = ctx.Int("velocity")
	}
	if ctx.IsSet("octaves") {
		cfg.Octaves = ctx.Int("octaves")
	}
	return cfg, cfg.Validate()
}

// prepare sets the pedals and returns the pitch numbers to play.
func prepare(ctx *cli.Context, p *pedal.Pedals, octaves int) ([]int, error) {
	switch {
	case ctx.IsSet("chord"):
		root, c, err := chord.ParseSymbol(ctx.String("chord"))
		if err != nil {
			return nil, err
		}
		if _, ok := preset.ForChord(p, c, root); !ok {
			return nil, errors.Errorf("no pedal setting sounds %v%s", root, c.Abbreviation)
		}
		return preset.Arpeggio(c, root, octaves), nil
	case ctx.IsSet("pedals"):
		pos, err := pedal.ParsePosition(ctx.String("pedals"))
		if err != nil {
			return nil, err
		}
		p.SetPositions(pos)
		return preset.Gliss(p, p.Pedal(note.C).Note(), octaves), nil
	}
	if ctx.NArg() < 1 {
		return nil, errors.New("no key, chord or pedals given")
	}
	k, err := parseKey(ctx.Args())
	if err != nil {
		return nil, err
	}
	var first note.Note
	switch {
	case ctx.Bool("tonic"):
		first = preset.ForTonic(p, k)
	case ctx.Bool("v7"):
		first = preset.ForV7(p, k)
	default:
		first = preset.ForKey(p, k)
	}
	return preset.Gliss(p, first, octaves), nil
}

var Play = cli.Command{
	Name:      "play",
	Aliases:   []string{"p"},
	Usage:     "Plays a glissando or arpeggio on a MIDI device",
	ArgsUsage: "<tonic|key signature> [scale] | --chord <symbol> | --pedals <notes>",
	Flags: flags(
		[]cli.Flag{
			cli.StringFlag{
				Name:  "device, D",
				Usage: `Serial MIDI device ("--" discards output)`,
			},
			cli.IntFlag{
				Name:  "baudrate, r",
				Usage: `Baud rate ` + serial.BaudRateList(),
			},
			cli.IntFlag{
				Name:  "velocity, v",
				Usage: `Note velocity (1..127)`,
			},
			cli.IntFlag{
				Name:  "octaves, o",
				Usage: `Octaves to play (1..` + strconv.Itoa(config.MaxOctaves) + `)`,
			},
			cli.StringFlag{
				Name:  "config",
				Usage: `Config file`,
			},
			cli.StringFlag{
				Name:  "chord, c",
				Usage: `Arpeggiates a chord instead of a key`,
			},
			cli.StringFlag{
				Name:  "pedals, P",
				Usage: `Plays a glissando on the given pedal setting`,
			},
			cli.BoolFlag{
				Name:  "tonic, t",
				Usage: `Plays a tonic glissando`,
			},
			cli.BoolFlag{
				Name:  "v7, 7",
				Usage: `Plays a dominant seventh glissando`,
			},
			cli.BoolFlag{
				Name:  "arpeggio, a",
				Usage: `Plays at the arpeggio interval`,
			},
			cli.BoolFlag{
				Name:  "watch, w",
				Usage: `Shows the pedals while playing`,
			},
			cli.BoolFlag{
				Name:  "color",
				Usage: `Draws pedal diagrams in color`,
			},
		},
		logFlags,
	),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 && !ctx.IsSet("chord") && !ctx.IsSet("pedals") {
			usage(ctx)
		}
		setLogLevel(ctx)
		cfg, err := loadConfig(ctx)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		p := pedal.NewPedals()
		if ctx.Bool("watch") {
			w := view.NewWatcher(os.Stdout, p, theme(ctx))
			defer w.Close()
		}
		nums, err := prepare(ctx, p, cfg.Octaves)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		log.Infof("pedals: %v", p)

		port, err := serial.Open(cfg.Device, cfg.BaudRate)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		defer port.Close()
		pl := player.New(port, cfg.PlayerOptions())
		closer.Bind(func() {
			pl.Stop()
			pl.AllOff()
		})

		if ctx.Bool("arpeggio") || ctx.IsSet("chord") {
			err = pl.Arpeggio(nums)
		} else {
			err = pl.Gliss(nums)
		}
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		log.Debugf("sounding: %s", strings.TrimSpace(pl.State().String()))
		time.Sleep(cfg.Hold())
		if err := pl.AllOff(); err != nil {
			return cli.NewExitError(err, 1)
		}
		log.Infof("%d bytes to %s", port.SentTotal(), port.DeviceName())
		return nil
	},
}
