package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

type LogLevel int

const (
	LogLevel_None LogLevel = iota
	LogLevel_Warn
	LogLevel_Info
	LogLevel_Debug
)

var Level LogLevel = LogLevel_Info

// Output is where all messages go. Tests may swap it for a buffer.
var Output io.Writer = os.Stderr

var cyan = color.New(color.FgCyan)
var yellow = color.New(color.FgYellow)

func Warnf(f string, args ...interface{}) {
	if LogLevel_Warn <= Level {
		yellow.Fprintf(Output, "[WARNING] "+f+"\n", args...)
	}
}

func Infof(f string, args ...interface{}) {
	if LogLevel_Info <= Level {
		fmt.Fprintf(Output, f+"\n", args...)
	}
}

var indent = 0

func Debugf(f string, args ...interface{}) {
	if LogLevel_Debug <= Level {
		cyan.Fprintf(Output, strings.Repeat("  ", indent)+f+"\n", args...)
	}
}

func Enter() {
	indent++
}

func Leave() {
	if 0 < indent {
		indent--
	}
}

// SetByFlags picks the level from the usual --debug/--silent/--quiet trio.
// debug wins over silent, silent over quiet.
func SetByFlags(debug, quiet, silent bool) {
	switch {
	case debug:
		Level = LogLevel_Debug
	case silent:
		Level = LogLevel_None
	case quiet:
		Level = LogLevel_Warn
	default:
		Level = LogLevel_Info
	}
}
