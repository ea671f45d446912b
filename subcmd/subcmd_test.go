package subcmd

import (
	"flag"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/but80/harppedal/config"
	"github.com/but80/harppedal/harp/chord"
	"github.com/but80/harppedal/harp/key"
	"github.com/but80/harppedal/harp/mask"
	"github.com/but80/harppedal/harp/pedal"
	"github.com/but80/harppedal/player"
	"github.com/golang/protobuf/proto"
	"github.com/urfave/cli"
)

func newContext(t *testing.T, cmd cli.Command, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	for _, f := range cmd.Flags {
		f.Apply(set)
	}
	if err := set.Parse(args); err != nil {
		t.Fatal(err)
	}
	return cli.NewContext(nil, set, nil)
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		args  []string
		ks    key.KeySignature
		scale key.Scale
	}{
		{[]string{"3#"}, key.Sharp3, key.Major},
		{[]string{"flat2", "minor"}, key.Flat2, key.Minor},
		{[]string{"none", "harmonic"}, key.None, key.Harmonic},
		{[]string{"Eb", "minor"}, key.Flat6, key.Minor},
		{[]string{"c", "melodic", "minor"}, key.Flat3, key.Melodic},
		{[]string{"D"}, key.Sharp2, key.Major},
	}
	for _, tt := range tests {
		k, err := parseKey(tt.args)
		if err != nil {
			t.Errorf("parseKey(%q) error: %v", tt.args, err)
			continue
		}
		if k.KeySignature() != tt.ks || k.Scale() != tt.scale {
			t.Errorf("parseKey(%q) = %v %v, want %v %v", tt.args, k.KeySignature(), k.Scale(), tt.ks, tt.scale)
		}
	}
	for _, args := range [][]string{{"X"}, {"C", "lydian"}, {"9#"}} {
		if _, err := parseKey(args); err == nil {
			t.Errorf("parseKey(%q) succeeded", args)
		}
	}
}

func TestLists(t *testing.T) {
	if n := strings.Count(listKeySignatures(), "\n") + 1; n != key.KeySignatureCount {
		t.Errorf("%d key signature lines", n)
	}
	if n := strings.Count(listScales(), "\n") + 1; n != key.ScaleCount {
		t.Errorf("%d scale lines", n)
	}
	chords := listChords()
	if n := strings.Count(chords, "\n") + 1; n != len(chord.All) {
		t.Errorf("%d chord lines", n)
	}
	if !strings.Contains(chords, "C7 = C E G Bb") {
		t.Errorf("chords:\n%s", chords)
	}
}

func TestPrepare(t *testing.T) {
	tests := []struct {
		args  []string
		first int
		mask  string
	}{
		{[]string{"-chord", "Ab7"}, 11, "000100100101"},
		{[]string{"-chord", "C7"}, 3, "010100010010"},
		{[]string{"Eb"}, 6, ""},
		{[]string{"-pedals", "D C B E F G A"}, 3, ""},
	}
	for _, tt := range tests {
		p := pedal.NewPedals()
		nums, err := prepare(newContext(t, Play, tt.args...), p, 3)
		if err != nil {
			t.Errorf("%q: %v", tt.args, err)
			continue
		}
		if len(nums) == 0 || nums[0] != tt.first {
			t.Errorf("%q: starts on %v, want %d", tt.args, nums, tt.first)
		}
		for _, n := range nums {
			if n < 0 || player.Range <= n {
				t.Errorf("%q: pitch %d out of range", tt.args, n)
			}
		}
		if tt.mask != "" && p.PitchMask().String() != tt.mask {
			t.Errorf("%q: pedals sound %s, want %s", tt.args, p.PitchMask(), tt.mask)
		}
	}
	if _, err := prepare(newContext(t, Play, "-chord", "G7"), pedal.NewPedals(), 3); err == nil {
		t.Error("G7 prepared")
	}
}

func TestPositionNames(t *testing.T) {
	pos, err := pedal.ParsePosition("D C B E F G A")
	if err != nil {
		t.Fatal(err)
	}
	if got := positionNames(pos, false); got != "C major" {
		t.Errorf("without modes: %q", got)
	}
	if got := positionNames(pos, true); got != "C major\na minor" {
		t.Errorf("with modes: %q", got)
	}
}

func TestLoadResult(t *testing.T) {
	m, err := mask.Parse("101011010101")
	if err != nil {
		t.Fatal(err)
	}
	found := pedal.Search(m)
	names := pedal.Names(m, pedal.DefaultCatalogs)
	b, err := proto.Marshal(pedal.ResultToPB(m, names, found))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "result.pb")
	if err := os.WriteFile(path, b, 0644); err != nil {
		t.Fatal(err)
	}
	gotMask, gotNames, gotFound, err := loadResult(path)
	if err != nil {
		t.Fatal(err)
	}
	if gotMask != m || gotNames != names {
		t.Errorf("got %s %q, want %s %q", gotMask, gotNames, m, names)
	}
	if !reflect.DeepEqual(gotFound, found) {
		t.Errorf("got %v, want %v", gotFound, found)
	}
	if _, _, _, err := loadResult(filepath.Join(t.TempDir(), "none.pb")); err == nil {
		t.Error("missing file loaded")
	}
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "harppedal", "config.yaml")
	if err := initConfig(path, false); err != nil {
		t.Fatal(err)
	}
	c, err := config.LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if *c != *config.Default() {
		t.Errorf("got %+v", c)
	}
	if err := initConfig(path, false); err == nil {
		t.Error("existing file overwritten")
	}
	if err := initConfig(path, true); err != nil {
		t.Errorf("force: %v", err)
	}
}
