package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/psdkit/fraction"
)

// runConvert converts a single fraction between mass and volume basis.
// Exactly one of --mass / --volume selects the direction; the converted
// value is printed to stdout at full precision.
func runConvert(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("convert", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		mass   = fs.Float64("mass", -1, "mass fraction to convert to volume basis")
		volume = fs.Float64("volume", -1, "volume fraction to convert to mass basis")
		sg     = fs.Float64("sg", 0, "component specific gravity")
		bulkSG = fs.Float64("bulk-sg", 0, "reference bulk specific gravity")
		debug  = fs.Bool("debug", false, "verbose logging")
	)
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}
	log := newLogger(stderr, *debug)
	defer func() { _ = log.Sync() }()

	haveMass := fs.Changed("mass")
	haveVolume := fs.Changed("volume")
	if haveMass == haveVolume {
		fmt.Fprintln(stderr, "convert: need exactly one of --mass or --volume")
		fmt.Fprint(stderr, fs.FlagUsages())
		return exitUsage
	}

	var out float64
	var err error
	if haveMass {
		out, err = fraction.MassToVolume(*mass, *sg, *bulkSG)
	} else {
		out, err = fraction.VolumeToMass(*volume, *sg, *bulkSG)
	}
	if err != nil {
		log.Error("conversion failed", zap.Error(err))
		return exitFail
	}
	fmt.Fprintln(stdout, strconv.FormatFloat(out, 'g', -1, 64))
	return exitOK
}
