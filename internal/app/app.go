// Package app implements the psdcalc command-line front end. Run is the
// whole program: it parses arguments, dispatches to a subcommand and
// returns the process exit code, with all output going through the
// injected writers so tests can drive it end to end.
package app

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

const usage = `psdcalc — particle-size-distribution calculator

Usage:
  psdcalc generate [flags]   discretize a PSD model into a bin table
  psdcalc convert  [flags]   convert a fraction between mass and volume basis
  psdcalc check    [flags]   validate (optionally renormalize) a table file

Run "psdcalc <command> --help" for the command's flags.
`

// Run executes psdcalc with the given arguments and returns the exit
// code. stdout carries results (tables, converted values); stderr
// carries logs and diagnostics.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "generate":
		return runGenerate(rest, stdout, stderr)
	case "convert":
		return runConvert(rest, stdout, stderr)
	case "check":
		return runCheck(rest, stdout, stderr)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "psdcalc: unknown command %q\n\n%s", cmd, usage)
		return exitUsage
	}
}

// newLogger builds a zap logger over the injected writer: console
// encoding at debug level for --debug, production encoding at info
// otherwise.
func newLogger(w io.Writer, debug bool) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	level := zapcore.InfoLevel
	if debug {
		encCfg = zap.NewDevelopmentEncoderConfig()
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}
