// Command scount is the thin CLI front-end over reckon's metric engine:
// it parses flags, builds a file list, invokes the statistics
// coordinator or the annotation front end, and prints a formatted
// report.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/raven-computing/reckon/internal/annotate"
	"github.com/raven-computing/reckon/internal/config"
	"github.com/raven-computing/reckon/internal/debug"
	"github.com/raven-computing/reckon/internal/fileio"
	"github.com/raven-computing/reckon/internal/parser"
	"github.com/raven-computing/reckon/internal/stats"
	"github.com/raven-computing/reckon/internal/types"
	"github.com/raven-computing/reckon/internal/version"
)

// Process exit codes.
const (
	exitSuccess      = 0
	exitInvalidArg   = 1
	exitInvalidInput = 2
	exitNothingDone  = 3
	exitIOError      = 4
	exitUnspecified  = 126
)

func main() {
	os.Exit(runMain(os.Args, os.Stdout, os.Stderr))
}

func runMain(args []string, stdout, stderr *os.File) int {
	code := exitSuccess

	app := &cli.App{
		Name:                   "scount",
		Usage:                  "Count source lines, words, characters and bytes over a file or directory tree",
		UseShortOptionHandling: true,
		HideHelp:               true,
		HideVersion:            true,
		Writer:                 stdout,
		ErrWriter:              stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "help", Aliases: []string{"?"}},
			&cli.BoolFlag{Name: "version"},
			&cli.BoolFlag{Name: "bare-version", Aliases: []string{"#"}},
			&cli.BoolFlag{Name: "verbose"},
			&cli.BoolFlag{Name: "annotate-counts"},
			&cli.BoolFlag{Name: "stop-on-error"},
			&cli.BoolFlag{Name: "watch"},
			&cli.StringFlag{Name: "format", Value: "table"},
			&cli.StringSliceFlag{Name: "exclude"},
			&cli.StringFlag{Name: "config", Value: ".scount.toml"},
		},
		Action: func(c *cli.Context) error {
			code = runAction(c, stdout, stderr)
			return nil
		},
	}

	if err := app.Run(args); err != nil {
		fmt.Fprintln(stderr, "scount:", err)
		return exitInvalidArg
	}
	return code
}

func runAction(c *cli.Context, stdout, stderr *os.File) int {
	if c.Bool("help") {
		cli.ShowAppHelp(c)
		return exitSuccess
	}
	// --version always prints the full banner; -#/--bare-version always
	// prints the bare version string, regardless of --verbose.
	if c.Bool("bare-version") {
		fmt.Fprintln(stdout, version.Info())
		return exitSuccess
	}
	if c.Bool("version") {
		fmt.Fprintln(stdout, version.FullInfo())
		return exitSuccess
	}

	if c.NArg() != 1 {
		fmt.Fprintln(stderr, "scount: expected exactly one <PATH> argument")
		return exitInvalidArg
	}
	path := c.Args().Get(0)

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		fmt.Fprintln(stderr, "scount:", err)
		return exitInvalidArg
	}

	log := debug.FromEnv()

	exclude := c.StringSlice("exclude")
	if len(exclude) == 0 {
		exclude = cfg.Exclude
	}
	format := c.String("format")
	if !c.IsSet("format") && cfg.ReportFormat != "" {
		format = cfg.ReportFormat
	}

	stopOnError := cfg.StopOnError
	if c.IsSet("stop-on-error") {
		stopOnError = c.Bool("stop-on-error")
	}
	opts := types.StatOptions{StopOnError: stopOnError}
	if opts.Operations, err = cfg.OperationMask(); err != nil {
		fmt.Fprintln(stderr, "scount:", err)
		return exitInvalidArg
	}
	if opts.Formats, err = cfg.FormatMask(); err != nil {
		fmt.Fprintln(stderr, "scount:", err)
		return exitInvalidArg
	}

	if c.Bool("annotate-counts") {
		return runAnnotate(path, stdout, stderr)
	}

	runOnce := func() error {
		return runCount(path, exclude, opts, format, c.Bool("verbose"), stdout, stderr, log)
	}

	if c.Bool("watch") {
		if err := watchAndRecount(context.Background(), path, stdout, stderr, log, runOnce); err != nil {
			fmt.Fprintln(stderr, "scount:", err)
			return exitUnspecified
		}
		return exitSuccess
	}

	if err := runOnce(); err != nil {
		if ec, ok := err.(exitCodeError); ok {
			fmt.Fprintln(stderr, "scount:", ec.error)
			return ec.code
		}
		fmt.Fprintln(stderr, "scount:", err)
		return exitUnspecified
	}
	return exitSuccess
}

// exitCodeError attaches a specific process exit code to an error so
// runAction can propagate it without re-deriving it from the error text.
type exitCodeError struct {
	error
	code int
}

func runAnnotate(path string, stdout, stderr *os.File) int {
	if fileio.IsDirectory(path) {
		fmt.Fprintln(stderr, "scount: --annotate-counts requires a single file, not a directory")
		return exitInvalidInput
	}
	if msg := fileio.ValidateStatsInput(path); msg != "" {
		fmt.Fprintln(stderr, "scount:", msg)
		return exitInvalidInput
	}

	file := types.NewSourceFile(path)
	detection := fileio.DetectFormat(file)
	if !detection.IsSupportedFormat || !detection.IsProgrammingLanguage {
		fmt.Fprintln(stderr, "scount: annotation requires a file in a supported programming language")
		if suggestion := suggestExtension(file.Extension); suggestion != "" {
			fmt.Fprintf(stderr, "scount: did you mean a .%s file?\n", suggestion)
		}
		return exitInvalidInput
	}

	if err := fileio.ReadContent(file); err != nil || file.Status != types.FileOK {
		fmt.Fprintln(stderr, "scount: failed to read", path)
		return exitInvalidInput
	}

	grammar, err := parser.NewGrammarService()
	if err != nil {
		fmt.Fprintln(stderr, "scount:", err)
		return exitUnspecified
	}

	out, err := annotate.MarkLogicalLines(grammar, detection.Format, file.Content.Text)
	if err != nil {
		fmt.Fprintln(stderr, "scount:", err)
		return exitInvalidInput
	}

	if _, err := stdout.Write(out); err != nil {
		return exitIOError
	}
	return exitSuccess
}

func runCount(path string, exclude []string, opts types.StatOptions, format string, verbose bool, stdout, stderr *os.File, log *debug.Logger) error {
	if msg := fileio.ValidateStatsInput(path); msg != "" {
		return exitCodeError{fmt.Errorf("%s", msg), exitInvalidInput}
	}

	var files []*types.SourceFile
	if fileio.IsDirectory(path) {
		walker := &fileio.Walker{Exclude: exclude}
		var err error
		files, err = walker.Walk(path)
		if err != nil {
			return exitCodeError{err, exitInvalidInput}
		}
	} else {
		files = []*types.SourceFile{types.NewSourceFile(path)}
	}

	if verbose {
		fmt.Fprintf(stderr, "scount: processing input path: '%s'\n", path)
		fileLabel := "files"
		if len(files) == 1 {
			fileLabel = "file"
		}
		fmt.Fprintf(stderr, "scount: a total of %d %s found\n", len(files), fileLabel)
	}

	supported := files[:0:0]
	for _, f := range files {
		d := fileio.DetectFormat(f)
		if verbose {
			fmt.Fprintf(stderr, "scount: found file: '%s' (status: %#04x)\n", f.Path, int(f.Status))
		}
		log.Log("cli", "discovered %s (supported=%v)", f.Path, d.IsSupportedFormat)
		if d.IsSupportedFormat {
			supported = append(supported, f)
		} else if verbose {
			if suggestion := suggestExtension(f.Extension); suggestion != "" {
				fmt.Fprintf(stderr, "scount: %s: unsupported extension (did you mean .%s?)\n", f.Path, suggestion)
			}
		}
	}

	if len(supported) == 0 {
		return exitCodeError{fmt.Errorf("no eligible file found under %s", path), exitNothingDone}
	}

	grammar, err := parser.NewGrammarService()
	if err != nil {
		return exitCodeError{err, exitUnspecified}
	}

	st := types.NewStatistics(supported)
	coordinator := stats.New(grammar, log)
	coordinator.Count(st, opts)

	if !st.State.Ok {
		if st.State.Message != "" {
			fmt.Fprintf(stderr, "scount: %s (%#04x)\n", st.State.Message, int(st.State.Kind))
		} else {
			fmt.Fprintf(stderr, "scount: an unknown error has occurred, error code: %#04x\n", int(st.State.Kind))
		}
	}

	var writeErr error
	switch format {
	case "json":
		writeErr = WriteJSONReport(stdout, st)
	default:
		writeErr = WriteTableReport(stdout, st, verbose)
	}
	if writeErr != nil {
		return exitCodeError{writeErr, exitIOError}
	}

	if !st.State.Ok {
		return exitCodeError{fmt.Errorf("processing failed"), exitInvalidInput}
	}
	return nil
}
