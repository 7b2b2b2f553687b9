package main

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/wbrown/img2ascii"
)

const usageTemplate = `Usage:
  {{.UseLine}}

Arguments:
  <path>           image file to render (PNG, JPEG, GIF, BMP, TIFF, WebP)
  [width]          output width in characters (default 100)
  --invert         invert luminance before picking characters
  --chars=<ramp>   characters to use, darkest first (default "@%#*+=-:. ")

Set IMG2ASCII_LOG_LEVEL=debug to log timings to stderr.
`

// exitError carries a process exit code out of cobra. The message has
// already been printed when it is returned.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// newRootCmd builds the img2ascii command. Flag parsing is disabled: every
// token is handed to img2ascii.ParseArgs untouched.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "img2ascii <path> [width] [--invert] [--chars=<ramp>]",
		Short:                 "Render an image as ASCII art",
		Args:                  cobra.ArbitraryArgs,
		DisableFlagParsing:    true,
		DisableFlagsInUseLine: true,
		SilenceErrors:         true,
		SilenceUsage:          true,
		CompletionOptions:     cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetUsageTemplate(usageTemplate)
	return cmd
}

func runConvert(cmd *cobra.Command, args []string, stdout, stderr io.Writer) error {
	logger := loggerFromContext(cmd.Context())

	inv, err := img2ascii.ParseArgs(args)
	if err != nil {
		// Only ErrMissingPath is possible here.
		return cmd.Usage()
	}
	for _, tok := range inv.Unknown {
		fmt.Fprintf(stderr, "Unknown argument: %s\n", tok)
	}

	cfg := inv.Config
	if runewidth.StringWidth(cfg.Ramp) != utf8.RuneCountInString(cfg.Ramp) {
		logger.Warn("ramp has characters that are not one cell wide", "ramp", cfg.Ramp)
	}
	logger.Debug("resolved arguments", "path", inv.Path, "width", cfg.Width,
		"invert", cfg.Invert, "ramp", cfg.Ramp)

	p := newProgress(logger)
	img, err := img2ascii.LoadImage(inv.Path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return &exitError{code: img2ascii.ExitCode(err), err: err}
	}
	p.done("decoded image", "width", img.Width(), "height", img.Height())

	p = newProgress(logger)
	lines := img2ascii.Render(img, cfg)
	p.done("rendered", "lines", len(lines))

	_, err = fmt.Fprintln(stdout, img2ascii.Join(lines))
	return err
}
