// Command img2ascii prints an image as ASCII art.
//
//	img2ascii <path> [width] [--invert] [--chars=<ramp>]
//
// The art goes to stdout; warnings and errors go to stderr. Exit status is
// 0 on success or when only usage is shown, 2 when the file does not
// exist and 3 when it cannot be decoded.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wbrown/img2ascii"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}

// run executes the command with args and returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	if args == nil {
		// cobra falls back to os.Args when SetArgs receives nil.
		args = []string{}
	}

	logger := newLogger(stderr, levelFromEnv(getenv))
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(withLogger(ctx, logger))
	if err == nil {
		return img2ascii.ExitOK
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	fmt.Fprintln(stderr, err)
	return img2ascii.ExitFailure
}
