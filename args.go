package img2ascii

import (
	"strconv"
	"strings"
)

const (
	invertFlag  = "--invert"
	charsPrefix = "--chars="
)

// Invocation is the result of resolving a command line.
type Invocation struct {
	// Path is the image to render.
	Path string
	// Config is the rendering configuration after all options were applied.
	Config Config
	// Unknown lists the tokens that were not recognized, in order.
	Unknown []string
}

// ParseArgs resolves the command line arguments (without the program
// name) into an Invocation. The first argument is always the image path;
// the remaining tokens are applied left to right, so later values win.
// Unrecognized tokens are collected in Unknown rather than failing.
//
// ErrMissingPath is returned when args is empty.
func ParseArgs(args []string) (Invocation, error) {
	if len(args) == 0 {
		return Invocation{}, ErrMissingPath
	}

	inv := Invocation{Path: args[0], Config: DefaultConfig()}
	for _, tok := range args[1:] {
		inv = applyArg(inv, tok)
	}
	return inv, nil
}

// applyArg folds a single token into inv.
func applyArg(inv Invocation, tok string) Invocation {
	switch {
	case tok == invertFlag:
		inv.Config = inv.Config.WithInvert(true)
	case strings.HasPrefix(tok, charsPrefix):
		inv.Config = inv.Config.WithRamp(strings.TrimPrefix(tok, charsPrefix))
	default:
		if w, ok := parseWidth(tok); ok {
			inv.Config = inv.Config.WithWidth(w)
			return inv
		}
		// inv is a value; its Unknown slice must not alias the caller's.
		unknown := make([]string, len(inv.Unknown), len(inv.Unknown)+1)
		copy(unknown, inv.Unknown)
		inv.Unknown = append(unknown, tok)
	}
	return inv
}

// parseWidth accepts unsigned base-10 integers that fit in 32 bits.
func parseWidth(tok string) (int, bool) {
	w, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(w), true
}
