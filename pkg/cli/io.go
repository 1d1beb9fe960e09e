// Package cli contains the stdin/stdout plumbing shared by the sokosolve
// command-line tools, adapted from morlock's engine I/O (pkg/engine/util.go)
// for whole-input reads instead of a line-oriented protocol stream: a
// Sokoban level or LURD string is only meaningful read as one unit, unlike
// morlock's UCI/console line-at-a-time command grammar.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/seekerror/logw"
)

// ReadAll slurps r to completion and returns it verbatim. Used to read a
// whole level or LURD string rather than a line-oriented protocol stream,
// since a level's rows are only meaningful together.
func ReadAll(ctx context.Context, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	logw.Debugf(ctx, "<< %v bytes", len(data))
	return string(data), nil
}

// ReadFileOrStdin reads path verbatim, or stdin to EOF if path is "-" or empty.
func ReadFileOrStdin(ctx context.Context, path string) (string, error) {
	if path == "" || path == "-" {
		return ReadAll(ctx, os.Stdin)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	logw.Debugf(ctx, "<< %v (%v bytes)", path, len(data))
	return string(data), nil
}

// WriteStdout writes s to stdout, ensuring exactly one trailing newline.
func WriteStdout(ctx context.Context, s string) {
	logw.Debugf(ctx, ">> %v bytes", len(s))
	fmt.Fprint(os.Stdout, strings.TrimRight(s, "\n")+"\n")
}
