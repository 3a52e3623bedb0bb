package ports

import (
	"context"
	"io"
)

// ScriptRunner evaluates a wenyan program, writing its output to out.
type ScriptRunner interface {
	Run(ctx context.Context, source, filename string, out io.Writer) error

	// Check lexes and parses without evaluating.
	Check(source, filename string) error
}
