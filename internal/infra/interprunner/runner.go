// Package interprunner adapts the interpreter to the ScriptRunner and
// Evaluator ports.
package interprunner

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tcztzy/wenyan/internal/domain"
	"github.com/tcztzy/wenyan/internal/interp"
	"github.com/tcztzy/wenyan/internal/ports"
	"github.com/tcztzy/wenyan/lexer"
)

type Runner struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Runner {
	return &Runner{log: log}
}

var _ ports.ScriptRunner = (*Runner)(nil)

// Run evaluates source as a whole program. The interpreter has no
// suspension points, so ctx is only consulted before evaluation starts.
func (r *Runner) Run(ctx context.Context, source, filename string, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.log.Debug().Str("file", filename).Int("bytes", len(source)).Msg("run script")

	// Lex and parse separately first so syntax failures classify as
	// such; everything the full run adds on top is a runtime failure.
	if err := r.Check(source, filename); err != nil {
		r.log.Debug().Str("file", filename).Err(err).Msg("script rejected")
		return err
	}
	if err := interp.New(out).Run(source, filename); err != nil {
		r.log.Debug().Str("file", filename).Err(err).Msg("script failed")
		return wrap(err, domain.KindExecution)
	}
	return nil
}

// Check lexes and parses without evaluating.
func (r *Runner) Check(source, filename string) error {
	tokens, err := lexer.Lex(source, filename)
	if err != nil {
		return wrap(err, domain.KindSyntax)
	}
	if _, err := interp.Parse(tokens); err != nil {
		return wrap(err, domain.KindSyntax)
	}
	return nil
}

func wrap(err error, kind domain.ErrorKind) error {
	return &domain.OpError{Op: "interprunner.run", Kind: kind, Err: err}
}

// Session is a persistent Evaluator for a REPL: bindings and the value
// stage survive between Eval calls.
type Session struct {
	in  *interp.Interp
	buf strings.Builder
	log zerolog.Logger
}

func NewSession(log zerolog.Logger) *Session {
	s := &Session{log: log}
	s.in = interp.New(&s.buf)
	return s
}

var _ ports.Evaluator = (*Session)(nil)

func (s *Session) Eval(input string) (string, error) {
	s.buf.Reset()
	err := s.in.Run(input, "<repl>")
	out := s.buf.String()
	if err != nil {
		s.log.Debug().Err(err).Msg("repl entry failed")
		return out, err
	}
	return out, nil
}
