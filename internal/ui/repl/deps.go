package repl

import (
	"github.com/rs/zerolog"

	"github.com/tcztzy/wenyan/internal/ports"
)

type Deps struct {
	Evaluator ports.Evaluator

	Logger  zerolog.Logger
	Version string
}
