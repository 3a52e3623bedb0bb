package usecase

import (
	"context"
	"io"

	"github.com/tcztzy/wenyan/internal/ports"
)

type RunScript struct {
	scripts ports.ScriptLoader
	runner  ports.ScriptRunner
}

func NewRunScript(sl ports.ScriptLoader, rr ports.ScriptRunner) *RunScript {
	return &RunScript{scripts: sl, runner: rr}
}

// Execute loads the script at path and evaluates it, writing program
// output to out.
func (uc *RunScript) Execute(ctx context.Context, path string, out io.Writer) error {
	script, err := uc.scripts.LoadScript(path)
	if err != nil {
		return err
	}
	return uc.runner.Run(ctx, script.Source, script.Path, out)
}
