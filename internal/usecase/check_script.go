package usecase

import (
	"github.com/tcztzy/wenyan/internal/ports"
)

type CheckScript struct {
	scripts ports.ScriptLoader
	runner  ports.ScriptRunner
}

func NewCheckScript(sl ports.ScriptLoader, rr ports.ScriptRunner) *CheckScript {
	return &CheckScript{scripts: sl, runner: rr}
}

// Execute loads the script at path and verifies it lexes and parses,
// without evaluating anything.
func (uc *CheckScript) Execute(path string) error {
	script, err := uc.scripts.LoadScript(path)
	if err != nil {
		return err
	}
	return uc.runner.Check(script.Source, script.Path)
}
