package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tcztzy/wenyan/internal/infra/interprunner"
	"github.com/tcztzy/wenyan/internal/infra/logger"
	"github.com/tcztzy/wenyan/internal/infra/scriptfs"
	"github.com/tcztzy/wenyan/internal/usecase"
)

func checkCmd() *cobra.Command {
	var workspace string

	c := &cobra.Command{
		Use:   "check <script>",
		Short: "Check that a script lexes and parses (no evaluation)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path, err := resolveScriptPath(workspace, args[0])
			if err != nil {
				return err
			}

			loader := scriptfs.NewLoader()
			runner := interprunner.New(logger.L())

			uc := usecase.NewCheckScript(loader, runner)
			if err := uc.Execute(path); err != nil {
				script, loadErr := loader.LoadScript(path)
				if loadErr == nil && printScriptError(os.Stderr, script.Source, script.Path, err) {
					return errors.New("check failed")
				}
				return err
			}

			fmt.Println("OK")
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return c
}
