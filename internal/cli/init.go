package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tcztzy/wenyan/internal/infra/fsworkspace"
	"github.com/tcztzy/wenyan/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize a wenyan workspace",
		RunE: func(_ *cobra.Command, _ []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid workspace path: %w", err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			fmt.Printf("Workspace initialized at %s\n", root)
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", ".", "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite scaffold files that already exist")
	return c
}
