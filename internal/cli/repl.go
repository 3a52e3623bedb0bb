package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tcztzy/wenyan/internal/buildinfo"
	"github.com/tcztzy/wenyan/internal/domain"
	"github.com/tcztzy/wenyan/internal/infra/interprunner"
	"github.com/tcztzy/wenyan/internal/infra/logger"
	"github.com/tcztzy/wenyan/internal/ui/repl"
)

func replCmd() *cobra.Command {
	var workspace string
	var noSave bool

	c := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive wenyan session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRepl(cmd, workspace, noSave)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the session transcript")
	return c
}

func runRepl(_ *cobra.Command, workspaceFlag string, noSave bool) error {
	session := interprunner.NewSession(logger.L())

	deps := repl.Deps{
		Evaluator: session,
		Logger:    logger.L(),
		Version:   buildinfo.Version,
	}

	started := time.Now().UTC()
	entries, err := repl.Run(deps)
	if err != nil {
		return err
	}

	if noSave || len(entries) == 0 {
		return nil
	}

	// Transcripts only persist inside a workspace.
	ws, wsErr := loadWorkspace(workspaceFlag)
	if wsErr != nil {
		return nil
	}

	id, saveErr := ws.store.SaveSession(domain.SessionArtifact{
		StartedAt: started,
		EndedAt:   time.Now().UTC(),
		Entries:   entries,
	})
	if saveErr != nil {
		l := logger.L()
		l.Warn().Err(saveErr).Msg("session not saved")
		return nil
	}

	fmt.Printf("Session saved: %s\n", id)
	return nil
}
