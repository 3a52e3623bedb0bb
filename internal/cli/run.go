package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tcztzy/wenyan/internal/domain"
	"github.com/tcztzy/wenyan/internal/infra/interprunner"
	"github.com/tcztzy/wenyan/internal/infra/logger"
	"github.com/tcztzy/wenyan/internal/infra/scriptfs"
	"github.com/tcztzy/wenyan/internal/interp"
	"github.com/tcztzy/wenyan/internal/usecase"
	"github.com/tcztzy/wenyan/lexer"
)

func runCmd() *cobra.Command {
	var workspace string

	c := &cobra.Command{
		Use:   "run <script>",
		Short: "Run a wenyan script (path, or name in the workspace scripts dir)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveScriptPath(workspace, args[0])
			if err != nil {
				return err
			}

			loader := scriptfs.NewLoader()
			runner := interprunner.New(logger.L())

			uc := usecase.NewRunScript(loader, runner)
			if err := uc.Execute(cmd.Context(), path, os.Stdout); err != nil {
				script, loadErr := loader.LoadScript(path)
				if loadErr == nil && printScriptError(os.Stderr, script.Source, script.Path, err) {
					return errors.New("script failed")
				}
				return err
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return c
}

// printScriptError renders a syntax or runtime error the way Python
// shows a SyntaxError: the file and line, the offending line of
// source, a caret under the offending column and the message.
// It reports false when err carries no source position.
func printScriptError(w io.Writer, source, filename string, err error) bool {
	var se *lexer.SyntaxError
	if errors.As(err, &se) {
		writeDiagnostic(w, se.File, se.Line, se.Col, se.LineText, "語法錯誤", se.Msg)
		return true
	}

	var ie *interp.Error
	if errors.As(err, &ie) {
		line, col, lineText := lexer.LineCol(source, ie.Off)
		label := "運行錯誤"
		if domain.IsKind(err, domain.KindSyntax) {
			label = "語法錯誤"
		}
		writeDiagnostic(w, filename, line, col, lineText, label, ie.Msg)
		return true
	}

	return false
}

func writeDiagnostic(w io.Writer, file string, line, col int, lineText, label, msg string) {
	fmt.Fprintf(w, "  File \"%s\", line %d\n", file, line)
	if lineText != "" {
		fmt.Fprintf(w, "    %s\n", lineText)
		if col > 0 {
			fmt.Fprintf(w, "    %s^\n", strings.Repeat(" ", col-1))
		}
	}
	fmt.Fprintf(w, "%s: %s\n", label, msg)
}
