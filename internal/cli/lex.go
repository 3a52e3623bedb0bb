package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tcztzy/wenyan/internal/infra/scriptfs"
	"github.com/tcztzy/wenyan/internal/usecase/query"
	"github.com/tcztzy/wenyan/lexer"
)

func lexCmd() *cobra.Command {
	var workspace string
	var format string
	var queryExpr string

	c := &cobra.Command{
		Use:   "lex <script>",
		Short: "Dump the token stream of a wenyan script",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path, err := resolveScriptPath(workspace, args[0])
			if err != nil {
				return err
			}

			script, err := scriptfs.NewLoader().LoadScript(path)
			if err != nil {
				return err
			}

			tokens, err := lexer.Lex(script.Source, script.Path)
			if err != nil {
				if printScriptError(os.Stderr, script.Source, script.Path, err) {
					return errors.New("lex failed")
				}
				return err
			}

			if queryExpr != "" {
				doc, err := json.Marshal(tokens)
				if err != nil {
					return err
				}
				out, err := query.Apply(doc, queryExpr)
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, string(out))
				return nil
			}

			return printTokens(os.Stdout, tokens, resolveFormat(workspace, format))
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json (default from wenyan.yaml, else pretty)")
	c.Flags().StringVarP(&queryExpr, "query", "q", "", "JSONPath expression applied to the JSON token list")
	return c
}

// resolveFormat overlays the flag on the workspace default. No
// workspace and no flag means pretty.
func resolveFormat(workspaceFlag, flag string) string {
	if flag != "" {
		return flag
	}
	if ws, err := loadWorkspace(workspaceFlag); err == nil && ws.cfg.Defaults.Format != "" {
		return ws.cfg.Defaults.Format
	}
	return "pretty"
}

func printTokens(w io.Writer, tokens []lexer.Token, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tokens)
	case "pretty", "":
		for _, t := range tokens {
			if t.Value != "" && t.Value != t.Type {
				fmt.Fprintf(w, "%5d..%-5d %s %s\n", t.Start, t.End, t.Type, t.Value)
				continue
			}
			fmt.Fprintf(w, "%5d..%-5d %s\n", t.Start, t.End, t.Type)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
