// Package query filters JSON documents with JSONPath expressions, for
// the token-dump query surface of the CLI.
package query

import (
	"encoding/json"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/pkg/errors"

	"github.com/tcztzy/wenyan/internal/domain"
)

// Apply evaluates a JSONPath expression against a JSON document and
// returns the matching value re-encoded as indented JSON.
func Apply(doc []byte, expr string) ([]byte, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, &domain.OpError{
			Op:   "query.apply",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("empty jsonpath expression"),
		}
	}

	var parsed any
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return nil, &domain.OpError{
			Op:   "query.apply",
			Kind: domain.KindInvalidConfig,
			Err:  errors.WithMessage(err, "document is not valid JSON"),
		}
	}

	val, err := jsonpath.Get(expr, parsed)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "query.apply",
			Kind: domain.KindExecution,
			Err:  errors.WithMessagef(err, "jsonpath %q", expr),
		}
	}

	out, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		return nil, &domain.OpError{
			Op:   "query.apply",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	return out, nil
}
