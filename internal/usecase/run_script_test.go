package usecase

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcztzy/wenyan/internal/domain"
	"github.com/tcztzy/wenyan/internal/infra/interprunner"
	"github.com/tcztzy/wenyan/internal/infra/scriptfs"
)

func writeScript(t *testing.T, src string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "script.wy")
	require.NoError(t, os.WriteFile(p, []byte(src), 0o644))
	return p
}

func TestRunScriptExecutesFile(t *testing.T) {
	p := writeScript(t, "加一以二。書之。")

	uc := NewRunScript(scriptfs.NewLoader(), interprunner.New(zerolog.Nop()))

	var sb strings.Builder
	require.NoError(t, uc.Execute(context.Background(), p, &sb))
	assert.Equal(t, "3\n", sb.String())
}

func TestRunScriptMissingFile(t *testing.T) {
	uc := NewRunScript(scriptfs.NewLoader(), interprunner.New(zerolog.Nop()))

	err := uc.Execute(context.Background(), filepath.Join(t.TempDir(), "nope.wy"), &strings.Builder{})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestCheckScriptReportsSyntaxOnly(t *testing.T) {
	good := writeScript(t, "除一以零。書之。")
	uc := NewCheckScript(scriptfs.NewLoader(), interprunner.New(zerolog.Nop()))

	// Runtime failure is fine for check; only syntax matters.
	require.NoError(t, uc.Execute(good))

	bad := writeScript(t, "吾有一物。")
	err := uc.Execute(bad)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindSyntax))
}
