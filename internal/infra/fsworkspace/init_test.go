package fsworkspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcztzy/wenyan/internal/domain"
)

func TestInitCreatesLayout(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, NewInitializer().Init(domain.WorkspaceSpec{Root: root}, false))

	for _, d := range []string{
		"scripts",
		filepath.Join(".wenyan", "sessions"),
		filepath.Join(".wenyan", "logs"),
	} {
		info, err := os.Stat(filepath.Join(root, d))
		require.NoError(t, err, d)
		assert.True(t, info.IsDir(), d)
	}

	b, err := os.ReadFile(filepath.Join(root, "wenyan.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "format: pretty")
	assert.Contains(t, string(b), "scripts_dir: scripts")

	b, err = os.ReadFile(filepath.Join(root, "scripts", "問天.wy"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "書之")
}

func TestInitKeepsExistingFilesWithoutForce(t *testing.T) {
	root := t.TempDir()
	custom := []byte("wenyan:\n  defaults:\n    format: json\n")
	require.NoError(t, os.WriteFile(filepath.Join(root, "wenyan.yaml"), custom, 0o644))

	require.NoError(t, NewInitializer().Init(domain.WorkspaceSpec{Root: root}, false))

	b, err := os.ReadFile(filepath.Join(root, "wenyan.yaml"))
	require.NoError(t, err)
	assert.Equal(t, custom, b)

	require.NoError(t, NewInitializer().Init(domain.WorkspaceSpec{Root: root}, true))
	b, err = os.ReadFile(filepath.Join(root, "wenyan.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "format: pretty")
}
