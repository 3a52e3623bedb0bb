package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcztzy/wenyan/internal/domain"
)

func TestFindRoot_FindsWorkspaceFromNestedDir(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "ws")
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	// Create wenyan.yaml at root
	require.NoError(t, os.WriteFile(filepath.Join(root, "wenyan.yaml"), []byte("wenyan:\n  defaults:\n    format: pretty\n"), 0o644))

	f := NewFinder()
	got, err := f.FindRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFindRoot_NotFound(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "a", "b"), 0o755))

	f := NewFinder()
	_, err := f.FindRoot(filepath.Join(tmp, "a", "b"))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}
