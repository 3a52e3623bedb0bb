package scriptfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcztzy/wenyan/internal/domain"
)

func writeScript(t *testing.T, dir, name, src string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(src), 0o644))
	return p
}

func TestLoadScript(t *testing.T) {
	root := t.TempDir()
	src := "吾有一言。曰「「問天地好在。」」。書之。"
	p := writeScript(t, filepath.Join(root, "scripts"), "問天.wy", src)

	got, err := NewLoader().LoadScript(p)
	require.NoError(t, err)
	assert.Equal(t, "問天", got.Name)
	assert.Equal(t, p, got.Path)
	assert.Equal(t, src, got.Source)
}

func TestLoadScript_NotFound(t *testing.T) {
	_, err := NewLoader().LoadScript(filepath.Join(t.TempDir(), "nope.wy"))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestListScripts_SortedAndFiltered(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "scripts")
	writeScript(t, dir, "乙.wy", "")
	writeScript(t, dir, "甲.wy", "")
	writeScript(t, dir, "readme.txt", "not a script")

	refs, err := NewLoader().ListScripts(root)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "乙", refs[0].Name)
	assert.Equal(t, "甲", refs[1].Name)
}

func TestListScripts_CustomDir(t *testing.T) {
	root := t.TempDir()
	writeScript(t, filepath.Join(root, "經"), "主.wy", "")

	refs, err := NewLoader(WithScriptsDir("經")).ListScripts(root)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "主", refs[0].Name)
}
