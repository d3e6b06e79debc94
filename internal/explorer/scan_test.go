package explorer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.txt"), []byte("test"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "script.py"), []byte("print('test')"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "binary.bin"), []byte{0x00, 0x01}, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("hidden"), 0644))

	items, err := Scan(dir)
	require.NoError(t, err)

	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	assert.Equal(t, []string{ParentName, "subdir/", "script.py", "test.txt"}, names)

	assert.True(t, items[0].IsDir)
	assert.Equal(t, filepath.Dir(dir), items[0].Path)
	assert.True(t, items[1].IsDir)
	assert.Equal(t, filepath.Join(dir, "subdir"), items[1].Path)
	assert.False(t, items[2].IsDir)
}

func TestScan_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()

	items, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, ParentName, items[0].Name)
}

func TestScan_SortOrder(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.Mkdir(filepath.Join(dir, "Zeta"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "alpha"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Beta.md"), []byte("b"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "apple.md"), []byte("a"), 0644))

	items, err := Scan(dir)
	require.NoError(t, err)

	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	// Directories first, both groups case-insensitively sorted.
	assert.Equal(t, []string{ParentName, "alpha/", "Zeta/", "apple.md", "Beta.md"}, names)
}

func TestScan_UnreadableDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "gone")

	items, err := Scan(dir)
	assert.Error(t, err)
	// The parent entry survives so the user can still back out.
	require.Len(t, items, 1)
	assert.Equal(t, ParentName, items[0].Name)
}
