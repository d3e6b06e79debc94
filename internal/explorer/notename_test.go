package explorer

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"My Note Title", "My-Note-Title"},
		{"test!@#$%^&*()note", "testnote"},
		{"  spaced  note  ", "spaced-note"},
		{"multiple---hyphens", "multiple-hyphens"},
		{"123-abc_def", "123-abc_def"},
		{"", "untitled"},
		{"!!!", "untitled"},
		{"---", "untitled"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.title))
		})
	}
}

func TestSanitize_OutputAlwaysSafe(t *testing.T) {
	safe := regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	inputs := []string{
		"ordinary title", "with/slash\\and:colons", "tabs\tand\nnewlines",
		"ünïcödé", "trailing-- ", " -leading", "a", "",
	}
	for _, in := range inputs {
		got := Sanitize(in)
		assert.Regexp(t, safe, got, "input %q", in)
		assert.NotContains(t, got, "--", "input %q", in)
		assert.False(t, strings.HasPrefix(got, "-"), "input %q", in)
		assert.False(t, strings.HasSuffix(got, "-"), "input %q", in)
	}
}

func TestDailyNoteName(t *testing.T) {
	day := time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2024-03-07.md", DailyNoteName(day))
}

func TestUniquePath(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, filepath.Join(dir, "idea.md"), UniquePath(dir, "idea"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "idea.md"), nil, 0644))
	assert.Equal(t, filepath.Join(dir, "idea-1.md"), UniquePath(dir, "idea"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "idea-1.md"), nil, 0644))
	assert.Equal(t, filepath.Join(dir, "idea-2.md"), UniquePath(dir, "idea"))
}

func TestCreateNote(t *testing.T) {
	dir := t.TempDir()

	path, err := CreateNote(dir, "My Note Title")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "My-Note-Title.md"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size(), "new notes start empty")

	// Same title again picks the next free name.
	path2, err := CreateNote(dir, "My Note Title")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "My-Note-Title-1.md"), path2)
}

func TestCreateNote_BlankTitle(t *testing.T) {
	dir := t.TempDir()

	_, err := CreateNote(dir, "   ")
	assert.Error(t, err)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "no file on blank title")
}

func TestEnsureDailyNote(t *testing.T) {
	dir := t.TempDir()
	day := time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC)

	path, err := EnsureDailyNote(dir, day)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "2024-03-07.md"), path)

	require.NoError(t, os.WriteFile(path, []byte("existing content"), 0644))

	// Second call opens the same file and keeps its content.
	again, err := EnsureDailyNote(dir, day)
	require.NoError(t, err)
	assert.Equal(t, path, again)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing content", string(data))
}
