package fileio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raven-computing/reckon/internal/types"
)

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		name       string
		path       string
		wantFormat types.TextFormat
		wantOK     bool
	}{
		{"c file", "foo.c", types.LangC, true},
		{"header", "foo.H", types.LangC, true},
		{"java", "Main.java", types.LangJava, true},
		{"markdown", "README.md", types.Markdown, true},
		{"text", "notes.txt", types.UnformattedText, true},
		{"unknown", "archive.zip", types.UnformattedText, false},
		{"no extension", "Makefile", types.UnformattedText, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := DetectFormat(types.NewSourceFile(c.path))
			assert.Equal(t, c.wantOK, d.IsSupportedFormat)
			if c.wantOK {
				assert.Equal(t, c.wantFormat, d.Format)
			}
		})
	}
}

func TestReadContentIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	f := types.NewSourceFile(path)
	require.NoError(t, ReadContent(f))
	require.True(t, f.IsContentRead)
	first := f.Content

	require.NoError(t, ReadContent(f))
	assert.Equal(t, first, f.Content)
}

func TestReadContentFileNotFound(t *testing.T) {
	f := types.NewSourceFile("/nonexistent/path/to/nowhere.c")
	require.NoError(t, ReadContent(f))
	assert.Equal(t, types.FileNotFound, f.Status)
	assert.False(t, f.IsContentRead)
}

func TestReadContentStickyErrorStatus(t *testing.T) {
	f := types.NewSourceFile("/nonexistent")
	f.Status = types.FileIOError
	require.NoError(t, ReadContent(f))
	assert.Equal(t, types.FileIOError, f.Status)
	assert.False(t, f.IsContentRead)
}

func TestFreeContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	f := types.NewSourceFile(path)
	require.NoError(t, ReadContent(f))
	require.True(t, f.IsContentRead)

	FreeContent(f)
	assert.False(t, f.IsContentRead)
	assert.Zero(t, f.Content.Size)
}

func TestWalkSkipsDotfilesAndSymlinks(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.c"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.c"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".hidden"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden", "c.c"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".dotfile.c"), nil, 0644))

	target := filepath.Join(dir, "a.c")
	link := filepath.Join(dir, "link.c")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	files, err := NewWalker().Walk(dir)
	require.NoError(t, err)
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	assert.ElementsMatch(t, []string{"a.c", "b.c"}, names)
	// Sorted ascending by name, case-sensitive.
	assert.Equal(t, "a.c", names[0])
}

func TestWalkRespectsExclude(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.c"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "vendor"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vendor", "skip.c"), nil, 0644))

	w := &Walker{Exclude: []string{"vendor/**"}}
	files, err := w.Walk(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "keep.c", files[0].Name)
}

func TestIsDirectory(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, IsDirectory(dir))
	assert.False(t, IsDirectory(filepath.Join(dir, "nope")))
}

func TestValidateStatsInput(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, "", ValidateStatsInput(dir))
	assert.NotEqual(t, "", ValidateStatsInput(filepath.Join(dir, "nope")))
}
