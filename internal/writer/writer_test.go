package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	dir := filepath.Join("/out", "models")

	err := WriteFiles(fs, []File{
		{Filename: "a.py", Content: []byte("# a\n")},
		{Filename: "b.py", Content: []byte("# b\n")},
	}, dir)
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, filepath.Join(dir, "b.py"))
	require.NoError(t, err)
	assert.Equal(t, "# b\n", string(data))

	ok, err := Exists(fs, dir, "a.py")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists(fs, dir, "c.py")
	require.NoError(t, err)
	assert.False(t, ok)
}

// failingFs refuses to open one file name.
type failingFs struct {
	afero.Fs
	fail string
}

func (f failingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if filepath.Base(name) == f.fail {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}

	return f.Fs.OpenFile(name, flag, perm)
}

func TestWriteFilesKeepsEarlierFilesOnFailure(t *testing.T) {
	t.Parallel()

	mem := afero.NewMemMapFs()
	fs := failingFs{Fs: mem, fail: "b.py"}
	dir := "/out/models"

	err := WriteFiles(fs, []File{
		{Filename: "a.py", Content: []byte("a")},
		{Filename: "b.py", Content: []byte("b")},
		{Filename: "c.py", Content: []byte("c")},
	}, dir)
	require.ErrorIs(t, err, os.ErrPermission)
	assert.Contains(t, err.Error(), "b.py")

	ok, err := afero.Exists(mem, filepath.Join(dir, "a.py"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = afero.Exists(mem, filepath.Join(dir, "c.py"))
	require.NoError(t, err)
	assert.False(t, ok)
}
