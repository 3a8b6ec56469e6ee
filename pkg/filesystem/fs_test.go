package filesystem

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fsys := NewOS()
	assert.NotNil(t, fsys)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("hello world"), 0644))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())

	f, err := fsys.Open(testFile)
	require.NoError(t, err)
	content, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, "hello world", string(content))

	subDir := filepath.Join(tmpDir, "sub", "dir")
	require.NoError(t, fsys.MkdirAll(subDir, 0755))

	entries, err := fsys.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2) // test.txt and sub/

	require.NoError(t, fsys.Remove(testFile))
	_, err = fsys.Stat(testFile)
	assert.True(t, os.IsNotExist(err))
}

func TestOSLinks(t *testing.T) {
	fsys := NewOS()
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src.txt")
	require.NoError(t, os.WriteFile(src, []byte("data"), 0644))

	hard := filepath.Join(tmpDir, "hard.txt")
	require.NoError(t, fsys.Link(src, hard))

	soft := filepath.Join(tmpDir, "soft.txt")
	require.NoError(t, fsys.Symlink(src, soft))

	info, err := fsys.Lstat(soft)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	canonical, err := Canonicalize(fsys, soft)
	require.NoError(t, err)
	expected, err := filepath.EvalSymlinks(src)
	require.NoError(t, err)
	assert.Equal(t, expected, canonical)
}

func TestOSCanonicalize_DanglingLink(t *testing.T) {
	fsys := NewOS()
	tmpDir := t.TempDir()
	link := filepath.Join(tmpDir, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(tmpDir, "missing"), link))

	_, err := Canonicalize(fsys, link)
	assert.Error(t, err)
}

func TestMemFS(t *testing.T) {
	fsys := NewMemFS()
	require.NoError(t, fsys.MkdirAll("/photos", 0755))

	f, err := fsys.OpenFile("/photos/a.jpg", os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	require.NoError(t, err)
	_, err = f.Write([]byte("jpeg"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = fsys.OpenFile("/photos/a.jpg", os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	assert.Error(t, err, "exclusive create must refuse existing files")

	canonical, err := fsys.EvalSymlinks("/photos/../photos/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/photos/a.jpg", canonical)

	_, err = fsys.EvalSymlinks("/photos/missing.jpg")
	assert.Error(t, err)
}

func TestMemFS_LinksUnsupported(t *testing.T) {
	fsys := NewAferoFS(afero.NewMemMapFs())

	err := fsys.Link("/a", "/b")
	assert.True(t, errors.Is(err, errors.ErrUnsupported))

	err = fsys.Symlink("/a", "/b")
	assert.True(t, errors.Is(err, errors.ErrUnsupported))
}

func TestOSBirthTime(t *testing.T) {
	fsys := NewOS()
	bt, ok := fsys.(BirthTimer)
	require.True(t, ok, "OS filesystem reports birth times")

	_, ok = bt.BirthTime(filepath.Join(t.TempDir(), "missing.jpg"))
	assert.False(t, ok)

	// Not every kernel/filesystem pair records btime, so only check
	// plausibility when one is reported.
	src := filepath.Join(t.TempDir(), "a.jpg")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0644))
	if created, ok := bt.BirthTime(src); ok {
		assert.False(t, created.IsZero())
	}
}

func TestMemFS_NoBirthTime(t *testing.T) {
	_, ok := NewMemFS().(BirthTimer)
	assert.False(t, ok)
}
