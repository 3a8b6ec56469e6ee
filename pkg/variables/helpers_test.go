package variables

import (
	"bytes"
	"encoding/binary"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/photosort/pkg/filesystem"
)

// tiffWithASCII builds a minimal little-endian TIFF whose first IFD holds a
// single ASCII tag.
func tiffWithASCII(tag uint16, value string) []byte {
	data := append([]byte(value), 0)

	var b bytes.Buffer
	b.WriteString("II*\x00")
	_ = binary.Write(&b, binary.LittleEndian, uint32(8))
	_ = binary.Write(&b, binary.LittleEndian, uint16(1))
	_ = binary.Write(&b, binary.LittleEndian, tag)
	_ = binary.Write(&b, binary.LittleEndian, uint16(2))
	_ = binary.Write(&b, binary.LittleEndian, uint32(len(data)))
	_ = binary.Write(&b, binary.LittleEndian, uint32(26))
	_ = binary.Write(&b, binary.LittleEndian, uint32(0))
	b.Write(data)
	return b.Bytes()
}

func exifWithDateTime(value string) []byte {
	return tiffWithASCII(0x0132, value)
}

func exifWithoutDateTime() []byte {
	return tiffWithASCII(0x010F, "Photosort Camera")
}

// memFile writes content to path in a fresh in-memory filesystem.
func memFile(t *testing.T, path string, content []byte, modTime time.Time) filesystem.FS {
	t.Helper()
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(mem, path, content, 0644))
	if !modTime.IsZero() {
		require.NoError(t, mem.Chtimes(path, modTime, modTime))
	}
	return filesystem.NewAferoFS(mem)
}

// osFile writes content to name inside a temporary directory.
func osFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

// failingReadFS opens files whose reads always fail.
type failingReadFS struct {
	filesystem.FS
}

func (f failingReadFS) Open(name string) (filesystem.File, error) {
	file, err := f.FS.Open(name)
	if err != nil {
		return nil, err
	}
	return failingFile{file}, nil
}

type failingFile struct {
	filesystem.File
}

func (failingFile) Read([]byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: "broken", Err: io.ErrUnexpectedEOF}
}
