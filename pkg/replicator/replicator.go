package replicator

import (
	"io"
	"os"

	"github.com/arthur-debert/photosort/pkg/errors"
	"github.com/arthur-debert/photosort/pkg/filesystem"
)

// Replicator materializes src at dst. dst must not exist.
type Replicator interface {
	Replicate(src, dst string) error
	Kind() Kind
}

const exhaustedMessage = "none replicator reached: replicate failed"

// New builds a chain from kinds. Chain kinds cannot be nested.
func New(fsys filesystem.FS, kinds []Kind) (*Chain, error) {
	replicators := make([]Replicator, 0, len(kinds))
	for _, kind := range kinds {
		r, err := newStrategy(fsys, kind)
		if err != nil {
			return nil, err
		}
		replicators = append(replicators, r)
	}
	return NewChain(replicators...), nil
}

func newStrategy(fsys filesystem.FS, kind Kind) (Replicator, error) {
	switch kind {
	case KindNone:
		return None(), nil
	case KindCopy:
		return Copy(fsys), nil
	case KindHardlink:
		return Hardlink(fsys), nil
	case KindSoftlink:
		return Softlink(fsys), nil
	}
	return nil, errors.Newf(errors.ErrUnknownReplicator, "%s is not a replication strategy", kind).
		WithDetail("name", kind.String())
}

type noneReplicator struct{}

// None returns the replicator that always fails. It terminates every chain.
func None() Replicator { return noneReplicator{} }

func (noneReplicator) Replicate(string, string) error {
	return errors.New(errors.ErrReplicatorsExhausted, exhaustedMessage)
}

func (noneReplicator) Kind() Kind { return KindNone }

type hardlinkReplicator struct{ fsys filesystem.FS }

// Hardlink links dst to the same inode as src.
func Hardlink(fsys filesystem.FS) Replicator { return hardlinkReplicator{fsys} }

func (r hardlinkReplicator) Replicate(src, dst string) error {
	return r.fsys.Link(src, dst)
}

func (hardlinkReplicator) Kind() Kind { return KindHardlink }

type softlinkReplicator struct{ fsys filesystem.FS }

// Softlink creates dst as a symbolic link pointing at src.
func Softlink(fsys filesystem.FS) Replicator { return softlinkReplicator{fsys} }

func (r softlinkReplicator) Replicate(src, dst string) error {
	return r.fsys.Symlink(src, dst)
}

func (softlinkReplicator) Kind() Kind { return KindSoftlink }

type copyReplicator struct{ fsys filesystem.FS }

// Copy writes the bytes of src to a new file at dst, keeping the
// permission bits of src.
func Copy(fsys filesystem.FS) Replicator { return copyReplicator{fsys} }

func (copyReplicator) Kind() Kind { return KindCopy }

func (r copyReplicator) Replicate(src, dst string) error {
	in, err := r.fsys.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput, "%q is a directory", src).WithDetail("path", src)
	}

	out, err := r.fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = r.fsys.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = r.fsys.Remove(dst)
		return err
	}
	return r.fsys.Chmod(dst, info.Mode().Perm())
}
