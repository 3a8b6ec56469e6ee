package variables

import (
	"time"

	"github.com/arthur-debert/photosort/pkg/errors"
	"github.com/arthur-debert/photosort/pkg/filesystem"
	"github.com/arthur-debert/photosort/pkg/template"
)

// creationDate reports the birth time when the filesystem records one and
// the modification time otherwise.
func creationDate(fsys filesystem.FS) func(*template.Context) (time.Time, error) {
	return func(ctx *template.Context) (time.Time, error) {
		path, err := sourcePath(ctx)
		if err != nil {
			return time.Time{}, err
		}

		info, err := fsys.Stat(path)
		if err != nil {
			return time.Time{}, errors.Wrapf(err, errors.ErrMetadataRead, "failed to read metadata of %q", path).
				WithDetail("path", path)
		}

		if bt, ok := fsys.(filesystem.BirthTimer); ok {
			if created, ok := bt.BirthTime(path); ok {
				return created.Local(), nil
			}
		}
		return info.ModTime().Local(), nil
	}
}
