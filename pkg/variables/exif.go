package variables

import (
	"io"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/arthur-debert/photosort/pkg/errors"
	"github.com/arthur-debert/photosort/pkg/filesystem"
	"github.com/arthur-debert/photosort/pkg/template"
)

// recordingReader keeps the first non-EOF read error so a decode failure
// caused by I/O can be told apart from a file without EXIF data.
type recordingReader struct {
	r   io.Reader
	err error
}

func (r *recordingReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if err != nil && err != io.EOF && r.err == nil {
		r.err = err
	}
	return n, err
}

func exifDate(fsys filesystem.FS) func(*template.Context) (time.Time, error) {
	return func(ctx *template.Context) (time.Time, error) {
		path, err := sourcePath(ctx)
		if err != nil {
			return time.Time{}, err
		}

		x, err := decodeExif(fsys, path)
		if err != nil {
			return time.Time{}, err
		}

		date, err := x.DateTime()
		if err != nil {
			if exif.IsTagNotPresentError(err) {
				return time.Time{}, errors.Wrapf(err, errors.ErrExifMissingField,
					"no DateTimeOriginal or DateTime field in %q", path).
					WithDetail("path", path).
					WithDetail("fields", []string{string(exif.DateTimeOriginal), string(exif.DateTime)})
			}
			return time.Time{}, errors.Wrapf(err, errors.ErrDateParse, "invalid EXIF DateTime in %q", path).
				WithDetail("path", path)
		}
		return date, nil
	}
}

func decodeExif(fsys filesystem.FS, path string) (*exif.Exif, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrExifRead, "failed to open %q", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	r := &recordingReader{r: f}
	x, err := exif.Decode(r)
	if r.err != nil {
		return nil, errors.Wrapf(r.err, errors.ErrExifRead, "failed to read %q", path).
			WithDetail("path", path)
	}
	if err != nil && (x == nil || exif.IsCriticalError(err)) {
		return nil, errors.Wrapf(err, errors.ErrExifNotFound, "no EXIF data in %q", path).
			WithDetail("path", path)
	}
	return x, nil
}
