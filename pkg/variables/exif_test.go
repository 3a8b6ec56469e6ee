package variables

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/photosort/pkg/errors"
	"github.com/arthur-debert/photosort/pkg/template"
)

func TestExifDate(t *testing.T) {
	fsys := memFile(t, "/in/a.tif", exifWithDateTime("2021:07:14 10:20:30"), time.Time{})
	ctx, _, err := NewContext(fsys, "/in/a.tif")
	require.NoError(t, err)

	out, err := template.MustParse(":exif.date:|:exif.date.year:|:exif.date.month:|:exif.date.day:").Render(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2021-07-14|2021|07|14", out)
}

func TestExifDate_NotFound(t *testing.T) {
	for name, content := range map[string][]byte{
		"text file":  []byte("definitely not a picture"),
		"empty file": {},
	} {
		t.Run(name, func(t *testing.T) {
			fsys := memFile(t, "/in/a.jpg", content, time.Time{})
			ctx, _, err := NewContext(fsys, "/in/a.jpg")
			require.NoError(t, err)

			_, err = ctx.Resolve(ExifDate)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrExifNotFound), "got %v", err)
		})
	}
}

func TestExifDate_MissingField(t *testing.T) {
	fsys := memFile(t, "/in/a.tif", exifWithoutDateTime(), time.Time{})
	ctx, _, err := NewContext(fsys, "/in/a.tif")
	require.NoError(t, err)

	for _, name := range []string{"exif.date", "exif.date.year", "exif.date.month", "exif.date.day"} {
		_, err = ctx.Resolve(name)
		assert.True(t, errors.IsErrorCode(err, errors.ErrExifMissingField), "%s: got %v", name, err)
	}

	// Both tags are tried, DateTimeOriginal first.
	fields, ok := errors.GetDetail(err, "fields")
	require.True(t, ok)
	assert.Equal(t, []string{"DateTimeOriginal", "DateTime"}, fields)
	assert.Contains(t, err.Error(), "DateTimeOriginal or DateTime")
}

func TestExifDate_ReadError(t *testing.T) {
	fsys := failingReadFS{memFile(t, "/in/a.jpg", exifWithDateTime("2021:07:14 10:20:30"), time.Time{})}
	ctx, _, err := NewContext(fsys, "/in/a.jpg")
	require.NoError(t, err)

	_, err = ctx.Resolve(ExifDate)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrExifRead), "got %v", err)
}

func TestExifDate_DecodedOnce(t *testing.T) {
	opener := &countingOpenFS{FS: memFile(t, "/in/a.tif", exifWithDateTime("2021:07:14 10:20:30"), time.Time{})}
	ctx, _, err := NewContext(opener, "/in/a.tif")
	require.NoError(t, err)

	_, err = template.MustParse(":exif.date.year:/:exif.date.month:/:exif.date.day:").Render(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, opener.opens)
}
