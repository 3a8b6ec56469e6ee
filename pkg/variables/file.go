package variables

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/arthur-debert/photosort/pkg/errors"
	"github.com/arthur-debert/photosort/pkg/template"
)

var nameDatePattern = regexp.MustCompile(`[0-9]{4}[-_]?(0[1-9]|1[0-2])[-_]?(0[1-9]|[12][0-9]|3[01])`)

func renderFile(name string, ctx *template.Context) (string, error) {
	path, err := sourcePath(ctx)
	if err != nil {
		return "", err
	}

	base := filepath.Base(path)
	stem, ext := splitExtension(base)

	switch name {
	case FilePath:
		return path, nil
	case FileName:
		return base, nil
	case FileStem:
		return stem, nil
	case FileExtension:
		return ext, nil
	}
	return "", errors.Newf(errors.ErrInternal, "%q is not a file variable", name)
}

// splitExtension splits the last extension off a file name. Leading dots
// belong to the stem, so ".bashrc" has no extension.
func splitExtension(base string) (stem, ext string) {
	dot := strings.LastIndexByte(base, '.')
	if dot <= 0 {
		return base, ""
	}
	return base[:dot], base[dot+1:]
}

func nameDate(ctx *template.Context) (time.Time, error) {
	path, err := sourcePath(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return parseNameDate(filepath.Base(path))
}

// parseNameDate finds the first YYYY[-_]MM[-_]DD sequence in name.
func parseNameDate(name string) (time.Time, error) {
	if !utf8.ValidString(name) {
		return time.Time{}, errors.New(errors.ErrNotUTF8, "file name is not valid UTF-8").
			WithDetail("name", name)
	}

	match := nameDatePattern.FindString(name)
	if match == "" {
		return time.Time{}, errors.Newf(errors.ErrDateNotFound, "no date found in %q", name).
			WithDetail("name", name)
	}

	digits := strings.NewReplacer("-", "", "_", "").Replace(match)
	date, err := time.Parse("20060102", digits)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, errors.ErrDateParse, "invalid date %q in %q", match, name).
			WithDetail("name", name).
			WithDetail("match", match)
	}
	return date, nil
}
