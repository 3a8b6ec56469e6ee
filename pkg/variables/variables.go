package variables

import (
	"time"

	"github.com/arthur-debert/photosort/pkg/errors"
	"github.com/arthur-debert/photosort/pkg/filesystem"
	"github.com/arthur-debert/photosort/pkg/template"
)

// Variable names
const (
	FilePath      = "file.path"
	FileName      = "file.name"
	FileStem      = "file.stem"
	FileExtension = "file.extension"
	FileNameDate  = "file.name.date"
	CreationDate  = "file.md.creation_date"
	ExifDate      = "exif.date"
	Date          = "date"
)

// Date facets share a base name and differ by suffix and layout.
var dateFacets = []struct {
	suffix string
	layout string
}{
	{"", "2006-01-02"},
	{".year", "2006"},
	{".month", "01"},
	{".day", "02"},
}

// NewContext canonicalizes path and returns a context with every variable
// family registered, together with the canonical path.
func NewContext(fsys filesystem.FS, path string) (*template.Context, string, error) {
	canonical, err := filesystem.Canonicalize(fsys, path)
	if err != nil {
		return nil, "", errors.Wrapf(err, errors.ErrCanonicalize, "failed to canonicalize %q", path).
			WithDetail("path", path)
	}

	ctx := template.NewContext()
	ctx.Insert([]string{template.PathVariable}, template.Value(canonical))
	Register(ctx, fsys)

	return ctx, canonical, nil
}

// Register adds every variable family to a context already seeded with
// template.PathVariable.
func Register(ctx *template.Context, fsys filesystem.FS) {
	ctx.Insert([]string{FilePath, FileName, FileStem, FileExtension}, template.ProviderFunc(renderFile))
	ctx.Insert(facetNames(FileNameDate), &datedProvider{base: FileNameDate, load: nameDate})
	ctx.Insert(facetNames(CreationDate), &datedProvider{base: CreationDate, load: creationDate(fsys)})
	ctx.Insert(facetNames(ExifDate), &datedProvider{base: ExifDate, load: exifDate(fsys)})
	ctx.Insert(facetNames(Date), template.ProviderFunc(renderDate))
}

// Names returns every public variable name, grouped by family.
func Names() []string {
	names := []string{FilePath, FileName, FileStem, FileExtension}
	for _, base := range []string{FileNameDate, CreationDate, ExifDate, Date} {
		names = append(names, facetNames(base)...)
	}
	return names
}

func facetNames(base string) []string {
	names := make([]string, len(dateFacets))
	for i, f := range dateFacets {
		names[i] = base + f.suffix
	}
	return names
}

func facetLayout(base, name string) (string, bool) {
	for _, f := range dateFacets {
		if base+f.suffix == name {
			return f.layout, true
		}
	}
	return "", false
}

func facetSuffix(base, name string) (string, bool) {
	for _, f := range dateFacets {
		if base+f.suffix == name {
			return f.suffix, true
		}
	}
	return "", false
}

// datedProvider serves the four facets of one date. The date is loaded on
// first use and kept, failure included, for the lifetime of the context.
type datedProvider struct {
	base string
	load func(ctx *template.Context) (time.Time, error)

	loaded bool
	date   time.Time
	err    error
}

func (p *datedProvider) Render(name string, ctx *template.Context) (string, error) {
	layout, ok := facetLayout(p.base, name)
	if !ok {
		return "", errors.Newf(errors.ErrInternal, "%q is not a facet of %q", name, p.base)
	}

	if !p.loaded {
		p.date, p.err = p.load(ctx)
		p.loaded = true
	}
	if p.err != nil {
		return "", p.err
	}
	return p.date.Format(layout), nil
}

func sourcePath(ctx *template.Context) (string, error) {
	return ctx.Resolve(template.PathVariable)
}
