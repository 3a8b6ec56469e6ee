package variables

import (
	stderrors "errors"

	"github.com/arthur-debert/photosort/pkg/errors"
	"github.com/arthur-debert/photosort/pkg/template"
)

// dateSources are tried in order by the date variables.
var dateSources = []string{ExifDate, CreationDate}

func renderDate(name string, ctx *template.Context) (string, error) {
	suffix, ok := facetSuffix(Date, name)
	if !ok {
		return "", errors.Newf(errors.ErrInternal, "%q is not a date variable", name)
	}

	candidates := make([]string, 0, len(dateSources))
	var causes []error
	for _, source := range dateSources {
		candidate := source + suffix
		candidates = append(candidates, candidate)

		value, err := ctx.Resolve(candidate)
		if err == nil {
			return value, nil
		}
		causes = append(causes, err)
	}

	return "", errors.Wrapf(stderrors.Join(causes...), errors.ErrNoCandidate,
		"no source could provide %q", name).
		WithDetail("candidates", candidates)
}
