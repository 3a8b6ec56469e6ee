package sort

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/photosort/pkg/errors"
	"github.com/arthur-debert/photosort/pkg/filesystem"
	"github.com/arthur-debert/photosort/pkg/logging"
	"github.com/arthur-debert/photosort/pkg/replicator"
	"github.com/arthur-debert/photosort/pkg/template"
	"github.com/arthur-debert/photosort/pkg/variables"
)

// Config holds what a Sorter needs to sort files.
type Config struct {
	Template   *template.Template
	Replicator replicator.Replicator
	Overwrite  bool
}

// Sorter sorts files. It holds no per-file state.
type Sorter struct {
	cfg    Config
	fsys   filesystem.FS
	logger zerolog.Logger
}

// Option configures a Sorter.
type Option func(*Sorter)

// WithFS sets the filesystem. The OS filesystem is used by default.
func WithFS(fsys filesystem.FS) Option {
	return func(s *Sorter) { s.fsys = fsys }
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Sorter) { s.logger = logger }
}

// New returns a Sorter. A nil Replicator defaults to the hardlink, softlink,
// copy chain over the sorter's filesystem.
func New(cfg Config, opts ...Option) *Sorter {
	s := &Sorter{
		cfg:    cfg,
		fsys:   filesystem.NewOS(),
		logger: logging.GetLogger("sort"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cfg.Replicator == nil {
		s.cfg.Replicator = replicator.NewChain(
			replicator.Hardlink(s.fsys),
			replicator.Softlink(s.fsys),
			replicator.Copy(s.fsys),
		)
	}
	return s
}

// SortFile sorts a single file.
func (s *Sorter) SortFile(path string) (Outcome, error) {
	ctx, source, err := variables.NewContext(s.fsys, path)
	if err != nil {
		return Outcome{Source: path}, stageError(err, errors.ErrSortContext, StageContext, path, "",
			"failed to prepare variables")
	}
	outcome := Outcome{Source: source}

	destination, err := s.cfg.Template.Render(ctx)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrUndefinedVariable) {
			return outcome, stageError(err, errors.ErrSortRender, StageRender, source, "",
				"failed to render destination")
		}
		return outcome, stageError(err, errors.ErrSortResolve, StageResolve, source, "",
			"failed to resolve destination variables")
	}
	if destination == "" {
		return outcome, stageError(errors.New(errors.ErrInvalidInput, "template rendered an empty path"),
			errors.ErrSortRender, StageRender, source, "", "failed to render destination")
	}
	outcome.Destination = destination

	logger := s.logger.With().Str("source", source).Str("destination", destination).Logger()

	if s.isSameFile(source, destination) {
		logger.Debug().Msg("Destination is the source, skipping")
		outcome.Action = ActionSkipped
		outcome.SkipReason = SkipSameFile
		return outcome, nil
	}

	// Lstat so that a dangling link at the destination counts as existing.
	if info, err := s.fsys.Lstat(destination); err == nil {
		if !s.cfg.Overwrite {
			logger.Warn().Msg("Destination exists, skipping")
			outcome.Action = ActionSkipped
			outcome.SkipReason = SkipOverwriteDisabled
			return outcome, nil
		}
		if err := s.remove(destination, info); err != nil {
			return outcome, stageError(err, errors.ErrSortOverwrite, StageOverwrite, source, destination,
				"failed to remove existing destination")
		}
		logger.Info().Msg("Removed existing destination")
		outcome.Overwritten = true
	}

	if err := s.fsys.MkdirAll(filepath.Dir(destination), 0755); err != nil {
		return outcome, stageError(err, errors.ErrSortReplicate, StageReplicate, source, destination,
			"failed to create destination directory")
	}

	if err := s.cfg.Replicator.Replicate(source, destination); err != nil {
		return outcome, stageError(err, errors.ErrSortReplicate, StageReplicate, source, destination,
			"failed to replicate")
	}

	logger.Info().Bool("overwritten", outcome.Overwritten).Msg("Replicated")
	outcome.Action = ActionReplicated
	return outcome, nil
}

// isSameFile reports whether destination resolves to the canonical source.
func (s *Sorter) isSameFile(source, destination string) bool {
	canonical, err := filesystem.Canonicalize(s.fsys, destination)
	if err != nil {
		return false
	}
	return canonical == source
}

func (s *Sorter) remove(path string, info os.FileInfo) error {
	if info.IsDir() {
		return s.fsys.RemoveAll(path)
	}
	return s.fsys.Remove(path)
}

func stageError(err error, code errors.ErrorCode, stage Stage, source, destination, message string) error {
	e := errors.Wrap(err, code, message).
		WithDetail("stage", stage).
		WithDetail("source", source)
	if destination != "" {
		e.WithDetail("destination", destination)
	}
	return e
}
