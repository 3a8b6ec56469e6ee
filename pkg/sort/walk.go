package sort

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/arthur-debert/photosort/pkg/errors"
)

// SortPaths sorts every path, descending into directories. Each result is
// passed to fn, which may be nil.
func (s *Sorter) SortPaths(paths []string, fn func(Result)) Summary {
	var summary Summary
	record := func(r Result) {
		summary.Add(r)
		if fn != nil {
			fn(r)
		}
	}

	for _, path := range paths {
		if info, err := s.fsys.Stat(path); err == nil && info.IsDir() {
			s.walk(path, record)
			continue
		}
		record(s.sortResult(path))
	}
	return summary
}

// SortDir sorts every file below root.
func (s *Sorter) SortDir(root string, fn func(Result)) Summary {
	return s.SortPaths([]string{root}, fn)
}

// walk visits directories depth first with an explicit stack. Within a
// directory, files are sorted in lexical order before any subdirectory is
// entered. Symlinks to directories are not followed.
func (s *Sorter) walk(root string, fn func(Result)) {
	stack := []string{root}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := s.fsys.ReadDir(dir)
		if err != nil {
			fn(Result{
				Path: dir,
				Err:  stageError(err, errors.ErrSortWalk, StageWalk, dir, "", "failed to read directory"),
			})
			continue
		}
		slices.SortFunc(entries, func(a, b fs.DirEntry) int {
			return strings.Compare(a.Name(), b.Name())
		})

		var subdirs []string
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				subdirs = append(subdirs, path)
				continue
			}
			if s.isDirLink(path, entry) {
				s.logger.Debug().Str("path", path).Msg("Not following directory symlink")
				continue
			}
			fn(s.sortResult(path))
		}

		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}
}

func (s *Sorter) isDirLink(path string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := s.fsys.Stat(path)
	return err == nil && info.IsDir()
}

func (s *Sorter) sortResult(path string) Result {
	outcome, err := s.SortFile(path)
	if err != nil {
		s.logger.Debug().Err(err).Str("path", path).Msg("Sort failed")
	}
	return Result{Path: path, Outcome: outcome, Err: err}
}
