package scan

import (
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"findbackend/internal/model"
)

// DefaultExcludes are the directory path fragments pruned from every walk.
var DefaultExcludes = []string{"mobile", "website"}

// WalkOptions configures a Walker.
type WalkOptions struct {
	// Excludes prunes any directory whose path contains one of these
	// substrings (case-sensitive). Nil means DefaultExcludes.
	Excludes []string
	// Ignore holds doublestar globs matched against the slash-separated
	// path relative to the walk root. Matching directories are pruned,
	// matching files are skipped.
	Ignore []string
	Logger *slog.Logger
}

// Walker traverses a directory tree and yields its files.
type Walker struct {
	excludes []string
	ignore   []string
	log      *slog.Logger
}

// NewWalker creates a Walker. Invalid ignore globs never match.
func NewWalker(opts WalkOptions) *Walker {
	excludes := opts.Excludes
	if excludes == nil {
		excludes = DefaultExcludes
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Walker{
		excludes: excludes,
		ignore:   opts.Ignore,
		log:      logger,
	}
}

// Walk returns a lazy sequence of every file under root.
//
// Files of a directory are yielded before descending into its
// subdirectories, both in lexical order. A missing or unreadable root
// yields nothing. Symlinked directories are not followed.
func (w *Walker) Walk(root string) iter.Seq[model.FileEntry] {
	return func(yield func(model.FileEntry) bool) {
		w.walkDir(root, root, yield)
	}
}

// walkDir returns false once the consumer has stopped.
func (w *Walker) walkDir(root, dir string, yield func(model.FileEntry) bool) bool {
	if w.excluded(dir) {
		w.log.Debug("pruned excluded directory", "path", dir)
		return true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		w.log.Debug("skipping unreadable directory", "path", dir, "err", err)
		return true
	}

	var subdirs []string
	for _, entry := range entries {
		path := model.JoinPath(dir, entry.Name())
		isDir, followable := classify(path, entry)
		if isDir {
			if followable && !w.ignored(root, path) {
				subdirs = append(subdirs, path)
			}
			continue
		}
		if w.ignored(root, path) {
			continue
		}
		if !yield(model.FileEntry{Dir: dir, Name: entry.Name()}) {
			return false
		}
	}

	for _, sub := range subdirs {
		if !w.walkDir(root, sub, yield) {
			return false
		}
	}
	return true
}

// classify reports whether entry is a directory and whether the walk may
// descend into it. A symlink to a directory counts as a directory but is
// not followed; any other symlink, broken ones included, counts as a file.
func classify(path string, entry fs.DirEntry) (isDir, followable bool) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir(), entry.IsDir()
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, false
	}
	return info.IsDir(), false
}

func (w *Walker) excluded(dir string) bool {
	for _, fragment := range w.excludes {
		if fragment != "" && strings.Contains(dir, fragment) {
			return true
		}
	}
	return false
}

func (w *Walker) ignored(root, path string) bool {
	if len(w.ignore) == 0 {
		return false
	}
	rel := strings.TrimPrefix(path, root)
	rel = strings.TrimLeft(filepath.ToSlash(rel), "/")
	for _, pattern := range w.ignore {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
