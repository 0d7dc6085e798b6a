// Package fsutil resolves the configuration's content globs against the
// filesystem.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/specialistvlad/tailgrid/internal/ctxlog"
	"golang.org/x/sync/errgroup"
)

// ErrNoMatches is returned in strict mode when a pattern matches no file.
var ErrNoMatches = errors.New("content pattern matched no files")

// ignoredDirs are never descended into by a content pattern, even when a
// ** would reach them.
var ignoredDirs = []string{"node_modules", ".git"}

// Options tune content resolution.
type Options struct {
	// Workers bounds how many patterns are expanded concurrently.
	Workers int
	// Strict turns a pattern without matches into an error.
	Strict bool
}

// Match is the expansion of one pattern.
type Match struct {
	Pattern string
	Files   []string
}

// Result is the resolved candidate file set.
type Result struct {
	// Files is the sorted, de-duplicated union of all matches.
	Files []string
	// Matches holds one entry per pattern, in configuration order.
	Matches []Match
}

// ResolveContent expands patterns relative to baseDir. Patterns may start
// with ./, ../ or be absolute; brace alternation and ** are supported. Only
// regular files are returned.
func ResolveContent(ctx context.Context, baseDir string, patterns []string, opts Options) (*Result, error) {
	ctx, logger := ctxlog.With(ctx, "base_dir", baseDir)
	logger.Debug("Resolving content patterns.", "patterns", len(patterns), "workers", opts.Workers)

	matches := make([]Match, len(patterns))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))

	for i, pattern := range patterns {
		g.Go(func() error {
			files, err := expand(gctx, baseDir, pattern)
			if err != nil {
				return fmt.Errorf("content[%d] %q: %w", i, pattern, err)
			}
			matches[i] = Match{Pattern: pattern, Files: files}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var empty []string
	seen := make(map[string]struct{})
	res := &Result{Matches: matches}
	for _, m := range matches {
		if len(m.Files) == 0 {
			logger.Warn("Content pattern matched no files.", "pattern", m.Pattern)
			empty = append(empty, fmt.Sprintf("%q", m.Pattern))
			continue
		}
		logger.Debug("Content pattern resolved.", "pattern", m.Pattern, "files", len(m.Files))
		for _, f := range m.Files {
			if _, dup := seen[f]; dup {
				continue
			}
			seen[f] = struct{}{}
			res.Files = append(res.Files, f)
		}
	}
	sort.Strings(res.Files)

	if opts.Strict && len(empty) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatches, strings.Join(empty, ", "))
	}

	logger.Debug("Content resolved.", "files", len(res.Files))
	return res, nil
}

// expand resolves a single pattern.
func expand(ctx context.Context, baseDir, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := filepath.ToSlash(pattern)
	if !doublestar.ValidatePattern(p) {
		return nil, doublestar.ErrBadPattern
	}

	base, rest := doublestar.SplitPattern(p)
	dir := filepath.FromSlash(base)
	if !path.IsAbs(base) {
		dir = filepath.Join(baseDir, dir)
	}

	found, err := doublestar.Glob(os.DirFS(dir), rest, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(found))
	for _, rel := range found {
		if ignored(rel) {
			continue
		}
		files = append(files, filepath.Join(dir, filepath.FromSlash(rel)))
	}
	sort.Strings(files)
	return files, ctx.Err()
}

// ignored reports whether a slash-separated relative path crosses one of
// the ignored directories.
func ignored(rel string) bool {
	for _, seg := range strings.Split(path.Dir(rel), "/") {
		for _, dir := range ignoredDirs {
			if seg == dir {
				return true
			}
		}
	}
	return false
}
