// Package adapter contains infrastructure adapters for the tidyvue CLI.
package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

// templateExtensions lists the file extensions picked up during discovery.
var templateExtensions = map[string]struct{}{
	".vue":  {},
	".html": {},
	".htm":  {},
}

// recursiveSuffix marks a path argument as a recursive scan root, mirroring
// the Go tool's package pattern syntax.
const recursiveSuffix = "/..."

// SourceFSAdapter abstracts filesystem-specific operations that the domain
// layer relies on when scanning user projects. It intentionally hides direct
// `os` access so the workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get discovers template files under the provided path patterns and
	// returns them as sources with hashes and display paths populated.
	// Patterns ending in /... are scanned recursively; exclude entries are
	// regular expressions matched against the full path.
	Get(ctx context.Context, paths []m.Path, exclude ...string) ([]m.Source, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation limits itself to the root directory (no sub-dirs).
	Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(ctx context.Context, path m.Path) (string, error)

	// FileInfo returns metadata for a path so the domain can check existence
	// or preserve file permissions when writing back.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// RelPath returns the relative path from base to target.
	RelPath(ctx context.Context, base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the concrete implementation backed by the os
// package.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get discovers template files for the given path patterns.
func (a *LocalSourceFSAdapter) Get(ctx context.Context, paths []m.Path, exclude ...string) ([]m.Source, error) {
	if len(paths) == 0 {
		paths = []m.Path{m.Path("." + recursiveSuffix)}
	}

	excludes, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	var sources []m.Source

	seen := make(map[string]struct{})

	for _, pattern := range paths {
		root, recursive := splitPattern(pattern)

		found, err := a.collect(ctx, root, recursive, excludes, seen)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", pattern, err)
		}

		sources = append(sources, found...)
	}

	slog.Debug("discovered template sources", "patterns", len(paths), "count", len(sources))

	return sources, nil
}

func splitPattern(pattern m.Path) (m.Path, bool) {
	p := string(pattern)
	if strings.HasSuffix(p, recursiveSuffix) {
		root := strings.TrimSuffix(p, recursiveSuffix)
		if root == "" {
			root = "."
		}

		return m.Path(root), true
	}

	return pattern, false
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func (a *LocalSourceFSAdapter) collect(ctx context.Context, root m.Path, recursive bool, excludes []*regexp.Regexp, seen map[string]struct{}) ([]m.Source, error) {
	info, err := os.Stat(string(root))
	if err != nil {
		return nil, err
	}

	// A single file argument bypasses the extension filter.
	if !info.IsDir() {
		source, err := a.buildSource(ctx, string(root))
		if err != nil {
			return nil, err
		}

		if _, ok := seen[string(source.Origin.FullPath)]; ok {
			return nil, nil
		}

		seen[string(source.Origin.FullPath)] = struct{}{}

		return []m.Source{source}, nil
	}

	var sources []m.Source

	err = a.Walk(ctx, root, recursive, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		if _, ok := templateExtensions[filepath.Ext(path)]; !ok {
			return nil
		}

		for _, re := range excludes {
			if re.MatchString(path) {
				slog.Debug("excluded file", "path", path, "pattern", re.String())
				return nil
			}
		}

		source, err := a.buildSource(ctx, path)
		if err != nil {
			return err
		}

		if _, ok := seen[string(source.Origin.FullPath)]; ok {
			return nil
		}

		seen[string(source.Origin.FullPath)] = struct{}{}
		sources = append(sources, source)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sources, nil
}

func (a *LocalSourceFSAdapter) buildSource(ctx context.Context, path string) (m.Source, error) {
	fullPath, err := filepath.Abs(path)
	if err != nil {
		return m.Source{}, err
	}

	hash, err := a.HashFile(ctx, m.Path(fullPath))
	if err != nil {
		return m.Source{}, err
	}

	shortPath := path

	cwd, err := os.Getwd()
	if err == nil {
		if rel, relErr := filepath.Rel(cwd, fullPath); relErr == nil {
			shortPath = rel
		}
	}

	return m.Source{Origin: &m.File{
		FullPath:  m.Path(fullPath),
		ShortPath: m.Path(shortPath),
		Hash:      hash,
	}}, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(_ context.Context, path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(_ context.Context, path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(_ context.Context, path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(_ context.Context, path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(_ context.Context, base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
