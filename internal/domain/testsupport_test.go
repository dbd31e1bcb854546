package domain

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"tidyvue.dev/pkg/tidyvue/internal/adapter"
	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

// fakeFS is an in-memory SourceFSAdapter for workflow tests.
type fakeFS struct {
	mu      sync.Mutex
	sources []m.Source
	files   map[m.Path][]byte
	perms   map[m.Path]os.FileMode
	written map[m.Path][]byte
}

func newFakeFS() *fakeFS {
	return &fakeFS{
		files:   make(map[m.Path][]byte),
		perms:   make(map[m.Path]os.FileMode),
		written: make(map[m.Path][]byte),
	}
}

// addFile registers a source backed by in-memory content.
func (f *fakeFS) addFile(path, hash, content string) m.Source {
	full := m.Path(path)

	source := m.Source{Origin: &m.File{
		FullPath:  full,
		ShortPath: m.Path(filepath.Base(path)),
		Hash:      hash,
	}}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.sources = append(f.sources, source)
	f.files[full] = []byte(content)
	f.perms[full] = 0o644

	return source
}

func (f *fakeFS) Get(_ context.Context, _ []m.Path, _ ...string) ([]m.Source, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]m.Source(nil), f.sources...), nil
}

func (f *fakeFS) Walk(_ context.Context, _ m.Path, _ bool, _ adapter.FilepathWalkFunc) error {
	return nil
}

func (f *fakeFS) ReadFile(_ context.Context, path m.Path) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	content, ok := f.files[path]
	if !ok {
		return nil, fmt.Errorf("open %s: file does not exist", path)
	}

	return append([]byte(nil), content...), nil
}

func (f *fakeFS) HashFile(_ context.Context, path m.Path) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, source := range f.sources {
		if source.Origin.FullPath == path {
			return source.Origin.Hash, nil
		}
	}

	return "", fmt.Errorf("unknown file %s", path)
}

func (f *fakeFS) FileInfo(_ context.Context, path m.Path) (os.FileInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	content, ok := f.files[path]
	if !ok {
		return nil, fmt.Errorf("stat %s: file does not exist", path)
	}

	return fakeFileInfo{name: filepath.Base(string(path)), size: int64(len(content)), mode: f.perms[path]}, nil
}

func (f *fakeFS) WriteFile(_ context.Context, path m.Path, content []byte, perm os.FileMode) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.files[path] = append([]byte(nil), content...)
	f.written[path] = append([]byte(nil), content...)
	f.perms[path] = perm

	return nil
}

func (f *fakeFS) RelPath(_ context.Context, base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))

	return m.Path(rel), err
}

func (f *fakeFS) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

func (f *fakeFS) writtenContent(path m.Path) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	content, ok := f.written[path]

	return string(content), ok
}

type fakeFileInfo struct {
	name string
	size int64
	mode os.FileMode
}

func (fi fakeFileInfo) Name() string       { return fi.name }
func (fi fakeFileInfo) Size() int64        { return fi.size }
func (fi fakeFileInfo) Mode() os.FileMode  { return fi.mode }
func (fi fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (fi fakeFileInfo) IsDir() bool        { return false }
func (fi fakeFileInfo) Sys() any           { return nil }
