package document

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/IllyaZhihunou/content/pkg/constants"
)

// Source enumerates the root nodes of a document collection. A source is
// consumed once: Next returns each root exactly once, in a stable order, and
// io.EOF after the last one.
type Source interface {
	Next() (Node, error)
}

// MissingDirectoryError reports a content subdirectory that does not exist.
type MissingDirectoryError struct {
	Dir string
}

func (e *MissingDirectoryError) Error() string {
	return fmt.Sprintf("content directory %s not found", e.Dir)
}

// DirSource reads the documents of one directory: every regular file with
// the document extension, in name order, one file per Next call. Files are
// parsed lazily so the first malformed document stops the run without
// touching the rest.
type DirSource struct {
	files []string
	next  int
}

// NewDirSource lists dir and returns a source over its document files. A
// missing directory is reported as MissingDirectoryError; an existing but
// empty directory yields a source that is immediately exhausted.
func NewDirSource(dir string) (*DirSource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingDirectoryError{Dir: dir}
		}
		return nil, fmt.Errorf("reading content directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), constants.DocumentExtension) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	// os.ReadDir sorts entries by name, so enumeration order is stable.
	return &DirSource{files: files}, nil
}

func (s *DirSource) Next() (Node, error) {
	if s.next >= len(s.files) {
		return nil, io.EOF
	}
	path := s.files[s.next]
	s.next++

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(path, data)
}

// SliceSource serves pre-built nodes, mostly useful in tests.
type SliceSource struct {
	nodes []Node
	next  int
}

// NewSliceSource builds a source over the given nodes.
func NewSliceSource(nodes ...Node) *SliceSource {
	return &SliceSource{nodes: nodes}
}

func (s *SliceSource) Next() (Node, error) {
	if s.next >= len(s.nodes) {
		return nil, io.EOF
	}
	node := s.nodes[s.next]
	s.next++
	return node, nil
}

// Strings returns a source that parses each document string on demand. The
// n-th document is identified as <doc n> in spans and errors.
func Strings(docs ...string) Source {
	return &stringSource{docs: docs}
}

type stringSource struct {
	docs []string
	next int
}

func (s *stringSource) Next() (Node, error) {
	if s.next >= len(s.docs) {
		return nil, io.EOF
	}
	doc := s.docs[s.next]
	s.next++
	return Parse(fmt.Sprintf("<doc %d>", s.next), []byte(doc))
}
