package transit

import (
	"errors"
	"io"
	"path/filepath"

	"github.com/IllyaZhihunou/content/pkg/constants"
	"github.com/IllyaZhihunou/content/pkg/document"
	"github.com/IllyaZhihunou/content/pkg/produce"
)

// Content is the fully produced dataset: every stop and route of a content
// directory, concatenated in source order, each value still carrying its
// position.
type Content struct {
	Stops  []produce.Item[Stop]
	Routes []produce.Item[Route]
}

// Load produces the dataset from the given document sources. The first
// problem in any document aborts the load.
func (s *Schema) Load(stops, routes document.Source) (*Content, error) {
	var content Content

	for {
		root, err := stops.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		doc, err := s.stops.Produce(root)
		if err != nil {
			return nil, err
		}
		content.Stops = append(content.Stops, doc.Value.Stops.Value...)
	}

	for {
		root, err := routes.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		doc, err := s.routes.Produce(root)
		if err != nil {
			return nil, err
		}
		content.Routes = append(content.Routes, doc.Value.Routes.Value...)
	}

	return &content, nil
}

// LoadDir reads the stops/ and routes/ subdirectories of the content root.
func (s *Schema) LoadDir(dir string) (*Content, error) {
	stops, err := document.NewDirSource(filepath.Join(dir, constants.StopsSubdir))
	if err != nil {
		return nil, err
	}
	routes, err := document.NewDirSource(filepath.Join(dir, constants.RoutesSubdir))
	if err != nil {
		return nil, err
	}
	return s.Load(stops, routes)
}
