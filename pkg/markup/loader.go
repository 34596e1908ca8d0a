package markup

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// ErrNotFound is returned when a resource location does not exist.
var ErrNotFound = errors.New("markup: resource not found")

// Loader resolves a resource location to a parsed document.
type Loader interface {
	LoadXML(location string) (*Node, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(location string) (*Node, error)

// LoadXML calls f(location).
func (f LoaderFunc) LoadXML(location string) (*Node, error) {
	return f(location)
}

// FSLoader loads documents from a file system. Locations are slash
// separated and resolved relative to the root of FS.
type FSLoader struct {
	FS fs.FS
}

// LoadXML reads and parses the document at location.
func (l FSLoader) LoadXML(location string) (*Node, error) {
	if l.FS == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, location)
	}
	name := path.Clean(strings.TrimPrefix(location, "/"))
	f, err := l.FS.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, location)
		}
		return nil, fmt.Errorf("markup: open %s: %w", location, err)
	}
	defer f.Close()

	root, err := ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}
	return root, nil
}
