package destinations

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// ErrInvalidCatalog is returned for catalogs that cannot be decoded or
// contain an invalid destination.
var ErrInvalidCatalog = errors.New("invalid catalog")

var validate = validator.New(validator.WithRequiredStructEnabled())

// FileStore serves destinations from a YAML catalog.
type FileStore struct {
	path string
}

// NewFileStore reads the catalog at path on every List. An empty path
// selects the built-in catalog.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// List returns the catalog destinations in file order.
func (s *FileStore) List(ctx context.Context) ([]*Destination, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := defaultCatalog
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		data = b
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog. Categories are
// normalised before validation, and positions follow document order.
func ParseCatalog(data []byte) ([]*Destination, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	for i, d := range file.Destinations {
		if d != nil {
			d.Position = i
		}
		if err := checkDestination(i, d); err != nil {
			return nil, err
		}
	}
	return file.Destinations, nil
}

// checkDestination normalises d in place and validates every field not
// named in except.
func checkDestination(i int, d *Destination, except ...string) error {
	if d == nil {
		return fmt.Errorf("%w: destination %d is empty", ErrInvalidCatalog, i)
	}
	d.Title = strings.TrimSpace(d.Title)
	d.Category = strings.ToLower(strings.TrimSpace(d.Category))

	var err error
	if len(except) > 0 {
		err = validate.StructExcept(d, except...)
	} else {
		err = validate.Struct(d)
	}
	if err != nil {
		return fmt.Errorf("%w: destination %d (%q): %w", ErrInvalidCatalog, i, d.Title, err)
	}
	return nil
}

// DefaultCatalog returns the built-in destinations.
func DefaultCatalog() []*Destination {
	list, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
	return list
}
