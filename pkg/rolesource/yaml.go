package rolesource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// document mirrors the YAML file layout.
type document struct {
	Roles map[string]Role `yaml:"roles"`
}

// yamlSource parses role definitions from a reader. The reader is consumed
// on first Load and the parsed result is memoized.
type yamlSource struct {
	r     io.Reader
	once  sync.Once
	roles map[string]Role
	err   error
}

// NewYAMLSource creates a Source that parses YAML role definitions from r.
// The reader is consumed on the first Load; subsequent calls return the
// memoized result.
func NewYAMLSource(r io.Reader) Source {
	return &yamlSource{r: r}
}

func (s *yamlSource) Load(ctx context.Context) (map[string]Role, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	s.once.Do(func() {
		data, err := io.ReadAll(s.r)
		if err != nil {
			s.err = errors.Join(ErrReadFailure, err)
			return
		}
		s.roles, s.err = parseDefinitions(data)
	})
	return s.roles, s.err
}

// yamlFileSource parses role definitions from a file. The file is re-read
// on every Load so definition changes are picked up without a restart.
type yamlFileSource struct {
	path string
}

// NewYAMLFileSource creates a Source that parses YAML role definitions
// from the file at path. The file is re-read on every Load.
func NewYAMLFileSource(path string) Source {
	return &yamlFileSource{path: path}
}

func (s *yamlFileSource) Load(ctx context.Context) (map[string]Role, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrReadFailure, err)
	}
	return parseDefinitions(data)
}

// parseDefinitions unmarshals a YAML document and validates that every
// role name and extends entry is non-empty.
func parseDefinitions(data []byte) (map[string]Role, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrParseFailure, err)
	}

	roles := make(map[string]Role, len(doc.Roles))
	for name, def := range doc.Roles {
		if name == "" {
			return nil, fmt.Errorf("%w: empty role name", ErrInvalidDefinition)
		}
		for _, base := range def.Extends {
			if base == "" {
				return nil, fmt.Errorf("%w: role %q extends an empty role name", ErrInvalidDefinition, name)
			}
		}
		roles[name] = def
	}
	return roles, nil
}
