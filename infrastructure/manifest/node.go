package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	logger "github.com/sirupsen/logrus"

	"github.com/justinlietz93/Plutonium/domain"
)

// NodeParser reads the dependencies and devDependencies sections of a
// package.json file.
type NodeParser struct{}

// NewNodeParser creates a Node.js manifest parser.
func NewNodeParser() *NodeParser {
	return &NodeParser{}
}

type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Parse extracts dependency records from a package.json file. The declared
// version is the specifier value with range operators stripped for display;
// the raw specifier is retained so ranges classify as unknown later.
func (p *NodeParser) Parse(path string) ([]domain.Dependency, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ParsingError{File: path, Err: err}
	}

	var pkg packageJSON
	if unmarshalErr := json.Unmarshal(data, &pkg); unmarshalErr != nil {
		return nil, &domain.ParsingError{File: path, Err: fmt.Errorf("invalid JSON: %w", unmarshalErr)}
	}

	if pkg.Dependencies == nil && pkg.DevDependencies == nil {
		return nil, &domain.ParsingError{File: path, Err: errors.New("no dependencies or devDependencies section")}
	}

	merged := make(map[string]string, len(pkg.Dependencies)+len(pkg.DevDependencies))
	for name, spec := range pkg.Dependencies {
		merged[name] = spec
	}
	for name, spec := range pkg.DevDependencies {
		merged[name] = spec
	}

	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	deps := make([]domain.Dependency, 0, len(names))
	for _, name := range names {
		spec := merged[name]
		deps = append(deps, domain.Dependency{
			Name:     name,
			Declared: stripRangeOperators(spec),
			Raw:      spec,
		})
	}

	logger.Debugf("Parsed %d dependency declarations from %s", len(deps), path)
	return deps, nil
}
