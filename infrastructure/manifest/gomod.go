package manifest

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/modfile"

	"github.com/justinlietz93/Plutonium/domain"
)

// GoModParser reads the require list of a go.mod file.
type GoModParser struct{}

// NewGoModParser creates a Go manifest parser.
func NewGoModParser() *GoModParser {
	return &GoModParser{}
}

// Parse extracts dependency records from a go.mod file. Indirect requires
// are preserved with their marker rather than excluded.
func (p *GoModParser) Parse(path string) ([]domain.Dependency, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ParsingError{File: path, Err: err}
	}

	file, parseErr := modfile.Parse(path, data, nil)
	if parseErr != nil {
		return nil, &domain.ParsingError{File: path, Err: parseErr}
	}

	deps := make([]domain.Dependency, 0, len(file.Require))
	for _, req := range file.Require {
		deps = append(deps, domain.Dependency{
			Name:     req.Mod.Path,
			Declared: req.Mod.Version,
			Raw:      req.Mod.Version,
			Indirect: req.Indirect,
		})
	}

	logger.Debugf("Parsed %d module requirements from %s", len(deps), path)
	return deps, nil
}
