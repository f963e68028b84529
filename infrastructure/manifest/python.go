package manifest

import (
	"bufio"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/justinlietz93/Plutonium/domain"
)

// versionOperators are the recognized requirement specifier operators, in
// match order (two-character operators first).
var versionOperators = []string{"==", ">=", "<=", "~=", "!=", ">", "<"}

// PythonParser reads a line-oriented requirements.txt file.
type PythonParser struct{}

// NewPythonParser creates a Python manifest parser.
func NewPythonParser() *PythonParser {
	return &PythonParser{}
}

// Parse extracts dependency records from a requirements.txt file. Comment
// and blank lines are skipped; lines without an extractable package name are
// skipped with a debug log, never fatal.
func (p *PythonParser) Parse(path string) ([]domain.Dependency, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &domain.ParsingError{File: path, Err: err}
	}
	defer file.Close()

	var deps []domain.Dependency
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Inline environment markers and comments are not part of the specifier.
		if idx := strings.IndexAny(line, ";#"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}

		name, spec := splitRequirement(line)
		if name == "" {
			logger.Debugf("Skipping requirements line without a package name: %q", line)
			continue
		}

		deps = append(deps, domain.Dependency{
			Name:     name,
			Declared: stripRangeOperators(spec),
			Raw:      spec,
		})
	}

	if scanErr := scanner.Err(); scanErr != nil {
		return nil, &domain.ParsingError{File: path, Err: scanErr}
	}

	logger.Debugf("Parsed %d dependency declarations from %s", len(deps), path)
	return deps, nil
}

// splitRequirement splits one requirement line into the package name and its
// verbatim version specifier. A line with no operator is an unpinned
// dependency with an empty specifier.
func splitRequirement(line string) (string, string) {
	opIdx := -1
	for _, op := range versionOperators {
		if idx := strings.Index(line, op); idx >= 0 && (opIdx < 0 || idx < opIdx) {
			opIdx = idx
		}
	}

	if opIdx < 0 {
		return strings.TrimSpace(line), ""
	}

	return strings.TrimSpace(line[:opIdx]), strings.TrimSpace(line[opIdx:])
}
