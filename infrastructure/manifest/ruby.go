package manifest

import (
	"bufio"
	"os"
	"regexp"

	logger "github.com/sirupsen/logrus"

	"github.com/justinlietz93/Plutonium/domain"
)

// gemPattern matches `gem "name"` and `gem "name", "constraint"` entries.
// Only the first constraint argument is captured; later arguments (groups,
// require flags) are ignored.
var gemPattern = regexp.MustCompile(`^\s*gem\s+['"]([^'"]+)['"](?:\s*,\s*['"]([^'"]+)['"])?`)

// RubyParser reads gem declarations from a Gemfile.
type RubyParser struct{}

// NewRubyParser creates a Ruby manifest parser.
func NewRubyParser() *RubyParser {
	return &RubyParser{}
}

// Parse extracts dependency records from a Gemfile. Gems declared without a
// version constraint still appear, with an empty declared version.
func (p *RubyParser) Parse(path string) ([]domain.Dependency, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &domain.ParsingError{File: path, Err: err}
	}
	defer file.Close()

	var deps []domain.Dependency
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		match := gemPattern.FindStringSubmatch(scanner.Text())
		if match == nil {
			continue
		}

		constraint := match[2]
		deps = append(deps, domain.Dependency{
			Name:     match[1],
			Declared: stripRangeOperators(constraint),
			Raw:      constraint,
		})
	}

	if scanErr := scanner.Err(); scanErr != nil {
		return nil, &domain.ParsingError{File: path, Err: scanErr}
	}

	logger.Debugf("Parsed %d gem declarations from %s", len(deps), path)
	return deps, nil
}
