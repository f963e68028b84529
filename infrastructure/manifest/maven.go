package manifest

import (
	"encoding/xml"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/justinlietz93/Plutonium/domain"
)

// MavenParser reads the dependency lists of a pom.xml file.
type MavenParser struct{}

// NewMavenParser creates a Maven manifest parser.
func NewMavenParser() *MavenParser {
	return &MavenParser{}
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type pomFile struct {
	XMLName              xml.Name        `xml:"project"`
	Dependencies         []pomDependency `xml:"dependencies>dependency"`
	DependencyManagement struct {
		Dependencies []pomDependency `xml:"dependencies>dependency"`
	} `xml:"dependencyManagement"`
}

// Parse extracts dependency records from a pom.xml file, keyed as
// "groupId:artifactId". A version referencing a property placeholder
// (e.g. "${spring.version}") is recorded verbatim rather than resolved.
func (p *MavenParser) Parse(path string) ([]domain.Dependency, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ParsingError{File: path, Err: err}
	}

	var pom pomFile
	if unmarshalErr := xml.Unmarshal(data, &pom); unmarshalErr != nil {
		return nil, &domain.ParsingError{File: path, Err: fmt.Errorf("invalid XML: %w", unmarshalErr)}
	}

	var deps []domain.Dependency
	seen := make(map[string]bool)
	for _, entry := range append(pom.Dependencies, pom.DependencyManagement.Dependencies...) {
		if entry.GroupID == "" || entry.ArtifactID == "" {
			logger.Debugf("Skipping dependency element without groupId/artifactId in %s", path)
			continue
		}

		name := entry.GroupID + ":" + entry.ArtifactID
		if seen[name] {
			continue
		}
		seen[name] = true

		deps = append(deps, domain.Dependency{
			Name:     name,
			Declared: entry.Version,
			Raw:      entry.Version,
		})
	}

	logger.Debugf("Parsed %d dependency declarations from %s", len(deps), path)
	return deps, nil
}
