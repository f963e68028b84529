package analyzer

import (
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/justinlietz93/Plutonium/domain"
)

// Selector decides which analyzers apply to a directory: an environment is
// applicable only when its manifest file exists there.
type Selector struct {
	registry *Registry
}

// NewSelector creates a selector over the given analyzer registry.
func NewSelector(registry *Registry) *Selector {
	return &Selector{registry: registry}
}

// ForDirectory constructs the analyzers for the requested environments, in
// request order, skipping environments whose manifest file is absent. An
// absent manifest is not an error, the environment simply does not apply. All
// constructed analyzers share the one run-scoped cache. Environment-name
// validity is guaranteed upstream by configuration validation.
func (s *Selector) ForDirectory(dir string, environments []string, cache domain.VersionCache) []domain.Analyzer {
	var analyzers []domain.Analyzer
	for _, env := range environments {
		build := s.registry.Get(env)
		if build == nil {
			logger.Warnf("No analyzer registered for environment %q, skipping", env)
			continue
		}

		a := build(cache)
		manifestPath := filepath.Join(dir, a.ManifestFile())
		if _, err := os.Stat(manifestPath); err != nil {
			logger.Debugf("%s not found in %s, skipping %s", a.ManifestFile(), dir, env)
			continue
		}

		analyzers = append(analyzers, a)
	}
	return analyzers
}
