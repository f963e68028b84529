package analyzer

import (
	"github.com/justinlietz93/Plutonium/domain"
	"github.com/justinlietz93/Plutonium/infrastructure/manifest"
	"github.com/justinlietz93/Plutonium/infrastructure/registry"
)

// Builder constructs one environment's analyzer around the run-scoped cache.
type Builder func(cache domain.VersionCache) domain.Analyzer

// Registry manages the analyzer builders for all supported environments.
type Registry struct {
	builders map[string]Builder
}

// NewRegistry creates an empty analyzer registry.
func NewRegistry() *Registry {
	return &Registry{builders: make(map[string]Builder)}
}

// Register adds a builder under the environment name.
func (r *Registry) Register(name string, b Builder) {
	r.builders[name] = b
}

// Get returns the builder for the given environment, or nil if not registered.
func (r *Registry) Get(name string) Builder {
	return r.builders[name]
}

// Names returns the list of registered environment names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry wires every supported environment to its manifest parser
// and public registry client, each wrapped cache-first.
func DefaultRegistry() *Registry {
	reg := NewRegistry()

	reg.Register(domain.EnvNodeJS, func(cache domain.VersionCache) domain.Analyzer {
		return New(domain.EnvNodeJS, domain.ManifestFiles[domain.EnvNodeJS],
			manifest.NewNodeParser(),
			registry.NewCached(domain.EnvNodeJS, cache, registry.NewNPM()))
	})
	reg.Register(domain.EnvPython, func(cache domain.VersionCache) domain.Analyzer {
		return New(domain.EnvPython, domain.ManifestFiles[domain.EnvPython],
			manifest.NewPythonParser(),
			registry.NewCached(domain.EnvPython, cache, registry.NewPyPI()))
	})
	reg.Register(domain.EnvRuby, func(cache domain.VersionCache) domain.Analyzer {
		return New(domain.EnvRuby, domain.ManifestFiles[domain.EnvRuby],
			manifest.NewRubyParser(),
			registry.NewCached(domain.EnvRuby, cache, registry.NewRubyGems()))
	})
	reg.Register(domain.EnvMaven, func(cache domain.VersionCache) domain.Analyzer {
		return New(domain.EnvMaven, domain.ManifestFiles[domain.EnvMaven],
			manifest.NewMavenParser(),
			registry.NewCached(domain.EnvMaven, cache, registry.NewMaven()))
	})
	reg.Register(domain.EnvGo, func(cache domain.VersionCache) domain.Analyzer {
		return New(domain.EnvGo, domain.ManifestFiles[domain.EnvGo],
			manifest.NewGoModParser(),
			registry.NewCached(domain.EnvGo, cache, registry.NewGoProxy()))
	})

	return reg
}
