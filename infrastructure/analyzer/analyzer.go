// Package analyzer composes a manifest parser, a registry client, and the
// shared version cache behind the uniform domain.Analyzer contract, and
// provides the selector that decides which analyzers apply to a directory.
package analyzer

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"sync"

	logger "github.com/sirupsen/logrus"

	"github.com/justinlietz93/Plutonium/domain"
)

// maxConcurrentLookups bounds parallel registry lookups within one manifest.
const maxConcurrentLookups = 10

// unknownVersionMarker is rendered when a package's latest version could not
// be determined (lookup failure or package unknown to the registry).
const unknownVersionMarker = "unknown"

// ecosystemAnalyzer is the one analyzer implementation shared by every
// environment. The orchestration is fixed; parsing and lookup are supplied
// per ecosystem.
type ecosystemAnalyzer struct {
	name         string
	manifestFile string
	parser       domain.ManifestParser
	registry     domain.RegistryClient
}

// New creates an analyzer for one environment from its parser and (cached)
// registry client.
func New(name, manifestFile string, parser domain.ManifestParser, registry domain.RegistryClient) domain.Analyzer {
	return &ecosystemAnalyzer{
		name:         name,
		manifestFile: manifestFile,
		parser:       parser,
		registry:     registry,
	}
}

func (a *ecosystemAnalyzer) Name() string         { return a.name }
func (a *ecosystemAnalyzer) ManifestFile() string { return a.manifestFile }

// Analyze parses the manifest in dir, resolves latest versions, and emits
// one comparison section into sink. A manifest that cannot be interpreted
// returns the *domain.ParsingError to the caller; individual lookup
// failures degrade their row only.
func (a *ecosystemAnalyzer) Analyze(ctx context.Context, dir string, sink domain.ReportSink) error {
	logger.Infof("[%s] Analyzing dependencies in %s", a.name, dir)

	deps, err := a.parser.Parse(filepath.Join(dir, a.manifestFile))
	if err != nil {
		return err
	}

	rows := a.resolveRows(ctx, deps)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })

	sink.AddSection(domain.Section{
		Environment: a.name,
		Directory:   dir,
		Rows:        rows,
	})

	logger.Infof("[%s] Found %d dependencies in %s", a.name, len(rows), dir)
	return nil
}

// resolveRows looks up the latest version of every dependency through a
// bounded worker pool. Lookups are independent and idempotent, so they run
// concurrently; row order is restored by the caller's sort.
func (a *ecosystemAnalyzer) resolveRows(ctx context.Context, deps []domain.Dependency) []domain.Row {
	rows := make([]domain.Row, len(deps))
	sem := make(chan struct{}, maxConcurrentLookups)

	var wg sync.WaitGroup
	for i, dep := range deps {
		wg.Add(1)
		go func(i int, dep domain.Dependency) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			rows[i] = a.resolveRow(ctx, dep)
		}(i, dep)
	}
	wg.Wait()

	return rows
}

// resolveRow builds the comparison row for one dependency. Not-found and
// network failures both degrade to the unknown marker; only the failure
// kinds are logged differently.
func (a *ecosystemAnalyzer) resolveRow(ctx context.Context, dep domain.Dependency) domain.Row {
	latest, err := a.registry.LatestVersion(ctx, dep.Name)
	if err != nil {
		if errors.Is(err, domain.ErrPackageNotFound) {
			logger.Warnf("[%s] Package %s not found in registry", a.name, dep.Name)
		} else {
			logger.Errorf("[%s] Failed to resolve latest version of %s: %v", a.name, dep.Name, err)
		}
		return domain.Row{
			Name:    dep.Name,
			Current: dep.Declared,
			Latest:  unknownVersionMarker,
			Status:  domain.StatusUnknown,
		}
	}

	return domain.Row{
		Name:    dep.Name,
		Current: dep.Declared,
		Latest:  latest,
		Status:  Compare(dep.Raw, latest),
	}
}
