// Package testdoubles provides test doubles (spies, stubs, dummies) for
// domain interfaces. These are hand-crafted implementations, no mock
// frameworks.
package testdoubles

import (
	"context"
	"fmt"
	"sync"

	"github.com/justinlietz93/Plutonium/domain"
)

// ---------------------------------------------------------------------------
// SpyRegistryClient
// ---------------------------------------------------------------------------

// SpyRegistryClient implements domain.RegistryClient as a configurable spy.
// Configure Versions (and optionally Err or NotFound) for the packages your
// test exercises, then inspect Lookups to verify call behavior.
type SpyRegistryClient struct {
	// --- responses ---
	Versions map[string]string // package -> latest version
	NotFound map[string]bool   // package -> answer with ErrPackageNotFound
	Err      error             // returned for every package when set

	// spy: packages that were looked up
	mu      sync.Mutex
	Lookups []string
}

func (s *SpyRegistryClient) LatestVersion(_ context.Context, pkg string) (string, error) {
	s.mu.Lock()
	s.Lookups = append(s.Lookups, pkg)
	s.mu.Unlock()

	if s.Err != nil {
		return "", s.Err
	}
	if s.NotFound[pkg] {
		return "", fmt.Errorf("%s: %w", pkg, domain.ErrPackageNotFound)
	}
	version, ok := s.Versions[pkg]
	if !ok {
		return "", &domain.NetworkError{Package: pkg, Err: fmt.Errorf("no stubbed version for %s", pkg)}
	}
	return version, nil
}

// LookupCount returns how many lookups were performed for pkg.
func (s *SpyRegistryClient) LookupCount(pkg string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, p := range s.Lookups {
		if p == pkg {
			count++
		}
	}
	return count
}

// ---------------------------------------------------------------------------
// StubParser
// ---------------------------------------------------------------------------

// StubParser implements domain.ManifestParser with canned records.
type StubParser struct {
	Deps []domain.Dependency
	Err  error
	// spy: paths that were parsed
	Paths []string
}

func (s *StubParser) Parse(path string) ([]domain.Dependency, error) {
	s.Paths = append(s.Paths, path)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Deps, nil
}

// ---------------------------------------------------------------------------
// SinkRecorder
// ---------------------------------------------------------------------------

// SinkRecorder implements domain.ReportSink and records every section it
// receives, in order.
type SinkRecorder struct {
	mu       sync.Mutex
	Sections []domain.Section
}

func (r *SinkRecorder) AddSection(section domain.Section) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Sections = append(r.Sections, section)
}

// ---------------------------------------------------------------------------
// SpyAnalyzer
// ---------------------------------------------------------------------------

// SpyAnalyzer implements domain.Analyzer as a configurable spy for selector
// and service tests.
type SpyAnalyzer struct {
	EnvironmentName string
	Manifest        string
	Section         domain.Section
	Err             error

	// spy: directories analyzed
	AnalyzedDirs []string
}

func (s *SpyAnalyzer) Name() string         { return s.EnvironmentName }
func (s *SpyAnalyzer) ManifestFile() string { return s.Manifest }

func (s *SpyAnalyzer) Analyze(_ context.Context, dir string, sink domain.ReportSink) error {
	s.AnalyzedDirs = append(s.AnalyzedDirs, dir)
	if s.Err != nil {
		return s.Err
	}

	section := s.Section
	if section.Environment == "" {
		section.Environment = s.EnvironmentName
	}
	section.Directory = dir
	sink.AddSection(section)
	return nil
}
