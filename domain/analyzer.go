package domain

import "context"

// Analyzer abstracts a dependency ecosystem (Node.js, Python, Ruby, Maven, Go).
// Each implementation owns the full cycle for one environment: locating and
// parsing the manifest, resolving latest versions, and emitting a report
// section. The orchestration is identical across ecosystems; only parsing and
// registry lookup differ.
type Analyzer interface {
	// Name returns the environment identifier (e.g. "Node.js", "Go").
	Name() string

	// ManifestFile returns the manifest file name checked for applicability
	// (e.g. "package.json").
	ManifestFile() string

	// Analyze parses the manifest in dir, resolves the latest version of
	// every declared dependency, and writes one comparison section into sink.
	// A single package's lookup failure degrades that row only; a manifest
	// that cannot be interpreted returns a *ParsingError.
	Analyze(ctx context.Context, dir string, sink ReportSink) error
}

// ManifestParser extracts declared dependencies from one manifest file format.
type ManifestParser interface {
	// Parse reads the manifest at path and returns its dependency records.
	// Structural failure returns a *ParsingError; an unusual version
	// specifier on a single record never does.
	Parse(path string) ([]Dependency, error)
}

// RegistryClient resolves a package name to its latest published version in
// one ecosystem's public registry.
type RegistryClient interface {
	// LatestVersion returns the latest released version of pkg. Transport
	// failures return a *NetworkError; a registry that affirmatively reports
	// the package missing returns ErrPackageNotFound.
	LatestVersion(ctx context.Context, pkg string) (string, error)
}

// VersionCache stores (environment, package) -> latest version for the
// lifetime of a run. Implementations must be safe for concurrent use.
type VersionCache interface {
	Get(environment, pkg string) (string, bool)
	Set(environment, pkg, version string)
}

// ReportSink receives the sections produced by analyzers. The report builder
// implements it and owns the final document ordering.
type ReportSink interface {
	AddSection(section Section)
}
