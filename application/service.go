// Package application orchestrates a full report run: directory tasks ->
// analyzer selection -> analysis -> Markdown document -> cache snapshot.
package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/justinlietz93/Plutonium/config"
	"github.com/justinlietz93/Plutonium/domain"
	"github.com/justinlietz93/Plutonium/infrastructure/analyzer"
	"github.com/justinlietz93/Plutonium/infrastructure/cache"
	"github.com/justinlietz93/Plutonium/infrastructure/report"
	"github.com/justinlietz93/Plutonium/infrastructure/source"
)

// ReportService drives the full report generation flow. It performs no
// parsing or network I/O itself; analyzers own those. Failures are isolated
// per (directory, environment) pair: the run never aborts because one pair
// failed, and the emitted document is always syntactically complete.
type ReportService struct {
	selector *analyzer.Selector
	cache    *cache.Memory
}

// NewReportService creates a service over the given selector and run-scoped
// cache.
func NewReportService(selector *analyzer.Selector, versionCache *cache.Memory) *ReportService {
	return &ReportService{selector: selector, cache: versionCache}
}

// Run generates the dependency report for the configured directory tasks and
// writes it to the configured output file. Only an unwritable output
// destination is fatal once analysis has started.
func (s *ReportService) Run(ctx context.Context, cfg *config.Config) error {
	builder := report.NewBuilder()

	processed := make(map[string]bool)
	for _, task := range cfg.Directories {
		if processed[task.Path] {
			logger.Warnf("Directory %q already processed, skipping duplicate entry", task.Path)
			continue
		}
		processed[task.Path] = true

		s.processTask(ctx, task, builder)
	}

	if err := writeDocument(cfg.OutputFile, builder.String()); err != nil {
		return err
	}
	logger.Infof("Dependency report written to %s", cfg.OutputFile)

	if snapshot := cfg.SnapshotPath(); snapshot != "" {
		if err := s.cache.Save(snapshot); err != nil {
			logger.Warnf("Failed to persist version cache: %v", err)
		} else {
			logger.Debugf("Persisted %d cached versions to %s", s.cache.Len(), snapshot)
		}
	}

	return nil
}

// processTask analyzes one directory task, resolving remote sources first.
// Sections are always labeled with the configured path, not a temporary
// checkout location.
func (s *ReportService) processTask(ctx context.Context, task config.DirectoryConfig, builder *report.Builder) {
	logger.Infof("Processing directory: %s", task.Path)

	dir := task.Path
	if source.IsRemote(task.Path) {
		checkout, cleanup, err := source.Checkout(ctx, task.Path)
		if err != nil {
			logger.Errorf("Failed to fetch %q: %v", task.Path, err)
			builder.AddError(fmt.Sprintf("Failed to fetch %s: %v", task.Path, err))
			return
		}
		defer cleanup()
		dir = checkout
	}

	analyzers := s.selector.ForDirectory(dir, task.Environments, s.cache)
	if len(analyzers) == 0 {
		logger.Warnf("No applicable analyzers for %s, skipping", task.Path)
		return
	}

	sink := &labeledSink{inner: builder, label: task.Path}
	for _, a := range analyzers {
		if err := a.Analyze(ctx, dir, sink); err != nil {
			logger.Errorf("Error analyzing %s dependencies in %s: %v", a.Name(), task.Path, err)
			builder.AddFailure(a.Name(), task.Path, err)
		}
	}
}

// labeledSink rewrites section directories to the configured task path so
// remote checkouts do not leak temp paths into the report.
type labeledSink struct {
	inner domain.ReportSink
	label string
}

func (l *labeledSink) AddSection(section domain.Section) {
	section.Directory = l.label
	l.inner.AddSection(section)
}

// writeDocument writes the rendered report, creating parent directories as
// needed. An unwritable destination is fatal.
func writeDocument(path, doc string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write report %q: %w", path, err)
	}
	return nil
}
