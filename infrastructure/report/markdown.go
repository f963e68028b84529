// Package report renders the final Markdown document from the sections the
// analyzers produce.
package report

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/justinlietz93/Plutonium/domain"
)

// Builder accumulates report sections and failure notices and renders the
// complete Markdown document. Sections appear in the order they are added,
// which the service keeps deterministic (directory order as configured,
// environment order as configured), so reports are reproducible. Safe for
// concurrent use.
type Builder struct {
	// GeneratedAt is stamped into the header; overridable in tests.
	GeneratedAt time.Time

	mu    sync.Mutex
	parts []string
}

// NewBuilder creates a report builder stamped with the current time.
func NewBuilder() *Builder {
	return &Builder{GeneratedAt: time.Now()}
}

// AddSection appends the comparison table for one (directory, environment)
// pair. Implements domain.ReportSink.
func (b *Builder) AddSection(section domain.Section) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s Dependencies in %s\n\n", section.Environment, section.Directory)

	if len(section.Rows) == 0 {
		sb.WriteString("No dependencies found.\n\n")
	} else {
		sb.WriteString("| Package | Current Version | Latest Version |\n")
		sb.WriteString("|---------|----------------|----------------|\n")
		for _, row := range section.Rows {
			latest := row.Latest
			if glyph := row.Status.Glyph(); glyph != "" {
				latest += " " + glyph
			}
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", row.Name, row.Current, latest)
		}
		sb.WriteString("\n")
	}

	b.append(sb.String())
}

// AddFailure appends a failure notice in place of a table for one
// (directory, environment) pair. The document stays well-formed; other
// sections are unaffected.
func (b *Builder) AddFailure(environment, dir string, err error) {
	b.append(fmt.Sprintf(
		"## %s Dependencies in %s\n\nAnalysis failed: %v\n\n",
		environment, dir, err,
	))
}

// AddError appends a general error notice not tied to one environment,
// e.g. an unreachable directory source.
func (b *Builder) AddError(message string) {
	b.append(fmt.Sprintf("## Error\n\n%s\n\n", message))
}

// String renders the complete document: header, sections in insertion
// order, status legend, and the completion marker.
func (b *Builder) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	var sb strings.Builder
	sb.WriteString("# Dependency Analysis Report\n\n")
	fmt.Fprintf(&sb, "Generated on: %s\n\n", b.GeneratedAt.Format("2006-01-02 15:04:05"))
	sb.WriteString("This report shows the current and latest versions of dependencies across projects.\n\n")
	sb.WriteString("---\n\n")

	for _, part := range b.parts {
		sb.WriteString(part)
	}

	sb.WriteString("## Report Summary\n\n")
	sb.WriteString("- ✅ = Up to date\n")
	sb.WriteString("- ⚠️ = Update available\n\n")
	sb.WriteString("---\n\n")
	sb.WriteString("Report complete.\n")
	return sb.String()
}

func (b *Builder) append(part string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.parts = append(b.parts, part)
}
