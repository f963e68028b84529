package analyzer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinlietz93/Plutonium/domain"
	"github.com/justinlietz93/Plutonium/infrastructure/analyzer"
	testdoubles "github.com/justinlietz93/Plutonium/test"
)

func TestAnalyze(t *testing.T) {
	t.Parallel()

	t.Run("should emit one section with rows sorted by package name", func(t *testing.T) {
		t.Parallel()

		// given
		parser := &testdoubles.StubParser{Deps: []domain.Dependency{
			{Name: "zod", Declared: "3.23.8", Raw: "3.23.8"},
			{Name: "lodash", Declared: "4.17.15", Raw: "4.17.15"},
		}}
		client := &testdoubles.SpyRegistryClient{Versions: map[string]string{
			"zod":    "3.23.8",
			"lodash": "4.17.21",
		}}
		a := analyzer.New(domain.EnvNodeJS, "package.json", parser, client)
		sink := &testdoubles.SinkRecorder{}

		// when
		err := a.Analyze(context.Background(), "/proj", sink)

		// then
		require.NoError(t, err)
		require.Len(t, sink.Sections, 1)

		section := sink.Sections[0]
		assert.Equal(t, domain.EnvNodeJS, section.Environment)
		assert.Equal(t, "/proj", section.Directory)
		require.Len(t, section.Rows, 2)

		assert.Equal(t, domain.Row{Name: "lodash", Current: "4.17.15", Latest: "4.17.21", Status: domain.StatusUpdateAvailable}, section.Rows[0])
		assert.Equal(t, domain.Row{Name: "zod", Current: "3.23.8", Latest: "3.23.8", Status: domain.StatusUpToDate}, section.Rows[1])
	})

	t.Run("should degrade a timed-out lookup to an unknown row without failing the section", func(t *testing.T) {
		t.Parallel()

		// given
		parser := &testdoubles.StubParser{Deps: []domain.Dependency{
			{Name: "leftpad", Declared: "1.3.0", Raw: "1.3.0"},
		}}
		client := &testdoubles.SpyRegistryClient{
			Err: &domain.NetworkError{Package: "leftpad", Err: context.DeadlineExceeded},
		}
		a := analyzer.New(domain.EnvNodeJS, "package.json", parser, client)
		sink := &testdoubles.SinkRecorder{}

		// when
		err := a.Analyze(context.Background(), "/proj", sink)

		// then
		require.NoError(t, err)
		require.Len(t, sink.Sections, 1)
		require.Len(t, sink.Sections[0].Rows, 1)
		assert.Equal(t, domain.Row{Name: "leftpad", Current: "1.3.0", Latest: "unknown", Status: domain.StatusUnknown}, sink.Sections[0].Rows[0])
	})

	t.Run("should degrade a not-found package the same way", func(t *testing.T) {
		t.Parallel()

		// given
		parser := &testdoubles.StubParser{Deps: []domain.Dependency{
			{Name: "ghost", Declared: "1.0.0", Raw: "1.0.0"},
			{Name: "lodash", Declared: "4.17.21", Raw: "4.17.21"},
		}}
		client := &testdoubles.SpyRegistryClient{
			Versions: map[string]string{"lodash": "4.17.21"},
			NotFound: map[string]bool{"ghost": true},
		}
		a := analyzer.New(domain.EnvNodeJS, "package.json", parser, client)
		sink := &testdoubles.SinkRecorder{}

		// when
		err := a.Analyze(context.Background(), "/proj", sink)

		// then
		require.NoError(t, err)
		rows := sink.Sections[0].Rows
		require.Len(t, rows, 2)
		assert.Equal(t, "unknown", rows[0].Latest)
		assert.Equal(t, domain.StatusUnknown, rows[0].Status)
		assert.Equal(t, domain.StatusUpToDate, rows[1].Status)
	})

	t.Run("should return the parsing error to the caller without emitting a section", func(t *testing.T) {
		t.Parallel()

		// given
		parseErr := &domain.ParsingError{File: "/proj/pom.xml", Err: errors.New("invalid XML")}
		parser := &testdoubles.StubParser{Err: parseErr}
		a := analyzer.New(domain.EnvMaven, "pom.xml", parser, &testdoubles.SpyRegistryClient{})
		sink := &testdoubles.SinkRecorder{}

		// when
		err := a.Analyze(context.Background(), "/proj", sink)

		// then
		var got *domain.ParsingError
		require.ErrorAs(t, err, &got)
		assert.Empty(t, sink.Sections)
	})

	t.Run("should emit an empty section when the manifest declares nothing", func(t *testing.T) {
		t.Parallel()

		// given
		a := analyzer.New(domain.EnvPython, "requirements.txt", &testdoubles.StubParser{}, &testdoubles.SpyRegistryClient{})
		sink := &testdoubles.SinkRecorder{}

		// when
		err := a.Analyze(context.Background(), "/proj", sink)

		// then
		require.NoError(t, err)
		require.Len(t, sink.Sections, 1)
		assert.Empty(t, sink.Sections[0].Rows)
	})
}
