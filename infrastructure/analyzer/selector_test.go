package analyzer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinlietz93/Plutonium/domain"
	"github.com/justinlietz93/Plutonium/infrastructure/analyzer"
	"github.com/justinlietz93/Plutonium/infrastructure/cache"
)

func TestSelector(t *testing.T) {
	t.Parallel()

	t.Run("should select only environments whose manifest exists", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"dependencies": {}}`), 0o644))
		selector := analyzer.NewSelector(analyzer.DefaultRegistry())

		// when
		analyzers := selector.ForDirectory(dir, []string{domain.EnvNodeJS, domain.EnvPython}, cache.NewMemory())

		// then
		require.Len(t, analyzers, 1)
		assert.Equal(t, domain.EnvNodeJS, analyzers[0].Name())
	})

	t.Run("should return no analyzers for an empty directory", func(t *testing.T) {
		t.Parallel()

		// given
		selector := analyzer.NewSelector(analyzer.DefaultRegistry())

		// when
		analyzers := selector.ForDirectory(t.TempDir(), domain.SupportedEnvironments, cache.NewMemory())

		// then
		assert.Empty(t, analyzers)
	})

	t.Run("should preserve the requested environment order", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/demo\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "requirements.txt"), []byte("requests==2.31.0\n"), 0o644))
		selector := analyzer.NewSelector(analyzer.DefaultRegistry())

		// when
		analyzers := selector.ForDirectory(dir, []string{domain.EnvGo, domain.EnvPython}, cache.NewMemory())

		// then
		require.Len(t, analyzers, 2)
		assert.Equal(t, domain.EnvGo, analyzers[0].Name())
		assert.Equal(t, domain.EnvPython, analyzers[1].Name())
	})

	t.Run("should know every supported environment", func(t *testing.T) {
		t.Parallel()

		// given
		reg := analyzer.DefaultRegistry()

		// when
		names := reg.Names()

		// then
		assert.ElementsMatch(t, domain.SupportedEnvironments, names)
	})
}
