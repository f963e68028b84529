package cmd //nolint:testpackage // tests unexported command state

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinlietz93/Plutonium/domain"
)

func TestEnvironmentsCommand(t *testing.T) {
	t.Parallel()

	t.Run("should list every supported environment with its manifest file", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		environmentsCmd.SetOut(&out)

		// when
		environmentsCmd.Run(environmentsCmd, nil)

		// then
		for _, env := range domain.SupportedEnvironments {
			assert.Contains(t, out.String(), env)
			assert.Contains(t, out.String(), domain.ManifestFiles[env])
		}
	})
}

func TestLoadConfig(t *testing.T) {
	//nolint:paralleltest // mutates the package-level configFile flag variable

	t.Run("should fail when no config file can be found", func(t *testing.T) {
		// given
		configFile = ""
		t.Setenv("HOME", t.TempDir())
		t.Chdir(t.TempDir())

		// when
		_, err := loadConfig()

		// then
		require.Error(t, err)
	})
}
