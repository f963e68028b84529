package cmd

import (
	logger "github.com/sirupsen/logrus"
	"go.uber.org/dig"

	"github.com/justinlietz93/Plutonium/application"
	"github.com/justinlietz93/Plutonium/config"
	"github.com/justinlietz93/Plutonium/infrastructure/analyzer"
	"github.com/justinlietz93/Plutonium/infrastructure/cache"
)

// buildContainer wires configuration, cache, analyzers and the report
// service bottom-up into a DIG container.
func buildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []any{
		loadConfig,
		loadCache,
		analyzer.DefaultRegistry,
		analyzer.NewSelector,
		application.NewReportService,
	}
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	return container, nil
}

// loadConfig resolves the config file from the --config flag or the default
// search locations.
func loadConfig() (*config.Config, error) {
	path := configFile
	if path == "" {
		found, err := config.FindConfigFile()
		if err != nil {
			return nil, err
		}
		path = found
	}

	logger.Debugf("Using config file: %s", path)
	return config.Load(path)
}

// loadCache seeds the run-scoped version cache from the configured snapshot.
func loadCache(cfg *config.Config) *cache.Memory {
	snapshot := cfg.SnapshotPath()
	if snapshot == "" {
		return cache.NewMemory()
	}
	return cache.Load(snapshot)
}
