package registry

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/justinlietz93/Plutonium/domain"
)

// Cached decorates a registry client with the run-scoped version cache:
// a hit returns immediately, a miss performs exactly one outbound lookup,
// and the cache is populated only on success.
type Cached struct {
	environment string
	cache       domain.VersionCache
	client      domain.RegistryClient
}

// NewCached wraps client with cache-first lookups under the given
// environment identifier.
func NewCached(environment string, cache domain.VersionCache, client domain.RegistryClient) *Cached {
	return &Cached{environment: environment, cache: cache, client: client}
}

// LatestVersion resolves pkg through the cache, falling back to the wrapped
// client on a miss.
func (c *Cached) LatestVersion(ctx context.Context, pkg string) (string, error) {
	if version, ok := c.cache.Get(c.environment, pkg); ok {
		logger.Debugf("[%s] Cache hit for %s: %s", c.environment, pkg, version)
		return version, nil
	}

	version, err := c.client.LatestVersion(ctx, pkg)
	if err != nil {
		return "", err
	}

	c.cache.Set(c.environment, pkg, version)
	return version, nil
}
