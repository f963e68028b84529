package registry

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"

	"github.com/justinlietz93/Plutonium/domain"
)

const defaultGoProxyBaseURL = "https://proxy.golang.org"

// GoProxy resolves latest module versions from the Go module proxy.
type GoProxy struct {
	BaseURL string // Overridable for tests
	client  *http.Client
}

// NewGoProxy creates a Go proxy registry client.
func NewGoProxy() *GoProxy {
	return &GoProxy{BaseURL: defaultGoProxyBaseURL, client: newHTTPClient()}
}

// LatestVersion returns the highest valid semver tag from the module's
// @v/list endpoint. The list is unordered, so versions are ranked rather
// than taken positionally. An empty list means the proxy knows the module
// but it has no tagged releases, which callers cannot compare against.
func (g *GoProxy) LatestVersion(ctx context.Context, pkg string) (string, error) {
	escaped, err := module.EscapePath(pkg)
	if err != nil {
		return "", &domain.NetworkError{Package: pkg, Err: fmt.Errorf("invalid module path: %w", err)}
	}

	endpoint := fmt.Sprintf("%s/%s/@v/list", g.BaseURL, escaped)
	logger.Debugf("[Go] Fetching version list for %s from %s", pkg, endpoint)

	body, fetchErr := fetch(ctx, g.client, endpoint)
	if fetchErr != nil {
		return "", wrapLookupErr(pkg, fetchErr)
	}

	latest := ""
	for _, line := range strings.Split(strings.TrimSpace(string(body)), "\n") {
		version := strings.TrimSpace(line)
		if !semver.IsValid(version) {
			continue
		}
		if latest == "" || semver.Compare(version, latest) > 0 {
			latest = version
		}
	}

	if latest == "" {
		return "", fmt.Errorf("%s: %w", pkg, domain.ErrPackageNotFound)
	}
	return latest, nil
}
