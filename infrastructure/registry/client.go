// Package registry implements one latest-version client per supported
// ecosystem, plus the shared HTTP plumbing and the cache-first decorator
// every client is wrapped in.
package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/justinlietz93/Plutonium/domain"
)

const (
	defaultTimeout = 10 * time.Second
	maxRetries     = 2
)

// newHTTPClient builds the shared outbound HTTP client: bounded retries for
// transient failures and a per-call timeout so one slow registry cannot
// stall a run.
func newHTTPClient() *http.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = maxRetries
	rc.Logger = nil
	rc.HTTPClient.Timeout = defaultTimeout

	client := rc.StandardClient()
	client.Timeout = defaultTimeout
	return client
}

// fetch performs a single GET and returns the response body. A 404 (or the
// Go proxy's 410) maps to domain.ErrPackageNotFound; transport failures and
// other non-2xx statuses are returned as plain errors for the caller to wrap
// in a *domain.NetworkError.
func fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return nil, domain.ErrPackageNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("unexpected status %s from %s", resp.Status, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// wrapLookupErr converts a fetch error into the lookup error contract:
// not-found passes through untouched, everything else becomes a
// *domain.NetworkError for the package.
func wrapLookupErr(pkg string, err error) error {
	if errors.Is(err, domain.ErrPackageNotFound) {
		return fmt.Errorf("%s: %w", pkg, domain.ErrPackageNotFound)
	}
	return &domain.NetworkError{Package: pkg, Err: err}
}
