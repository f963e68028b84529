package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	logger "github.com/sirupsen/logrus"
)

const defaultPyPIBaseURL = "https://pypi.org"

// PyPI resolves latest versions from the Python package index.
type PyPI struct {
	BaseURL string // Overridable for tests
	client  *http.Client
}

// NewPyPI creates a PyPI registry client.
func NewPyPI() *PyPI {
	return &PyPI{BaseURL: defaultPyPIBaseURL, client: newHTTPClient()}
}

// LatestVersion returns the info.version field of the package's JSON document.
func (p *PyPI) LatestVersion(ctx context.Context, pkg string) (string, error) {
	endpoint := fmt.Sprintf("%s/pypi/%s/json", p.BaseURL, url.PathEscape(pkg))
	logger.Debugf("[Python] Fetching latest version for %s from %s", pkg, endpoint)

	body, err := fetch(ctx, p.client, endpoint)
	if err != nil {
		return "", wrapLookupErr(pkg, err)
	}

	var doc struct {
		Info struct {
			Version string `json:"version"`
		} `json:"info"`
	}
	if unmarshalErr := json.Unmarshal(body, &doc); unmarshalErr != nil {
		return "", wrapLookupErr(pkg, fmt.Errorf("unusable registry response: %w", unmarshalErr))
	}
	if doc.Info.Version == "" {
		return "", wrapLookupErr(pkg, errors.New("registry response missing info.version"))
	}

	return doc.Info.Version, nil
}
