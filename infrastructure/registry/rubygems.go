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

const defaultRubyGemsBaseURL = "https://rubygems.org"

// RubyGems resolves latest versions from rubygems.org.
type RubyGems struct {
	BaseURL string // Overridable for tests
	client  *http.Client
}

// NewRubyGems creates a RubyGems registry client.
func NewRubyGems() *RubyGems {
	return &RubyGems{BaseURL: defaultRubyGemsBaseURL, client: newHTTPClient()}
}

// LatestVersion returns the version field of the gem's JSON document.
func (r *RubyGems) LatestVersion(ctx context.Context, pkg string) (string, error) {
	endpoint := fmt.Sprintf("%s/api/v1/gems/%s.json", r.BaseURL, url.PathEscape(pkg))
	logger.Debugf("[Ruby] Fetching latest version for %s from %s", pkg, endpoint)

	body, err := fetch(ctx, r.client, endpoint)
	if err != nil {
		return "", wrapLookupErr(pkg, err)
	}

	var doc struct {
		Version string `json:"version"`
	}
	if unmarshalErr := json.Unmarshal(body, &doc); unmarshalErr != nil {
		return "", wrapLookupErr(pkg, fmt.Errorf("unusable registry response: %w", unmarshalErr))
	}
	if doc.Version == "" {
		return "", wrapLookupErr(pkg, errors.New("registry response missing version"))
	}

	return doc.Version, nil
}
