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

const defaultNPMBaseURL = "https://registry.npmjs.org"

// NPM resolves latest versions from the npm registry.
type NPM struct {
	BaseURL string // Overridable for tests
	client  *http.Client
}

// NewNPM creates an npm registry client.
func NewNPM() *NPM {
	return &NPM{BaseURL: defaultNPMBaseURL, client: newHTTPClient()}
}

// LatestVersion returns the dist-tags.latest version of pkg. Scoped package
// names (@scope/name) are path-escaped for the registry URL.
func (n *NPM) LatestVersion(ctx context.Context, pkg string) (string, error) {
	endpoint := fmt.Sprintf("%s/%s", n.BaseURL, url.PathEscape(pkg))
	logger.Debugf("[Node.js] Fetching latest version for %s from %s", pkg, endpoint)

	body, err := fetch(ctx, n.client, endpoint)
	if err != nil {
		return "", wrapLookupErr(pkg, err)
	}

	var doc struct {
		DistTags struct {
			Latest string `json:"latest"`
		} `json:"dist-tags"`
	}
	if unmarshalErr := json.Unmarshal(body, &doc); unmarshalErr != nil {
		return "", wrapLookupErr(pkg, fmt.Errorf("unusable registry response: %w", unmarshalErr))
	}
	if doc.DistTags.Latest == "" {
		return "", wrapLookupErr(pkg, errors.New("registry response missing dist-tags.latest"))
	}

	return doc.DistTags.Latest, nil
}
