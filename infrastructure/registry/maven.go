package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/justinlietz93/Plutonium/domain"
)

const defaultMavenBaseURL = "https://search.maven.org"

// Maven resolves latest versions from the Maven Central search API.
// Package names use the "groupId:artifactId" coordinate form.
type Maven struct {
	BaseURL string // Overridable for tests
	client  *http.Client
}

// NewMaven creates a Maven Central registry client.
func NewMaven() *Maven {
	return &Maven{BaseURL: defaultMavenBaseURL, client: newHTTPClient()}
}

// LatestVersion returns the newest version of the artifact. The search API
// never answers 404 for unknown coordinates; an empty docs list is the
// affirmative not-found signal.
func (m *Maven) LatestVersion(ctx context.Context, pkg string) (string, error) {
	groupID, artifactID, ok := strings.Cut(pkg, ":")
	if !ok || groupID == "" || artifactID == "" {
		return "", &domain.NetworkError{
			Package: pkg,
			Err:     fmt.Errorf("invalid Maven coordinate %q, expected groupId:artifactId", pkg),
		}
	}

	query := url.Values{}
	query.Set("q", fmt.Sprintf("g:%s AND a:%s", groupID, artifactID))
	query.Set("rows", "1")
	query.Set("wt", "json")
	endpoint := fmt.Sprintf("%s/solrsearch/select?%s", m.BaseURL, query.Encode())
	logger.Debugf("[Maven] Fetching latest version for %s from %s", pkg, endpoint)

	body, err := fetch(ctx, m.client, endpoint)
	if err != nil {
		return "", wrapLookupErr(pkg, err)
	}

	var doc struct {
		Response struct {
			Docs []struct {
				V string `json:"v"`
			} `json:"docs"`
		} `json:"response"`
	}
	if unmarshalErr := json.Unmarshal(body, &doc); unmarshalErr != nil {
		return "", wrapLookupErr(pkg, fmt.Errorf("unusable registry response: %w", unmarshalErr))
	}
	if len(doc.Response.Docs) == 0 || doc.Response.Docs[0].V == "" {
		return "", fmt.Errorf("%s: %w", pkg, domain.ErrPackageNotFound)
	}

	return doc.Response.Docs[0].V, nil
}
