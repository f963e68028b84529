package registry_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinlietz93/Plutonium/domain"
	"github.com/justinlietz93/Plutonium/infrastructure/registry"
)

func TestNPM(t *testing.T) {
	t.Parallel()

	t.Run("should return the dist-tags latest version", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/lodash", r.URL.Path)
			_, _ = w.Write([]byte(`{"dist-tags": {"latest": "4.17.21"}}`))
		}))
		defer server.Close()

		client := registry.NewNPM()
		client.BaseURL = server.URL

		// when
		version, err := client.LatestVersion(context.Background(), "lodash")

		// then
		require.NoError(t, err)
		assert.Equal(t, "4.17.21", version)
	})

	t.Run("should path-escape scoped package names", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/@types%2Fnode", r.URL.RawPath)
			_, _ = w.Write([]byte(`{"dist-tags": {"latest": "22.5.0"}}`))
		}))
		defer server.Close()

		client := registry.NewNPM()
		client.BaseURL = server.URL

		// when
		version, err := client.LatestVersion(context.Background(), "@types/node")

		// then
		require.NoError(t, err)
		assert.Equal(t, "22.5.0", version)
	})

	t.Run("should report not-found distinctly on a 404", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := registry.NewNPM()
		client.BaseURL = server.URL

		// when
		_, err := client.LatestVersion(context.Background(), "no-such-package")

		// then
		require.ErrorIs(t, err, domain.ErrPackageNotFound)
		var netErr *domain.NetworkError
		assert.NotErrorAs(t, err, &netErr)
	})

	t.Run("should fail with a network error on a server error", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := registry.NewNPM()
		client.BaseURL = server.URL

		// when
		_, err := client.LatestVersion(context.Background(), "lodash")

		// then
		var netErr *domain.NetworkError
		require.ErrorAs(t, err, &netErr)
		assert.Equal(t, "lodash", netErr.Package)
	})

	t.Run("should fail with a network error on an unusable body", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := registry.NewNPM()
		client.BaseURL = server.URL

		// when
		_, err := client.LatestVersion(context.Background(), "lodash")

		// then
		var netErr *domain.NetworkError
		require.ErrorAs(t, err, &netErr)
	})
}

func TestPyPI(t *testing.T) {
	t.Parallel()

	t.Run("should return the info version", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/pypi/requests/json", r.URL.Path)
			_, _ = w.Write([]byte(`{"info": {"version": "2.31.0"}}`))
		}))
		defer server.Close()

		client := registry.NewPyPI()
		client.BaseURL = server.URL

		// when
		version, err := client.LatestVersion(context.Background(), "requests")

		// then
		require.NoError(t, err)
		assert.Equal(t, "2.31.0", version)
	})

	t.Run("should report not-found on a 404", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := registry.NewPyPI()
		client.BaseURL = server.URL

		// when
		_, err := client.LatestVersion(context.Background(), "definitely-not-on-pypi")

		// then
		assert.ErrorIs(t, err, domain.ErrPackageNotFound)
	})
}

func TestRubyGems(t *testing.T) {
	t.Parallel()

	t.Run("should return the gem version", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/gems/rails.json", r.URL.Path)
			_, _ = w.Write([]byte(`{"name": "rails", "version": "7.1.3"}`))
		}))
		defer server.Close()

		client := registry.NewRubyGems()
		client.BaseURL = server.URL

		// when
		version, err := client.LatestVersion(context.Background(), "rails")

		// then
		require.NoError(t, err)
		assert.Equal(t, "7.1.3", version)
	})
}

func TestMaven(t *testing.T) {
	t.Parallel()

	t.Run("should query by group and artifact and return the first doc", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/solrsearch/select", r.URL.Path)
			assert.Equal(t, `g:org.springframework AND a:spring-core`, r.URL.Query().Get("q"))
			_, _ = w.Write([]byte(`{"response": {"docs": [{"v": "6.1.3"}]}}`))
		}))
		defer server.Close()

		client := registry.NewMaven()
		client.BaseURL = server.URL

		// when
		version, err := client.LatestVersion(context.Background(), "org.springframework:spring-core")

		// then
		require.NoError(t, err)
		assert.Equal(t, "6.1.3", version)
	})

	t.Run("should report not-found when the docs list is empty", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"response": {"docs": []}}`))
		}))
		defer server.Close()

		client := registry.NewMaven()
		client.BaseURL = server.URL

		// when
		_, err := client.LatestVersion(context.Background(), "com.example:ghost")

		// then
		assert.ErrorIs(t, err, domain.ErrPackageNotFound)
	})

	t.Run("should reject coordinates without a groupId:artifactId form", func(t *testing.T) {
		t.Parallel()

		// given
		client := registry.NewMaven()

		// when
		_, err := client.LatestVersion(context.Background(), "spring-core")

		// then
		var netErr *domain.NetworkError
		require.ErrorAs(t, err, &netErr)
	})
}

func TestGoProxy(t *testing.T) {
	t.Parallel()

	t.Run("should return the highest semver from an unordered list", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/github.com/gorilla/mux/@v/list", r.URL.Path)
			_, _ = w.Write([]byte("v1.8.1\nv1.7.0\nv1.8.0\n"))
		}))
		defer server.Close()

		client := registry.NewGoProxy()
		client.BaseURL = server.URL

		// when
		version, err := client.LatestVersion(context.Background(), "github.com/gorilla/mux")

		// then
		require.NoError(t, err)
		assert.Equal(t, "v1.8.1", version)
	})

	t.Run("should escape module paths with upper-case letters", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/github.com/!burnt!sushi/toml/@v/list", r.URL.Path)
			_, _ = w.Write([]byte("v1.5.0\n"))
		}))
		defer server.Close()

		client := registry.NewGoProxy()
		client.BaseURL = server.URL

		// when
		version, err := client.LatestVersion(context.Background(), "github.com/BurntSushi/toml")

		// then
		require.NoError(t, err)
		assert.Equal(t, "v1.5.0", version)
	})

	t.Run("should report not-found on the proxy's 410 answer", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusGone)
		}))
		defer server.Close()

		client := registry.NewGoProxy()
		client.BaseURL = server.URL

		// when
		_, err := client.LatestVersion(context.Background(), "example.com/ghost")

		// then
		assert.ErrorIs(t, err, domain.ErrPackageNotFound)
	})

	t.Run("should report not-found when the module has no tagged releases", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("\n"))
		}))
		defer server.Close()

		client := registry.NewGoProxy()
		client.BaseURL = server.URL

		// when
		_, err := client.LatestVersion(context.Background(), "example.com/untagged")

		// then
		assert.ErrorIs(t, err, domain.ErrPackageNotFound)
	})
}
