package modrinth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/modwarden/modwarden/module/mods/adapter"
	httputil "github.com/modwarden/modwarden/module/mods/http"
	"github.com/modwarden/modwarden/module/mods/types"
	cerrors "github.com/modwarden/modwarden/util/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sodiumSHA1 = "1f3c8ec0b1bb3c4a1f2d2a1ca7d9f1a0b34e2f10"

func newTestAdapter(t *testing.T, handler http.HandlerFunc) *Adapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(adapter.Config{
		Endpoint:  srv.URL + "/",
		UserAgent: "modwarden/test",
		HTTP: httputil.Options{
			RetryMax:     1,
			RetryWaitMin: time.Millisecond,
			RetryWaitMax: time.Millisecond,
			Timeout:      5 * time.Second,
		},
	})
}

func TestIdentify(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/version_file/"+sodiumSHA1, r.URL.Path)
		assert.Equal(t, "sha1", r.URL.Query().Get("algorithm"))
		assert.Equal(t, "modwarden/test", r.Header.Get("User-Agent"))
		w.Write([]byte(`{"id":"yaoBL9D9","project_id":"AANobbMI","version_number":"mc1.20.1-0.5.3"}`))
	})

	id, err := a.Identify(context.Background(), types.Artifact{Path: "sodium.jar", SHA1: sodiumSHA1})
	require.NoError(t, err)
	assert.Equal(t, types.ModrinthProject("AANobbMI"), id)
}

func TestIdentify_NotFound(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	id, err := a.Identify(context.Background(), types.Artifact{Path: "custom.jar", SHA1: sodiumSHA1})
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestIdentify_ServiceError(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := a.Identify(context.Background(), types.Artifact{Path: "sodium.jar", SHA1: sodiumSHA1})
	require.Error(t, err)

	var re *cerrors.RegistryError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "modrinth", re.Registry)
	assert.Equal(t, http.StatusInternalServerError, re.StatusCode)
}

func TestProject(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/project/sodium", r.URL.Path)
		w.Write([]byte(`{"id":"AANobbMI","slug":"sodium","title":"Sodium","project_type":"mod"}`))
	})

	info, err := a.Project(context.Background(), "sodium")
	require.NoError(t, err)
	assert.Equal(t, types.ProjectInfo{
		Identity: types.ModrinthProject("AANobbMI"),
		Name:     "Sodium",
		Slug:     "sodium",
	}, info)
}

func TestProject_NotFound(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := a.Project(context.Background(), "gone")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cerrors.ErrNotFound))
	assert.Contains(t, err.Error(), "modrinth get project for gone")
}
