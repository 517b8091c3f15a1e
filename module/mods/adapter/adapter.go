// Package adapter holds what the per-registry adapters share.
package adapter

import (
	"context"
	"errors"

	httputil "github.com/modwarden/modwarden/module/mods/http"
	"github.com/modwarden/modwarden/module/mods/types"
	cerrors "github.com/modwarden/modwarden/util/common/errors"
)

// Config describes how to reach one registry.
type Config struct {
	Endpoint  string
	APIKey    string
	UserAgent string
	HTTP      httputil.Options
}

// Identifier recognises artifacts by content on one registry. Identify
// returns a nil Identity and a nil error when the registry does not know the
// artifact.
type Identifier interface {
	Platform() types.Platform
	Identify(ctx context.Context, artifact types.Artifact) (types.Identity, error)
}

// RegistryError converts an HTTP client error into a RegistryError for the
// given registry and operation.
func RegistryError(registry types.Platform, op, id string, err error) error {
	var se *httputil.StatusError
	if errors.As(err, &se) {
		return cerrors.NewRegistryError(string(registry), op, id, se.StatusCode, nil)
	}
	return cerrors.NewRegistryError(string(registry), op, id, 0, err)
}

// IsNotFound reports whether err is a registry "not found" answer.
func IsNotFound(err error) bool {
	var se *httputil.StatusError
	return errors.As(err, &se) && se.StatusCode == 404
}
