// Package resolver identifies local mod files on the remote registries.
package resolver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/modwarden/modwarden/module/mods/adapter"
	"github.com/modwarden/modwarden/module/mods/types"
	"github.com/modwarden/modwarden/util/common"
	cerrors "github.com/modwarden/modwarden/util/common/errors"

	"github.com/rs/zerolog/log"
)

const cacheSize = 256

// ErrNotFound is returned when no registry recognizes an artifact.
var ErrNotFound = errors.New("artifact not found on any platform")

// Resolver maps a local artifact to its candidate registry identities.
// A successful result is never empty.
type Resolver interface {
	Resolve(ctx context.Context, path string) ([]types.Identity, error)
}

// Service asks each identifier in turn and collects what they recognise.
// Candidates are returned in identifier order.
type Service struct {
	identifiers []adapter.Identifier
	cache       *lru.Cache[string, []types.Identity]
}

// NewService creates a Service over the given identifiers.
func NewService(identifiers ...adapter.Identifier) *Service {
	cache, _ := lru.New[string, []types.Identity](cacheSize)
	return &Service{
		identifiers: identifiers,
		cache:       cache,
	}
}

// Resolve reads the file at path and identifies it. It returns ErrNotFound
// when no identifier knows the content; any other error means the file could
// not be read or a registry could not be asked.
func (s *Service) Resolve(ctx context.Context, path string) ([]types.Identity, error) {
	artifact, err := ReadArtifact(path)
	if err != nil {
		return nil, err
	}

	logger := log.With().
		Str("path", path).
		Str("size", common.GetSize(artifact.Size)).
		Str("sha1", artifact.SHA1).
		Logger()

	candidates, ok := s.cache.Get(artifact.SHA1)
	if ok {
		logger.Debug().Int("candidates", len(candidates)).Msg("Resolved from cache")
	} else {
		candidates, err = s.identify(ctx, artifact)
		if err != nil {
			return nil, err
		}
		s.cache.Add(artifact.SHA1, candidates)
	}

	if len(candidates) == 0 {
		return nil, ErrNotFound
	}
	logger.Debug().Stringers("candidates", identityStringers(candidates)).Msg("Resolved artifact")
	return candidates, nil
}

func (s *Service) identify(ctx context.Context, artifact types.Artifact) ([]types.Identity, error) {
	var candidates []types.Identity
	for _, identifier := range s.identifiers {
		id, err := identifier.Identify(ctx, artifact)
		if err != nil {
			return nil, fmt.Errorf("identify %s on %s: %w", artifact.Path, identifier.Platform().DisplayName(), err)
		}
		if id != nil {
			candidates = append(candidates, id)
		}
	}
	return candidates, nil
}

// ReadArtifact reads a file and computes the hashes the registries use.
func ReadArtifact(path string) (types.Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Artifact{}, cerrors.NewFileError(path, "read", err)
	}

	sum := sha1.Sum(data)
	return types.Artifact{
		Path:        path,
		Size:        int64(len(data)),
		SHA1:        hex.EncodeToString(sum[:]),
		Fingerprint: Fingerprint(data),
	}, nil
}

func identityStringers(ids []types.Identity) []fmt.Stringer {
	out := make([]fmt.Stringer, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}
