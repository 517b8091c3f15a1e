package curseforge

import (
	"context"
	"fmt"
	"strconv"

	"github.com/modwarden/modwarden/module/mods/adapter"
	"github.com/modwarden/modwarden/module/mods/types"
	cerrors "github.com/modwarden/modwarden/util/common/errors"

	"github.com/rs/zerolog/log"
)

type Adapter struct {
	client *client
}

// New creates a CurseForge adapter. The CurseForge API rejects requests
// without an API key.
func New(cfg adapter.Config) *Adapter {
	return &Adapter{
		client: newClient(cfg),
	}
}

func (a *Adapter) Platform() types.Platform { return types.CurseForge }

// Identify looks the artifact up by its murmur2 fingerprint. Only exact
// matches count.
func (a *Adapter) Identify(ctx context.Context, artifact types.Artifact) (types.Identity, error) {
	fp := strconv.FormatUint(uint64(artifact.Fingerprint), 10)

	matches, err := a.client.getFingerprintMatches(ctx, []uint32{artifact.Fingerprint})
	if err != nil {
		return nil, adapter.RegistryError(types.CurseForge, "match fingerprints", fp, err)
	}
	if len(matches.ExactMatches) == 0 {
		log.Debug().Str("path", artifact.Path).Str("fingerprint", fp).Msg("Unknown to CurseForge")
		return nil, nil
	}

	match := matches.ExactMatches[0]
	id := match.ID
	if id == 0 {
		id = match.File.ModID
	}
	if id <= 0 {
		return nil, cerrors.NewRegistryError(string(types.CurseForge), "match fingerprints", fp, 0,
			fmt.Errorf("exact match without a mod id: %w", cerrors.ErrMalformedResponse))
	}
	return types.CurseForgeProject(id), nil
}

// Project fetches the canonical metadata of a mod.
func (a *Adapter) Project(ctx context.Context, id int32) (types.ProjectInfo, error) {
	mod, err := a.client.getMod(ctx, id)
	if err != nil {
		return types.ProjectInfo{}, adapter.RegistryError(types.CurseForge, "get mod", strconv.Itoa(int(id)), err)
	}
	return types.ProjectInfo{
		Identity: types.CurseForgeProject(mod.ID),
		Name:     mod.Name,
		Slug:     mod.Slug,
	}, nil
}
