package modrinth

import (
	"context"
	"fmt"

	"github.com/modwarden/modwarden/module/mods/adapter"
	"github.com/modwarden/modwarden/module/mods/types"

	"github.com/rs/zerolog/log"
)

type Adapter struct {
	client *client
}

// New creates a Modrinth adapter.
func New(cfg adapter.Config) *Adapter {
	return &Adapter{
		client: newClient(cfg),
	}
}

func (a *Adapter) Platform() types.Platform { return types.Modrinth }

// Identify looks the artifact up by its SHA-1.
func (a *Adapter) Identify(ctx context.Context, artifact types.Artifact) (types.Identity, error) {
	version, err := a.client.getVersionFromHash(ctx, artifact.SHA1)
	if adapter.IsNotFound(err) {
		log.Debug().Str("path", artifact.Path).Str("sha1", artifact.SHA1).Msg("Unknown to Modrinth")
		return nil, nil
	}
	if err != nil {
		return nil, adapter.RegistryError(types.Modrinth, "get version from hash", artifact.SHA1, err)
	}
	if version.ProjectID == "" {
		return nil, fmt.Errorf("modrinth version %s has no project id", version.ID)
	}
	return types.ModrinthProject(version.ProjectID), nil
}

// Project fetches the canonical metadata of a project.
func (a *Adapter) Project(ctx context.Context, id string) (types.ProjectInfo, error) {
	project, err := a.client.getProject(ctx, id)
	if err != nil {
		return types.ProjectInfo{}, adapter.RegistryError(types.Modrinth, "get project", id, err)
	}
	return types.ProjectInfo{
		Identity: types.ModrinthProject(project.ID),
		Name:     project.Title,
		Slug:     project.Slug,
	}, nil
}
