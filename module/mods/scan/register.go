package scan

import (
	"context"
	"fmt"

	"github.com/modwarden/modwarden/module/mods/types"
)

// ModrinthProjects fetches canonical Modrinth project metadata.
type ModrinthProjects interface {
	Project(ctx context.Context, id string) (types.ProjectInfo, error)
}

// CurseForgeProjects fetches canonical CurseForge mod metadata.
type CurseForgeProjects interface {
	Project(ctx context.Context, id int32) (types.ProjectInfo, error)
}

// Status is the result of registering one identity.
type Status int

const (
	Added Status = iota + 1
	AlreadyTracked
)

func (s Status) String() string {
	switch s {
	case Added:
		return "added"
	case AlreadyTracked:
		return "already tracked"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome describes a successful registration call.
type Outcome struct {
	Status   Status
	Name     string
	Identity types.Identity
}

// RegistrationError is returned when the canonical metadata of a selected
// identity could not be fetched.
type RegistrationError struct {
	Identity types.Identity
	Wrapped  error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("register %s project %s: %v", e.Identity.Platform().DisplayName(), e.Identity, e.Wrapped)
}

func (e *RegistrationError) Unwrap() error {
	return e.Wrapped
}

// Registrar adds selected identities to a profile.
type Registrar struct {
	Modrinth   ModrinthProjects
	CurseForge CurseForgeProjects
}

// Register fetches the canonical metadata for id and appends a tracked item
// to profile unless one with the same identity is already there. Calling it
// again with the same identity reports AlreadyTracked and changes nothing.
func (r *Registrar) Register(ctx context.Context, id types.Identity, profile *types.Profile) (Outcome, error) {
	switch id := id.(type) {
	case types.ModrinthProject:
		return r.addModrinth(ctx, id, profile)
	case types.CurseForgeProject:
		return r.addCurseForge(ctx, id, profile)
	default:
		panic(fmt.Sprintf("scan: unknown identity type %T", id))
	}
}

func (r *Registrar) addModrinth(ctx context.Context, id types.ModrinthProject, profile *types.Profile) (Outcome, error) {
	info, err := r.Modrinth.Project(ctx, string(id))
	if err != nil {
		return Outcome{}, &RegistrationError{Identity: id, Wrapped: err}
	}
	return track(info, profile), nil
}

func (r *Registrar) addCurseForge(ctx context.Context, id types.CurseForgeProject, profile *types.Profile) (Outcome, error) {
	info, err := r.CurseForge.Project(ctx, int32(id))
	if err != nil {
		return Outcome{}, &RegistrationError{Identity: id, Wrapped: err}
	}
	return track(info, profile), nil
}

func track(info types.ProjectInfo, profile *types.Profile) Outcome {
	if i := profile.Find(info.Identity); i >= 0 {
		return Outcome{
			Status:   AlreadyTracked,
			Name:     profile.Mods[i].Name,
			Identity: info.Identity,
		}
	}

	profile.Mods = append(profile.Mods, types.TrackedItem{
		Identity: info.Identity,
		Name:     info.Name,
	})
	return Outcome{
		Status:   Added,
		Name:     info.Name,
		Identity: info.Identity,
	}
}
