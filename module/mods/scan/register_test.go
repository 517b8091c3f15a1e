package scan

import (
	"context"
	"errors"
	"testing"

	"github.com/modwarden/modwarden/module/mods/types"
	cerrors "github.com/modwarden/modwarden/util/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_AddsModrinthProject(t *testing.T) {
	projects := newFakeProjects()
	projects.addModrinth("AANobbMI", "Sodium")
	profile := &types.Profile{Name: "survival"}

	outcome, err := projects.registrar().Register(context.Background(), types.ModrinthProject("AANobbMI"), profile)
	require.NoError(t, err)

	assert.Equal(t, Outcome{Status: Added, Name: "Sodium", Identity: types.ModrinthProject("AANobbMI")}, outcome)
	require.Len(t, profile.Mods, 1)
	assert.Equal(t, types.TrackedItem{Identity: types.ModrinthProject("AANobbMI"), Name: "Sodium"}, profile.Mods[0])
	assert.Nil(t, profile.Mods[0].CheckGameVersion)
	assert.Nil(t, profile.Mods[0].CheckModLoader)
}

func TestRegister_DispatchesByIdentityType(t *testing.T) {
	projects := newFakeProjects()
	projects.addModrinth("238222", "Wrong registry")
	projects.addCurseForge(238222, "Just Enough Items")
	profile := &types.Profile{}

	outcome, err := projects.registrar().Register(context.Background(), types.CurseForgeProject(238222), profile)
	require.NoError(t, err)

	assert.Equal(t, "Just Enough Items", outcome.Name)
	assert.Equal(t, []string{"curseforge:238222"}, projects.calls)
	assert.Equal(t, types.CurseForgeProject(238222), profile.Mods[0].Identity)
}

func TestRegister_Idempotent(t *testing.T) {
	projects := newFakeProjects()
	projects.addCurseForge(238222, "Just Enough Items")
	profile := &types.Profile{}
	r := projects.registrar()

	first, err := r.Register(context.Background(), types.CurseForgeProject(238222), profile)
	require.NoError(t, err)
	assert.Equal(t, Added, first.Status)

	snapshot := append([]types.TrackedItem(nil), profile.Mods...)

	second, err := r.Register(context.Background(), types.CurseForgeProject(238222), profile)
	require.NoError(t, err)
	assert.Equal(t, AlreadyTracked, second.Status)
	assert.Equal(t, snapshot, profile.Mods)
}

func TestRegister_MatchesCanonicalIdentity(t *testing.T) {
	// Modrinth also answers to slugs; the canonical id decides.
	projects := newFakeProjects()
	projects.modrinth["sodium"] = types.ProjectInfo{Identity: types.ModrinthProject("AANobbMI"), Name: "Sodium"}
	profile := &types.Profile{Mods: []types.TrackedItem{
		{Identity: types.ModrinthProject("AANobbMI"), Name: "Sodium (old title)"},
	}}

	outcome, err := projects.registrar().Register(context.Background(), types.ModrinthProject("sodium"), profile)
	require.NoError(t, err)
	assert.Equal(t, AlreadyTracked, outcome.Status)
	assert.Equal(t, "Sodium (old title)", outcome.Name)
	assert.Len(t, profile.Mods, 1)
}

func TestRegister_SameIDOtherRegistryIsDistinct(t *testing.T) {
	projects := newFakeProjects()
	projects.addCurseForge(394468, "Sodium")
	profile := &types.Profile{Mods: []types.TrackedItem{
		{Identity: types.ModrinthProject("394468"), Name: "Sodium"},
	}}

	outcome, err := projects.registrar().Register(context.Background(), types.CurseForgeProject(394468), profile)
	require.NoError(t, err)
	assert.Equal(t, Added, outcome.Status)
	assert.Len(t, profile.Mods, 2)
}

func TestRegister_FetchError(t *testing.T) {
	projects := newFakeProjects()
	outage := cerrors.NewRegistryError("modrinth", "get project", "AANobbMI", 503, nil)
	projects.fail["modrinth:AANobbMI"] = outage
	profile := &types.Profile{}

	_, err := projects.registrar().Register(context.Background(), types.ModrinthProject("AANobbMI"), profile)
	require.Error(t, err)

	var re *RegistrationError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, types.ModrinthProject("AANobbMI"), re.Identity)
	assert.ErrorIs(t, err, outage)
	assert.Contains(t, err.Error(), "register Modrinth project AANobbMI")
	assert.Empty(t, profile.Mods)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "added", Added.String())
	assert.Equal(t, "already tracked", AlreadyTracked.String())
	assert.Equal(t, "Status(0)", Status(0).String())
}
