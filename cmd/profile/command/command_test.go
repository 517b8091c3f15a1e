package command

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/modwarden/modwarden/cmd/cmdutils"
	"github.com/modwarden/modwarden/config"
	appconfig "github.com/modwarden/modwarden/internal/config"
	"github.com/modwarden/modwarden/internal/style"
	"github.com/modwarden/modwarden/module/mods/types"
	cerrors "github.com/modwarden/modwarden/util/common/errors"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, format string) string {
	t.Helper()
	saved := config.Global
	path := filepath.Join(t.TempDir(), "config.yaml")
	config.Global = config.GlobalFlags{ConfigPath: path, Format: format}
	style.Init(false)
	t.Cleanup(func() {
		config.Global = saved
		style.Init(true)
	})
	return path
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCreateAndUse(t *testing.T) {
	path := setup(t, "table")
	modsDir := t.TempDir()

	out, err := run(t, NewCreateCmd(&cmdutils.Factory{}), "--name", "survival", "--dir", modsDir, "--loader", "fabric")
	require.NoError(t, err)
	assert.Contains(t, out, "Created profile survival for "+modsDir)

	_, err = run(t, NewCreateCmd(&cmdutils.Factory{}), "--name", "creative", "--dir", modsDir)
	require.NoError(t, err)

	cfg, err := appconfig.LoadConfig(path)
	require.NoError(t, err)
	require.Len(t, cfg.Profiles, 2)
	assert.Equal(t, 1, cfg.ActiveProfile)
	assert.Equal(t, "fabric", cfg.Profiles[0].Loader)
	assert.Equal(t, modsDir, cfg.Profiles[0].OutputDir)

	out, err = run(t, NewUseCmd(&cmdutils.Factory{}), "survival")
	require.NoError(t, err)
	assert.Contains(t, out, "Active profile is now survival")

	cfg, err = appconfig.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.ActiveProfile)

	_, err = run(t, NewUseCmd(&cmdutils.Factory{}), "missing")
	assert.ErrorIs(t, err, cerrors.ErrNotFound)
}

func TestCreate_Validation(t *testing.T) {
	setup(t, "table")
	file := filepath.Join(t.TempDir(), "file.jar")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := run(t, NewCreateCmd(&cmdutils.Factory{}), "--name", "x")
	var ve *cerrors.ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = run(t, NewCreateCmd(&cmdutils.Factory{}), "--name", "x", "--dir", file)
	assert.ErrorAs(t, err, &ve)
}

func TestNormalizeDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p := &types.Profile{OutputDir: "~/mods"}
	require.NoError(t, normalizeDir(p))
	assert.Equal(t, filepath.Join(home, "mods"), p.OutputDir)

	p = &types.Profile{OutputDir: "relative/mods"}
	require.NoError(t, normalizeDir(p))
	assert.True(t, filepath.IsAbs(p.OutputDir))

	p = &types.Profile{OutputDir: "~user/mods"}
	require.NoError(t, normalizeDir(p))
	assert.NotContains(t, p.OutputDir, home)
}

func TestList(t *testing.T) {
	path := setup(t, "json")
	cfg := &appconfig.Config{}
	require.NoError(t, cfg.AddProfile(types.Profile{
		Name:      "survival",
		OutputDir: "/mods",
		Mods: []types.TrackedItem{
			{Identity: types.ModrinthProject("AANobbMI"), Name: "Sodium"},
			{Identity: types.CurseForgeProject(238222), Name: "Just Enough Items"},
		},
	}))
	require.NoError(t, cfg.Save(path))

	out, err := run(t, NewListCmd(&cmdutils.Factory{}))
	require.NoError(t, err)

	var rows []modRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Equal(t, []modRow{
		{Name: "Sodium", Platform: "Modrinth", ProjectID: "AANobbMI"},
		{Name: "Just Enough Items", Platform: "CurseForge", ProjectID: "238222"},
	}, rows)

	config.Global.Format = "table"
	out, err = run(t, NewListCmd(&cmdutils.Factory{}))
	require.NoError(t, err)
	assert.Contains(t, out, "Just Enough Items")
	assert.Contains(t, out, "survival: 2 mods in /mods")
}
