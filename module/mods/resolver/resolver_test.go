package resolver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/modwarden/modwarden/module/mods/types"
	cerrors "github.com/modwarden/modwarden/util/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIdentifier struct {
	platform types.Platform
	known    map[string]types.Identity
	err      error
	calls    int
}

func (f *fakeIdentifier) Platform() types.Platform { return f.platform }

func (f *fakeIdentifier) Identify(_ context.Context, a types.Artifact) (types.Identity, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.known[a.SHA1], nil
}

func writeFile(t *testing.T, dir, name, content string) (string, string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	sum := sha1.Sum([]byte(content))
	return path, hex.EncodeToString(sum[:])
}

func TestResolve_CollectsCandidatesInOrder(t *testing.T) {
	dir := t.TempDir()
	path, sum := writeFile(t, dir, "sodium.jar", "sodium bytes")

	mr := &fakeIdentifier{platform: types.Modrinth, known: map[string]types.Identity{sum: types.ModrinthProject("AANobbMI")}}
	cf := &fakeIdentifier{platform: types.CurseForge, known: map[string]types.Identity{sum: types.CurseForgeProject(394468)}}

	got, err := NewService(mr, cf).Resolve(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []types.Identity{types.ModrinthProject("AANobbMI"), types.CurseForgeProject(394468)}, got)
}

func TestResolve_NotFound(t *testing.T) {
	path, _ := writeFile(t, t.TempDir(), "custom.jar", "private build")

	mr := &fakeIdentifier{platform: types.Modrinth}
	cf := &fakeIdentifier{platform: types.CurseForge}

	_, err := NewService(mr, cf).Resolve(context.Background(), path)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, mr.calls)
	assert.Equal(t, 1, cf.calls)
}

func TestResolve_ServiceErrorIsNotNotFound(t *testing.T) {
	path, _ := writeFile(t, t.TempDir(), "sodium.jar", "sodium bytes")
	outage := cerrors.NewRegistryError("modrinth", "get version from hash", "", 503, nil)

	mr := &fakeIdentifier{platform: types.Modrinth, err: outage}
	cf := &fakeIdentifier{platform: types.CurseForge}

	_, err := NewService(mr, cf).Resolve(context.Background(), path)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.ErrorIs(t, err, outage)
	assert.Equal(t, 0, cf.calls, "later identifiers are not asked after a failure")
}

func TestResolve_CachesByContent(t *testing.T) {
	dir := t.TempDir()
	first, sum := writeFile(t, dir, "a.jar", "same bytes")
	second, _ := writeFile(t, dir, "b.jar", "same bytes")

	mr := &fakeIdentifier{platform: types.Modrinth, known: map[string]types.Identity{sum: types.ModrinthProject("P7dR8mSH")}}
	svc := NewService(mr)

	for _, path := range []string{first, second} {
		got, err := svc.Resolve(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, []types.Identity{types.ModrinthProject("P7dR8mSH")}, got)
	}
	assert.Equal(t, 1, mr.calls)
}

func TestResolve_UnreadableFile(t *testing.T) {
	_, err := NewService().Resolve(context.Background(), filepath.Join(t.TempDir(), "missing.jar"))

	var fe *cerrors.FileError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "read", fe.Op)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadArtifact(t *testing.T) {
	path, sum := writeFile(t, t.TempDir(), "x.jar", "hello world")

	a, err := ReadArtifact(path)
	require.NoError(t, err)
	assert.Equal(t, path, a.Path)
	assert.EqualValues(t, 11, a.Size)
	assert.Equal(t, sum, a.SHA1)
	assert.Equal(t, uint32(2824650221), a.Fingerprint)
}
