package scan

import (
	"context"
	"fmt"
	"strconv"

	"github.com/modwarden/modwarden/module/mods/resolver"
	"github.com/modwarden/modwarden/module/mods/types"
	cerrors "github.com/modwarden/modwarden/util/common/errors"
)

// fakeProjects serves canonical metadata for both registries from memory.
type fakeProjects struct {
	modrinth   map[string]types.ProjectInfo
	curseforge map[int32]types.ProjectInfo
	fail       map[string]error
	calls      []string
}

func newFakeProjects() *fakeProjects {
	return &fakeProjects{
		modrinth:   map[string]types.ProjectInfo{},
		curseforge: map[int32]types.ProjectInfo{},
		fail:       map[string]error{},
	}
}

func (f *fakeProjects) addModrinth(id, name string) {
	f.modrinth[id] = types.ProjectInfo{Identity: types.ModrinthProject(id), Name: name}
}

func (f *fakeProjects) addCurseForge(id int32, name string) {
	f.curseforge[id] = types.ProjectInfo{Identity: types.CurseForgeProject(id), Name: name}
}

func (f *fakeProjects) lookup(key string, info types.ProjectInfo, ok bool) (types.ProjectInfo, error) {
	f.calls = append(f.calls, key)
	if err := f.fail[key]; err != nil {
		return types.ProjectInfo{}, err
	}
	if !ok {
		return types.ProjectInfo{}, cerrors.NewRegistryError("fake", "get project", key, 404, nil)
	}
	return info, nil
}

type modrinthFake struct{ *fakeProjects }

func (f modrinthFake) Project(_ context.Context, id string) (types.ProjectInfo, error) {
	info, ok := f.modrinth[id]
	return f.lookup("modrinth:"+id, info, ok)
}

type curseforgeFake struct{ *fakeProjects }

func (f curseforgeFake) Project(_ context.Context, id int32) (types.ProjectInfo, error) {
	info, ok := f.curseforge[id]
	return f.lookup("curseforge:"+strconv.Itoa(int(id)), info, ok)
}

func (f *fakeProjects) registrar() *Registrar {
	return &Registrar{Modrinth: modrinthFake{f}, CurseForge: curseforgeFake{f}}
}

// fakeResolver answers by path.
type fakeResolver struct {
	candidates map[string][]types.Identity
	fail       map[string]error
	resolved   []string
}

func (f *fakeResolver) Resolve(_ context.Context, path string) ([]types.Identity, error) {
	f.resolved = append(f.resolved, path)
	if err := f.fail[path]; err != nil {
		return nil, err
	}
	c, ok := f.candidates[path]
	if !ok || len(c) == 0 {
		return nil, resolver.ErrNotFound
	}
	return c, nil
}

type notice struct {
	kind    string
	message string
}

// recordingReporter keeps every per-file notice.
type recordingReporter struct {
	steps   []string
	notices []notice
	started bool
	ended   bool
}

func (r *recordingReporter) Start(string)     { r.started = true }
func (r *recordingReporter) Step(m string)    { r.steps = append(r.steps, m) }
func (r *recordingReporter) End()             { r.ended = true }
func (r *recordingReporter) Warning(m string) { r.notices = append(r.notices, notice{"warning", m}) }
func (r *recordingReporter) Error(m string)   { r.notices = append(r.notices, notice{"error", m}) }
func (r *recordingReporter) Success(m string) { r.notices = append(r.notices, notice{"success", m}) }
func (r *recordingReporter) String() string   { return fmt.Sprint(r.notices) }
