package types

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Profile is a set of tracked mods for one game installation.
type Profile struct {
	Name        string        `yaml:"name"`
	OutputDir   string        `yaml:"outputDir"`
	GameVersion string        `yaml:"gameVersion,omitempty"`
	Loader      string        `yaml:"loader,omitempty"`
	Mods        []TrackedItem `yaml:"mods"`
}

// Find returns the index of the tracked item with the given identity, or -1.
func (p *Profile) Find(id Identity) int {
	for i, m := range p.Mods {
		if SameIdentity(m.Identity, id) {
			return i
		}
	}
	return -1
}

// TrackedItem is a profile entry backed by a confirmed registry identity.
type TrackedItem struct {
	Identity Identity
	// Name is the registry title at registration time. It is not kept in sync.
	Name             string
	CheckGameVersion *bool
	CheckModLoader   *bool
}

// trackedItemYAML is the on-disk shape of a TrackedItem. Exactly one of the
// identifier fields is set.
type trackedItemYAML struct {
	Name       string `yaml:"name"`
	Identifier struct {
		ModrinthProject   *string `yaml:"modrinthProject,omitempty"`
		CurseForgeProject *int32  `yaml:"curseForgeProject,omitempty"`
	} `yaml:"identifier"`
	CheckGameVersion *bool `yaml:"checkGameVersion,omitempty"`
	CheckModLoader   *bool `yaml:"checkModLoader,omitempty"`
}

func (t TrackedItem) MarshalYAML() (interface{}, error) {
	out := trackedItemYAML{
		Name:             t.Name,
		CheckGameVersion: t.CheckGameVersion,
		CheckModLoader:   t.CheckModLoader,
	}
	switch id := t.Identity.(type) {
	case ModrinthProject:
		s := string(id)
		out.Identifier.ModrinthProject = &s
	case CurseForgeProject:
		n := int32(id)
		out.Identifier.CurseForgeProject = &n
	default:
		return nil, fmt.Errorf("mod %q has no identifier", t.Name)
	}
	return out, nil
}

func (t *TrackedItem) UnmarshalYAML(value *yaml.Node) error {
	var in trackedItemYAML
	if err := value.Decode(&in); err != nil {
		return err
	}

	mr, cf := in.Identifier.ModrinthProject, in.Identifier.CurseForgeProject
	switch {
	case mr != nil && cf != nil:
		return fmt.Errorf("line %d: mod %q has more than one identifier", value.Line, in.Name)
	case mr != nil:
		t.Identity = ModrinthProject(*mr)
	case cf != nil:
		t.Identity = CurseForgeProject(*cf)
	default:
		return fmt.Errorf("line %d: mod %q has no identifier", value.Line, in.Name)
	}

	t.Name = in.Name
	t.CheckGameVersion = in.CheckGameVersion
	t.CheckModLoader = in.CheckModLoader
	return nil
}
