// Package manifest reads the loader metadata bundled inside a mod jar.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
	"github.com/zhyee/zipstream"
)

const (
	forgeManifest    = "META-INF/mods.toml"
	neoForgeManifest = "META-INF/neoforge.mods.toml"
	fabricManifest   = "fabric.mod.json"
	quiltManifest    = "quilt.mod.json"

	// manifests are small; anything larger is not one.
	maxManifestSize = 1 << 20
)

// ErrNoManifest is returned when an archive carries no known loader metadata.
var ErrNoManifest = errors.New("no mod manifest found")

// Manifest is the self-declared identity of a mod jar.
type Manifest struct {
	Loader  string
	ID      string
	Name    string
	Version string
}

// String returns "Name Version", leaving out whatever is unknown.
func (m *Manifest) String() string {
	name := m.Name
	if name == "" {
		name = m.ID
	}
	if m.Version == "" {
		return name
	}
	return strings.TrimSpace(name + " " + m.Version)
}

// ReadFile opens the jar at path and reads its manifest.
func ReadFile(path string) (*Manifest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file)
}

// Read streams a jar and returns the first loader manifest it finds.
func Read(r io.Reader) (*Manifest, error) {
	zr := zipstream.NewReader(r)
	for {
		entry, err := zr.GetNextEntry()
		if errors.Is(err, io.EOF) {
			return nil, ErrNoManifest
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read jar entry: %w", err)
		}

		parse := parserFor(entry.Name)
		if parse == nil {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", entry.Name, err)
		}
		data, err := io.ReadAll(io.LimitReader(rc, maxManifestSize))
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name, err)
		}
		m, err := parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed parsing %s: %w", entry.Name, err)
		}
		return m, nil
	}
}

func parserFor(name string) func([]byte) (*Manifest, error) {
	switch name {
	case forgeManifest:
		return parseModsToml("forge")
	case neoForgeManifest:
		return parseModsToml("neoforge")
	case fabricManifest:
		return parseFabric
	case quiltManifest:
		return parseQuilt
	}
	return nil
}

func parseModsToml(loader string) func([]byte) (*Manifest, error) {
	return func(data []byte) (*Manifest, error) {
		var metadata struct {
			Mods []struct {
				ModID       string `toml:"modId"`
				Version     string `toml:"version"`
				DisplayName string `toml:"displayName"`
			} `toml:"mods"`
		}
		if _, err := toml.Decode(string(data), &metadata); err != nil {
			return nil, err
		}
		if len(metadata.Mods) == 0 {
			return nil, errors.New("no [[mods]] table")
		}
		mod := metadata.Mods[0]
		return &Manifest{
			Loader:  loader,
			ID:      mod.ModID,
			Name:    mod.DisplayName,
			Version: literal(mod.Version),
		}, nil
	}
}

func parseFabric(data []byte) (*Manifest, error) {
	var metadata struct {
		ID      string `json:"id"`
		Version string `json:"version"`
		Name    string `json:"name"`
	}
	if err := json.Unmarshal(data, &metadata); err != nil {
		return nil, err
	}
	return &Manifest{
		Loader:  "fabric",
		ID:      metadata.ID,
		Name:    metadata.Name,
		Version: literal(metadata.Version),
	}, nil
}

func parseQuilt(data []byte) (*Manifest, error) {
	var metadata struct {
		QuiltLoader struct {
			ID       string `json:"id"`
			Version  string `json:"version"`
			Metadata struct {
				Name string `json:"name"`
			} `json:"metadata"`
		} `json:"quilt_loader"`
	}
	if err := json.Unmarshal(data, &metadata); err != nil {
		return nil, err
	}
	return &Manifest{
		Loader:  "quilt",
		ID:      metadata.QuiltLoader.ID,
		Name:    metadata.QuiltLoader.Metadata.Name,
		Version: literal(metadata.QuiltLoader.Version),
	}, nil
}

// literal drops build-time placeholders such as ${file.jarVersion}.
func literal(v string) string {
	if strings.Contains(v, "${") {
		return ""
	}
	return v
}

// Inspector describes jars by their manifest.
type Inspector struct{}

// Describe returns the manifest name and version of the jar at path. It
// reports false when the jar cannot be read or carries no manifest.
func (Inspector) Describe(path string) (string, bool) {
	m, err := ReadFile(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("No manifest")
		return "", false
	}
	desc := m.String()
	return desc, desc != ""
}
