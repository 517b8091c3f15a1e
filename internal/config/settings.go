package config

import (
	"os"

	"github.com/modwarden/modwarden/module/mods/adapter"
	"github.com/modwarden/modwarden/module/mods/adapter/curseforge"
	"github.com/modwarden/modwarden/module/mods/adapter/modrinth"
	httputil "github.com/modwarden/modwarden/module/mods/http"
	"github.com/modwarden/modwarden/module/mods/scan"
	"github.com/modwarden/modwarden/module/mods/types"
	cerrors "github.com/modwarden/modwarden/util/common/errors"
)

// DefaultUserAgent identifies the client to the registries.
const DefaultUserAgent = "modwarden/dev (github.com/modwarden/modwarden)"

// Settings is the effective configuration after the environment and flags
// have been applied on top of the file.
type Settings struct {
	// PreferredPlatform is empty when nothing chose one.
	PreferredPlatform types.Platform
	Modrinth          adapter.Config
	CurseForge        adapter.Config
	Suffix            string
	Exclude           []string
}

// Resolve computes the effective settings. Precedence is flag, then
// environment, then file. Registry values in the file have ${VAR} references
// expanded here so the file itself keeps the references.
func (c *Config) Resolve(env Env, platformFlag string) (Settings, error) {
	opts := httputil.DefaultOptions()
	if c.HTTP.RetryMax != nil {
		opts.RetryMax = *c.HTTP.RetryMax
	}
	if c.HTTP.Timeout > 0 {
		opts.Timeout = c.HTTP.Timeout
	}

	userAgent := first(c.UserAgent, DefaultUserAgent)
	s := Settings{
		Modrinth: adapter.Config{
			Endpoint:  first(env.ModrinthEndpoint, expandEnv(c.Registries.Modrinth.Endpoint), modrinth.DefaultEndpoint),
			UserAgent: userAgent,
			HTTP:      opts,
		},
		CurseForge: adapter.Config{
			Endpoint:  first(env.CurseForgeEndpoint, expandEnv(c.Registries.CurseForge.Endpoint), curseforge.DefaultEndpoint),
			APIKey:    first(env.CurseForgeAPIKey, expandEnv(c.Registries.CurseForge.APIKey)),
			UserAgent: userAgent,
			HTTP:      opts,
		},
		Suffix:  first(c.Scan.Suffix, scan.DefaultSuffix),
		Exclude: c.Scan.Exclude,
	}

	if raw := first(platformFlag, env.PreferredPlatform, c.PreferredPlatform); raw != "" {
		p, err := types.ParsePlatform(raw)
		if err != nil {
			return Settings{}, cerrors.NewValidationError("platform", err.Error())
		}
		s.PreferredPlatform = p
	}
	return s, nil
}

// expandEnv expands ${VAR} style environment variables
func expandEnv(value string) string {
	return os.Expand(value, os.Getenv)
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
