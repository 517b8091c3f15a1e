package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "MODWARDEN"

// Env holds the settings that can be supplied through the environment.
// They override the file and are never written back to it.
type Env struct {
	CurseForgeAPIKey   string
	ModrinthEndpoint   string
	CurseForgeEndpoint string
	PreferredPlatform  string
}

// LoadEnv loads the given .env files, then reads the MODWARDEN_* variables.
// Variables already set in the process environment win over .env files.
func LoadEnv(files ...string) Env {
	for _, f := range files {
		_ = godotenv.Load(f)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	return Env{
		CurseForgeAPIKey:   v.GetString("curseforge_api_key"),
		ModrinthEndpoint:   v.GetString("modrinth_endpoint"),
		CurseForgeEndpoint: v.GetString("curseforge_endpoint"),
		PreferredPlatform:  v.GetString("preferred_platform"),
	}
}
