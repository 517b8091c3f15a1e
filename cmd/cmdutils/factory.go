package cmdutils

import (
	"sync"

	"github.com/modwarden/modwarden/config"
	appconfig "github.com/modwarden/modwarden/internal/config"
	"github.com/modwarden/modwarden/module/mods/adapter"
	"github.com/modwarden/modwarden/module/mods/adapter/curseforge"
	"github.com/modwarden/modwarden/module/mods/adapter/modrinth"
	"github.com/modwarden/modwarden/module/mods/manifest"
	"github.com/modwarden/modwarden/module/mods/resolver"
	"github.com/modwarden/modwarden/module/mods/scan"
	"github.com/modwarden/modwarden/util/common/progress"

	"github.com/rs/zerolog/log"
)

// Factory builds what commands need from the global flags, the environment
// and the configuration file.
type Factory struct {
	// Env is read once at construction.
	Env appconfig.Env

	once sync.Once
	cfg  *appconfig.Config
	err  error
}

func NewFactory() *Factory {
	return &Factory{
		Env: appconfig.LoadEnv(".env", ".env.local"),
	}
}

// ConfigPath is --config when set, else the default location.
func (f *Factory) ConfigPath() (string, error) {
	if config.Global.ConfigPath != "" {
		return config.Global.ConfigPath, nil
	}
	return appconfig.DefaultPath()
}

// Config loads the configuration file on first use.
func (f *Factory) Config() (*appconfig.Config, error) {
	f.once.Do(func() {
		path, err := f.ConfigPath()
		if err != nil {
			f.err = err
			return
		}
		log.Debug().Str("path", path).Msg("Loading config")
		f.cfg, f.err = appconfig.LoadConfig(path)
	})
	return f.cfg, f.err
}

// SaveConfig writes the loaded configuration back.
func (f *Factory) SaveConfig() error {
	cfg, err := f.Config()
	if err != nil {
		return err
	}
	path, err := f.ConfigPath()
	if err != nil {
		return err
	}
	log.Debug().Str("path", path).Msg("Saving config")
	return cfg.Save(path)
}

// Settings resolves the effective settings, platformFlag taking precedence.
func (f *Factory) Settings(platformFlag string) (appconfig.Settings, error) {
	cfg, err := f.Config()
	if err != nil {
		return appconfig.Settings{}, err
	}
	return cfg.Resolve(f.Env, platformFlag)
}

// Scanner wires the registry adapters, the resolver and the registrar.
// Without a CurseForge API key only Modrinth is asked to identify files.
func (f *Factory) Scanner(settings appconfig.Settings, reporter progress.Reporter) (*scan.Scanner, error) {
	enumerator, err := scan.NewEnumerator(settings.Suffix, settings.Exclude)
	if err != nil {
		return nil, err
	}

	mr := modrinth.New(settings.Modrinth)
	cf := curseforge.New(settings.CurseForge)

	identifiers := []adapter.Identifier{mr}
	if settings.CurseForge.APIKey != "" {
		identifiers = append(identifiers, cf)
	} else {
		log.Warn().Msg("No CurseForge API key configured, set MODWARDEN_CURSEFORGE_API_KEY to identify files on CurseForge")
	}

	return &scan.Scanner{
		Enumerator: enumerator,
		Resolver:   resolver.NewService(identifiers...),
		Registrar:  &scan.Registrar{Modrinth: mr, CurseForge: cf},
		Reporter:   reporter,
		Inspector:  manifest.Inspector{},
	}, nil
}
