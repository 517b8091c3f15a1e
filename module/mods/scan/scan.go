// Package scan reconciles a directory of mod files with a profile.
package scan

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/modwarden/modwarden/module/mods/resolver"
	"github.com/modwarden/modwarden/module/mods/types"
	"github.com/modwarden/modwarden/util/common/progress"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Inspector describes a local artifact from its own metadata. It is only
// used to enrich notices.
type Inspector interface {
	Describe(path string) (string, bool)
}

// Report tallies what a scan did. Scanned counts the files whose processing
// started, including one that aborted the scan.
type Report struct {
	TraceID        string `json:"traceId"`
	Scanned        int    `json:"scanned"`
	Added          int    `json:"added"`
	AlreadyTracked int    `json:"alreadyTracked"`
	NotFound       int    `json:"notFound"`
}

// Scanner drives enumeration, resolution, selection and registration for
// every artifact in a profile's output directory, one file at a time.
type Scanner struct {
	Enumerator *Enumerator
	Resolver   resolver.Resolver
	Registrar  *Registrar
	Reporter   progress.Reporter
	Inspector  Inspector
}

// Scan registers every identifiable artifact in profile.OutputDir into
// profile.Mods. Unknown and already tracked artifacts are reported and
// skipped. An unreadable directory, a resolver failure or a registration
// failure stops the scan; mods added before that stay in the profile.
// The report is returned in both cases.
func (s *Scanner) Scan(ctx context.Context, profile *types.Profile, preferred types.Platform) (*Report, error) {
	report := &Report{TraceID: uuid.New().String()}

	logger := log.With().
		Str("trace_id", report.TraceID).
		Str("profile", profile.Name).
		Str("dir", profile.OutputDir).
		Str("preferred_platform", string(preferred)).
		Logger()
	logger.Info().Msg("Starting scan")
	start := time.Now()

	s.Reporter.Start(fmt.Sprintf("Scanning %s", profile.OutputDir))
	defer s.Reporter.End()

	for path, err := range s.Enumerator.Artifacts(profile.OutputDir) {
		if err != nil {
			logger.Error().Err(err).Msg("Listing artifacts failed")
			return report, err
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}

		report.Scanned++
		s.Reporter.Step(fmt.Sprintf("Identifying %s", filepath.Base(path)))
		fileLogger := logger.With().Str("path", path).Logger()
		if err := s.scanFile(ctx, fileLogger, path, profile, preferred, report); err != nil {
			fileLogger.Error().Err(err).Dur("duration", time.Since(start)).Msg("Scan aborted")
			return report, err
		}
	}

	logger.Info().
		Int("scanned", report.Scanned).
		Int("added", report.Added).
		Int("already_tracked", report.AlreadyTracked).
		Int("not_found", report.NotFound).
		Dur("duration", time.Since(start)).
		Msg("Scan completed")
	return report, nil
}

func (s *Scanner) scanFile(
	ctx context.Context,
	logger zerolog.Logger,
	path string,
	profile *types.Profile,
	preferred types.Platform,
	report *Report,
) error {
	candidates, err := s.Resolver.Resolve(ctx, path)
	if errors.Is(err, resolver.ErrNotFound) {
		report.NotFound++
		logger.Debug().Msg("Artifact not found on any platform")
		s.Reporter.Error(fmt.Sprintf("Could not find %s on any platform", s.describe(path)))
		return nil
	}
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	chosen := Select(candidates, preferred)
	logger = logger.With().
		Str("platform", string(chosen.Platform())).
		Str("project_id", chosen.String()).
		Logger()

	outcome, err := s.Registrar.Register(ctx, chosen, profile)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	switch outcome.Status {
	case Added:
		report.Added++
		logger.Debug().Str("name", outcome.Name).Msg("Added mod")
		s.Reporter.Success(fmt.Sprintf("found %s on %s", outcome.Name, chosen.Platform().DisplayName()))
	case AlreadyTracked:
		report.AlreadyTracked++
		logger.Debug().Msg("Mod already tracked")
		s.Reporter.Warning(fmt.Sprintf("%s is already added", path))
	}
	return nil
}

func (s *Scanner) describe(path string) string {
	if s.Inspector == nil {
		return path
	}
	if desc, ok := s.Inspector.Describe(path); ok {
		return fmt.Sprintf("%s (%s)", path, desc)
	}
	return path
}
