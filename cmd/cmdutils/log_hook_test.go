package cmdutils

import (
	"bytes"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWarningHook(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(io.Discard).Level(zerolog.WarnLevel).Hook(WarningHook{Writer: &buf})

	logger.Info().Msg("not shown")
	logger.Error().Msg("not a warning")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("disk almost full")
	assert.Contains(t, buf.String(), "disk almost full")
}
