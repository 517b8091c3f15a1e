package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		input   string
		want    Platform
		wantErr bool
	}{
		{input: "modrinth", want: Modrinth},
		{input: "CurseForge", want: CurseForge},
		{input: "  MODRINTH ", want: Modrinth},
		{input: "github", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePlatform(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported platform")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlatforms(t *testing.T) {
	const first, second = Modrinth, CurseForge

	assert.Equal(t, []Platform{first, second}, Platforms)
	assert.Equal(t, "Modrinth", first.DisplayName())
	assert.Equal(t, "CurseForge", second.DisplayName())
	assert.Equal(t, "other", Platform("other").DisplayName())
}
