package style

import (
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	Init(false)
	if Enabled {
		t.Error("expected Enabled=false after Init(false)")
	}
	Init(true)
	if !Enabled {
		t.Error("expected Enabled=true after Init(true)")
	}
}

func TestIcons(t *testing.T) {
	tests := []struct {
		name      string
		icon      func() string
		colored   string
		plainText string
	}{
		{"success", SuccessIcon, "✓", "OK"},
		{"error", ErrorIcon, "✗", "ERROR"},
		{"warning", WarningIcon, "!", "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(true)
			if got := tt.icon(); !strings.Contains(got, tt.colored) {
				t.Errorf("expected %q in colored icon, got %q", tt.colored, got)
			}
			Init(false)
			if got := tt.icon(); got != tt.plainText {
				t.Errorf("expected %q when color disabled, got %q", tt.plainText, got)
			}
			Init(true)
		})
	}
}

func TestHint(t *testing.T) {
	Init(false)
	defer Init(true)

	h := Hint("run mw scan")
	if !strings.Contains(h, "run mw scan") || !strings.Contains(h, "→") {
		t.Errorf("unexpected hint %q", h)
	}
}

func TestPlatform_NoColor(t *testing.T) {
	Init(false)
	defer Init(true)

	if got := Platform("Modrinth"); got != "Modrinth" {
		t.Errorf("expected plain name, got %q", got)
	}
}
