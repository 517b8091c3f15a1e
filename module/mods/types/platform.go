package types

import (
	"fmt"
	"strings"
)

// Platform names a remote mod registry.
type Platform string

const (
	Modrinth   Platform = "modrinth"
	CurseForge Platform = "curseforge"
)

// Platforms lists every supported registry in resolver order.
var Platforms = []Platform{Modrinth, CurseForge}

// ParsePlatform converts user input into a Platform. Matching is case-insensitive.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Modrinth):
		return Modrinth, nil
	case string(CurseForge):
		return CurseForge, nil
	default:
		return "", fmt.Errorf("unsupported platform: %q, must be 'modrinth' or 'curseforge'", s)
	}
}

// DisplayName is the human readable registry name used in notices.
func (p Platform) DisplayName() string {
	switch p {
	case Modrinth:
		return "Modrinth"
	case CurseForge:
		return "CurseForge"
	default:
		return string(p)
	}
}
