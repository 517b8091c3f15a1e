package types

import "strconv"

// Identity names a project on exactly one registry. It is a closed set: the only
// implementations are ModrinthProject and CurseForgeProject.
type Identity interface {
	Platform() Platform
	String() string
	isIdentity()
}

// ModrinthProject is a Modrinth project id, e.g. "AANobbMI".
type ModrinthProject string

func (ModrinthProject) Platform() Platform { return Modrinth }
func (id ModrinthProject) String() string  { return string(id) }
func (ModrinthProject) isIdentity()        {}

// CurseForgeProject is a CurseForge mod id.
type CurseForgeProject int32

func (CurseForgeProject) Platform() Platform { return CurseForge }
func (id CurseForgeProject) String() string  { return strconv.FormatInt(int64(id), 10) }
func (CurseForgeProject) isIdentity()        {}

// SameIdentity reports whether a and b name the same project on the same registry.
func SameIdentity(a, b Identity) bool {
	if a == nil || b == nil {
		return false
	}
	return a == b
}
