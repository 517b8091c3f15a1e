package types

// ProjectInfo is the canonical metadata a registry returns for a project.
type ProjectInfo struct {
	Identity Identity
	Name     string
	Slug     string
}
