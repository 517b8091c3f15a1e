package types

// Artifact is a local mod file together with the content hashes the
// registries identify it by.
type Artifact struct {
	Path string
	Size int64
	// SHA1 is the lowercase hex SHA-1 of the file, used by Modrinth.
	SHA1 string
	// Fingerprint is the CurseForge murmur2 fingerprint of the file.
	Fingerprint uint32
}
