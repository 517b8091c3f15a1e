package scan

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"

	cerrors "github.com/modwarden/modwarden/util/common/errors"

	"github.com/gobwas/glob"
)

// DefaultSuffix marks a file as a mod artifact.
const DefaultSuffix = ".jar"

const readBatch = 64

// Enumerator lists the artifacts directly inside a directory.
type Enumerator struct {
	suffix  string
	exclude []glob.Glob
}

// NewEnumerator creates an Enumerator matching file names that end in suffix
// (case-sensitive) and match none of the exclude patterns. Patterns are
// matched against the base name and support * and ** only.
func NewEnumerator(suffix string, exclude []string) (*Enumerator, error) {
	if suffix == "" {
		suffix = DefaultSuffix
	}

	e := &Enumerator{suffix: suffix}
	for _, pattern := range exclude {
		if strings.ContainsAny(pattern, "?[]{}") {
			return nil, cerrors.NewValidationError("exclude",
				fmt.Sprintf("pattern %q contains unsupported wildcard characters, only * and ** are supported", pattern))
		}
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, cerrors.NewValidationError("exclude", fmt.Sprintf("pattern %q: %v", pattern, err))
		}
		e.exclude = append(e.exclude, g)
	}
	return e, nil
}

// Artifacts yields the paths of matching files in dir, non-recursively, in
// directory order. The directory is read in batches as the sequence is
// consumed. A failure to read the directory is yielded once as a FileError
// and ends the sequence.
func (e *Enumerator) Artifacts(dir string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		f, err := os.Open(dir)
		if err != nil {
			yield("", cerrors.NewFileError(dir, "read", err))
			return
		}
		defer f.Close()

		for {
			entries, err := f.ReadDir(readBatch)
			for _, entry := range entries {
				if !e.Matches(entry) {
					continue
				}
				if !yield(filepath.Join(dir, entry.Name()), nil) {
					return
				}
			}
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield("", cerrors.NewFileError(dir, "read", err))
				return
			}
		}
	}
}

// Matches reports whether a directory entry is an artifact.
func (e *Enumerator) Matches(entry os.DirEntry) bool {
	if entry.IsDir() {
		return false
	}
	name := entry.Name()
	if len(name) <= len(e.suffix) || !strings.HasSuffix(name, e.suffix) {
		return false
	}
	for _, g := range e.exclude {
		if g.Match(name) {
			return false
		}
	}
	return true
}
