// Package plan turns the name suggestions returned by the AI service into
// concrete filesystem move operations and answers read-only questions about
// them (conflicting targets, directories that must be created first).
package plan

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// NamePair is one suggestion from the AI service: an original file name and
// the relative path it should be moved to. NewName may contain a single "/"
// separating a target subdirectory from the file name.
type NamePair struct {
	OriginalName string `json:"original_name"`
	NewName      string `json:"new_name"`
}

// FilePair is a fully resolved move operation. Source lies under the source
// root and Target under the target root by construction.
type FilePair struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// MapPairs resolves name pairs against the configured roots, one FilePair per
// NamePair in input order. A NewName containing "/" is split at the first
// occurrence into a target subdirectory and the remainder.
//
// Suggestions that would escape the roots (absolute paths or ".." elements)
// are rejected with ErrUnsafeName rather than silently preserved.
func MapPairs(pairs []NamePair, sourceRoot, targetRoot string) ([]FilePair, error) {
	filePairs := make([]FilePair, 0, len(pairs))
	for _, p := range pairs {
		if err := checkName(p.OriginalName); err != nil {
			return nil, err
		}
		if err := checkName(p.NewName); err != nil {
			return nil, err
		}

		source := filepath.Join(sourceRoot, p.OriginalName)

		var target string
		if subdir, rest, found := strings.Cut(p.NewName, "/"); found {
			target = filepath.Join(targetRoot, subdir, rest)
		} else {
			target = filepath.Join(targetRoot, p.NewName)
		}

		filePairs = append(filePairs, FilePair{Source: source, Target: target})
	}
	return filePairs, nil
}

// UnsafeNameError reports a suggested name that would resolve outside the
// configured roots.
type UnsafeNameError struct {
	Name string
}

func (e *UnsafeNameError) Error() string {
	return fmt.Sprintf("unsafe name in AI suggestion: %q", e.Name)
}

// checkName rejects empty names, absolute paths and any ".." path element.
func checkName(name string) error {
	if name == "" || strings.HasPrefix(name, "/") || filepath.IsAbs(name) {
		return &UnsafeNameError{Name: name}
	}
	for _, part := range strings.Split(filepath.ToSlash(name), "/") {
		if part == ".." {
			return &UnsafeNameError{Name: name}
		}
	}
	return nil
}

// FindConflicts returns every target that already exists on disk, in pair
// order. Results reflect the filesystem at call time; nothing is cached.
func FindConflicts(fsys afero.Fs, pairs []FilePair) []string {
	var conflicts []string
	for _, p := range pairs {
		if exists, _ := afero.Exists(fsys, p.Target); exists {
			conflicts = append(conflicts, p.Target)
		}
	}
	return conflicts
}

// FindMissingDirs returns the distinct target parent directories that do not
// yet exist, sorted so the listing shown to the user is deterministic.
func FindMissingDirs(fsys afero.Fs, pairs []FilePair) []string {
	seen := make(map[string]bool)
	var missing []string
	for _, p := range pairs {
		dir := filepath.Dir(p.Target)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		if exists, _ := afero.DirExists(fsys, dir); !exists {
			missing = append(missing, dir)
		}
	}
	sort.Strings(missing)
	return missing
}
