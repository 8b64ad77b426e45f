// Package discover locates probe binaries by glob pattern.
package discover

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var errNoPatterns = errors.New("no probe patterns provided")

// Probes expands one or more patterns (** and {a,b} supported) into a
// sorted, de-duplicated list of probe binary paths. Only regular files
// are returned; directories matched by a pattern are skipped.
func Probes(patterns ...string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, errNoPatterns
	}

	seen := make(map[string]bool)

	var probes []string

	for _, pattern := range patterns {
		pattern = filepath.Clean(pattern)
		fsys, base := patternFS(pattern)

		rel := pattern
		if base != "" {
			rel = filepath.Clean(strings.TrimPrefix(pattern, base))
		}

		matches, err := doublestar.Glob(fsys, filepath.ToSlash(rel))
		if err != nil {
			return nil, fmt.Errorf("expanding pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			path := match
			if base != "" {
				path = filepath.Join(base, match)
			}

			path = filepath.FromSlash(path)

			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}

			if !seen[path] {
				seen[path] = true
				probes = append(probes, path)
			}
		}
	}

	sort.Strings(probes)

	return probes, nil
}

func patternFS(pattern string) (fs.FS, string) {
	if filepath.IsAbs(pattern) {
		volume := filepath.VolumeName(pattern)
		base := volume + string(filepath.Separator)

		return os.DirFS(base), base
	}

	return os.DirFS("."), ""
}
