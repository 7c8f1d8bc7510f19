// Package inputs resolves command-line file arguments into the ordered
// list of log files to read.
package inputs

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/atikulmunna/logreport/internal/parser"
)

const globMeta = `*?[{`

// Expand resolves args in order. Plain paths, and arguments naming an
// existing file literally, are passed through untouched, so a missing file
// is reported by the parser. Glob patterns, including
// recursive ones like logs/**/*.log, expand to their matching files in
// sorted order; a pattern that matches nothing is a *parser.FileError.
func Expand(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if !IsPattern(arg) || exists(arg) {
			paths = append(paths, arg)
			continue
		}

		matches, err := expandGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("expand pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, &parser.FileError{Path: arg, Err: fs.ErrNotExist}
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	return paths, nil
}

// IsPattern reports whether arg contains glob metacharacters.
func IsPattern(arg string) bool {
	return strings.ContainsAny(arg, globMeta)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandGlob resolves a glob pattern to matching file paths via doublestar.
func expandGlob(pattern string) ([]string, error) {
	if !doublestar.ValidatePathPattern(pattern) {
		return nil, doublestar.ErrBadPattern
	}
	return doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
}
