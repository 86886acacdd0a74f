package jsnot

import (
	"strings"
)

// Separator delimits segments within a path.  JSON does not allow a bare
// backslash inside a key (it must start an escape sequence), which makes it a
// safe delimiter for keys produced by a JSON decoder.
const Separator = `\`

// ParsePath splits a path into its segments.  The empty path has no segments.
func ParsePath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, Separator)
}

func JoinPath(segments []string) string {
	return strings.Join(segments, Separator)
}
