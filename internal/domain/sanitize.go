package domain

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MaxPathLength is the longest archive path kept verbatim
	MaxPathLength = 256
	// MaxSegmentLength is the longest segment kept verbatim once a path is too long
	MaxSegmentLength = 32
)

// disallowedPathChars matches everything outside the archive path allow-set:
// letters, digits, '.', '/', '_', '-', space and parentheses
var disallowedPathChars = regexp.MustCompile(`[^a-zA-Z0-9./_\- ()]`)

var errInvalidUTF8 = errors.New("decoded path is not valid UTF-8")

// PathSanitizer turns a decoded URL path fragment into a filesystem-safe
// relative archive path. Overlength segments are replaced with aliases from
// the registry, so output depends on the input and on the registry state.
type PathSanitizer struct {
	aliases *AliasRegistry
}

// NewPathSanitizer creates a sanitizer backed by the given alias registry.
// A nil registry gets a private one.
func NewPathSanitizer(aliases *AliasRegistry) *PathSanitizer {
	if aliases == nil {
		aliases = NewAliasRegistry()
	}
	return &PathSanitizer{aliases: aliases}
}

// Sanitize decodes, strips the query, replaces disallowed characters and
// shortens long paths. Malformed percent-encoding yields *InvalidPathError.
func (s *PathSanitizer) Sanitize(raw string) (string, error) {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", &InvalidPathError{Path: raw, Err: err}
	}
	if !utf8.ValidString(decoded) {
		return "", &InvalidPathError{Path: raw, Err: errInvalidUTF8}
	}

	decoded, _, _ = strings.Cut(decoded, "?")
	sanitized := disallowedPathChars.ReplaceAllString(decoded, "_")

	return s.shortenLongPath(sanitized), nil
}

// shortenLongPath aliases every segment over MaxSegmentLength when the whole
// path exceeds MaxPathLength. Shorter paths are returned untouched.
func (s *PathSanitizer) shortenLongPath(path string) string {
	if len(path) <= MaxPathLength {
		return path
	}

	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if len(segment) > MaxSegmentLength {
			segments[i] = s.aliases.Alias(segment)
		}
	}
	return strings.Join(segments, "/")
}
