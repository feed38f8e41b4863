package domain

import (
	"net/url"
	"strings"
)

// IndexDocument is the archive path the base URL itself maps to
const IndexDocument = "index.html"

// URLNormalizer maps an observed resource URL to a path relative to the base URL
type URLNormalizer interface {
	Normalize(baseURL, resourceURL string) string
}

// SubstringNormalizer matches the base URL anywhere inside the resource URL.
// A resource that does not contain the base is returned unchanged so that
// cross-origin files are archived under their full URL.
//
// Containment is deliberately loose: a base that recurs inside another URL
// (mirrored path segments, redirect parameters) is still treated as a match.
type SubstringNormalizer struct{}

var _ URLNormalizer = SubstringNormalizer{}

// Normalize returns the part of resourceURL following the first occurrence of
// baseURL, or IndexDocument when nothing follows it.
func (SubstringNormalizer) Normalize(baseURL, resourceURL string) string {
	candidate := canonicalOrigin(resourceURL)
	if baseURL == "" || !strings.Contains(candidate, baseURL) {
		return resourceURL
	}

	_, rest, _ := strings.Cut(candidate, baseURL)
	if rest == "" {
		return IndexDocument
	}
	return rest
}

// canonicalOrigin gives origin-only URLs their implicit root path, so
// "https://example.com" and "https://example.com/" compare equal.
func canonicalOrigin(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	if u.Path == "" && u.RawPath == "" && u.RawQuery == "" && u.Fragment == "" && !u.ForceQuery {
		return rawURL + "/"
	}
	return rawURL
}
