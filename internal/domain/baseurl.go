package domain

import "strings"

// ResolveBaseURL derives the canonical site root from the page a capture starts on.
// - Query strings and fragments are discarded first
// - A trailing .html document is dropped, keeping its directory
// - A URL without a trailing slash gets one
func ResolveBaseURL(pageURL string) string {
	if i := strings.IndexAny(pageURL, "?#"); i >= 0 {
		return ResolveBaseURL(pageURL[:i])
	}

	switch {
	case strings.HasSuffix(pageURL, ".html"):
		segments := strings.Split(pageURL, "/")
		return strings.Join(segments[:len(segments)-1], "/") + "/"
	case !strings.HasSuffix(pageURL, "/"):
		return pageURL + "/"
	default:
		return pageURL
	}
}
