package domain

import (
	"net/url"
	"strings"
)

// DefaultArchiveName is used when no host can be read from the base URL
const DefaultArchiveName = "downloaded-site"

// ArchiveExtension is appended to every suggested archive file name
const ArchiveExtension = ".zip"

// ArchiveName suggests a human-readable file name for a finished capture,
// derived from the base URL's host
func ArchiveName(baseURL string, sanitizer *PathSanitizer) string {
	name := DefaultArchiveName

	u, err := url.Parse(baseURL)
	if err == nil && u.Hostname() != "" {
		if host, err := sanitizer.Sanitize(u.Hostname()); err == nil && host != "" {
			name = host
		}
	}

	return name + ArchiveExtension
}

// CompleteDirectoryPath points directory-like archive paths at their index
// document so the response body is stored as a file
func CompleteDirectoryPath(path string) string {
	if path == "" || strings.HasSuffix(path, "/") {
		return path + IndexDocument
	}
	return path
}
