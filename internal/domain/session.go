package domain

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// CaptureState represents where the capture state machine currently is
type CaptureState string

const (
	StateIdle       CaptureState = "idle"
	StateCapturing  CaptureState = "capturing"
	StateFinalizing CaptureState = "finalizing"
)

// ResourceType is the request type reported by the browser's request events
type ResourceType string

const (
	ResourceDocument   ResourceType = "document"
	ResourceMainFrame  ResourceType = "main_frame"
	ResourceSubframe   ResourceType = "subframe"
	ResourceSubFrame   ResourceType = "sub_frame"
	ResourceStylesheet ResourceType = "stylesheet"
	ResourceScript     ResourceType = "script"
	ResourceImage      ResourceType = "image"
	ResourceFont       ResourceType = "font"
	ResourceMedia      ResourceType = "media"
	ResourceXHR        ResourceType = "xhr"
	ResourceXMLHTTP    ResourceType = "xmlhttprequest"
	ResourceFetch      ResourceType = "fetch"
	ResourceJSON       ResourceType = "json"
)

// allowedResourceTypes lists the request types worth archiving. Both the
// generic names and the webRequest API names are accepted.
var allowedResourceTypes = map[ResourceType]bool{
	ResourceDocument:   true,
	ResourceMainFrame:  true,
	ResourceSubframe:   true,
	ResourceSubFrame:   true,
	ResourceStylesheet: true,
	ResourceScript:     true,
	ResourceImage:      true,
	ResourceFont:       true,
	ResourceMedia:      true,
	ResourceXHR:        true,
	ResourceXMLHTTP:    true,
	ResourceFetch:      true,
	ResourceJSON:       true,
}

// IsCapturable reports whether resources of this type are archived
func (t ResourceType) IsCapturable() bool {
	return allowedResourceTypes[ResourceType(strings.ToLower(string(t)))]
}

// skippedSchemes are inline or browser-internal URLs that have nothing to fetch
var skippedSchemes = []string{
	"data:",
	"blob:",
	"about:",
	"chrome-extension:",
	"moz-extension:",
	"safari-web-extension:",
	"edge-extension:",
}

// IsSkippedScheme reports whether the URL uses an inline or extension scheme
func IsSkippedScheme(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	for _, scheme := range skippedSchemes {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}

// RequestEvent is one outgoing network request observed in the browser.
// Timestamp is milliseconds since the epoch, as reported by webRequest.
type RequestEvent struct {
	ResourceType ResourceType `json:"type"`
	TabID        int          `json:"tabId"`
	Timestamp    float64      `json:"timestamp,omitempty"`
	URL          string       `json:"url"`
}

// CaptureStatus is the capture state that survives a UI reload
type CaptureStatus struct {
	Active    bool
	BaseURL   string
	FileCount int
	SessionID string
	UpdatedAt time.Time
}

// Session is one capture run. It owns the dedup sets and the alias registry
// used to build archive paths, and is discarded when the capture stops.
type Session struct {
	BaseURL   string
	ID        string
	PageURL   string
	StartedAt time.Time
	TabID     int

	aliases       *AliasRegistry
	capturedPaths map[string]struct{}
	failed        int
	hitURLs       map[string]struct{}
	mu            sync.Mutex
	pendingURLs   map[string]struct{}
}

// NewSession starts a session for the given page and tab
func NewSession(id, pageURL string, tabID int, startedAt time.Time) *Session {
	return &Session{
		BaseURL:       ResolveBaseURL(pageURL),
		ID:            id,
		PageURL:       pageURL,
		StartedAt:     startedAt,
		TabID:         tabID,
		aliases:       NewAliasRegistry(),
		capturedPaths: make(map[string]struct{}),
		hitURLs:       make(map[string]struct{}),
		pendingURLs:   make(map[string]struct{}),
	}
}

// Aliases returns the session's alias registry
func (s *Session) Aliases() *AliasRegistry {
	return s.aliases
}

// Admit marks url as hit and pending. It returns false when the URL was
// already admitted, in which case nothing changes.
func (s *Session) Admit(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, seen := s.hitURLs[url]; seen {
		return false
	}
	s.hitURLs[url] = struct{}{}
	s.pendingURLs[url] = struct{}{}
	return true
}

// Complete moves url out of the pending set and records its archive path
func (s *Session) Complete(url, archivePath string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pendingURLs, url)
	s.capturedPaths[archivePath] = struct{}{}
}

// Fail drops url from the pending set. It stays hit, so it is not retried.
func (s *Session) Fail(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pendingURLs, url)
	s.failed++
}

// Pending returns the URLs currently being fetched, sorted
func (s *Session) Pending() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedKeys(s.pendingURLs)
}

// PendingCount returns the number of URLs currently being fetched
func (s *Session) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pendingURLs)
}

// CapturedPaths returns the archive paths written so far, sorted
func (s *Session) CapturedPaths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedKeys(s.capturedPaths)
}

// CapturedCount returns the number of distinct archive paths written
func (s *Session) CapturedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.capturedPaths)
}

// HitCount returns the number of URLs admitted
func (s *Session) HitCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.hitURLs)
}

// FailedCount returns the number of admitted URLs that could not be captured
func (s *Session) FailedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failed
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
