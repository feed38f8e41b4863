package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/renato0307/sitegrab/internal/domain"
	"github.com/renato0307/sitegrab/internal/logging"
	"github.com/renato0307/sitegrab/internal/ports"
)

// DefaultMaxConcurrentFetches is the in-flight download limit used when none is configured
const DefaultMaxConcurrentFetches = 8

// CaptureService runs capture sessions: it admits observed requests, fetches
// them, places them in the session archive and finalizes the archive on stop.
// At most one session is live at a time.
type CaptureService struct {
	archives   ports.ArchiveFactory
	fetchLimit *semaphore.Weighted
	fetcher    ports.Fetcher
	metrics    *Metrics
	newID      func() string
	normalizer domain.URLNormalizer
	notifier   ports.ProgressNotifier
	now        func() time.Time
	saver      ports.ArchiveSaver
	source     ports.RequestSource
	stateRepo  ports.CaptureStateRepository

	active *activeCapture
	mu     sync.Mutex
	state  domain.CaptureState
}

// activeCapture holds everything owned by the live session
type activeCapture struct {
	ctx          context.Context
	cancel       context.CancelFunc
	log          *slog.Logger
	sanitizer    *domain.PathSanitizer
	session      *domain.Session
	sink         ports.ArchiveSink
	subscription ports.Subscription
	tasks        *errgroup.Group
}

// NewCaptureService creates a new CaptureService
func NewCaptureService(
	source ports.RequestSource,
	fetcher ports.Fetcher,
	archives ports.ArchiveFactory,
	saver ports.ArchiveSaver,
	notifier ports.ProgressNotifier,
	stateRepo ports.CaptureStateRepository,
	metrics *Metrics,
	opts CaptureOptions,
) *CaptureService {
	limit := opts.MaxConcurrentFetches
	if limit <= 0 {
		limit = DefaultMaxConcurrentFetches
	}
	normalizer := opts.Normalizer
	if normalizer == nil {
		normalizer = domain.SubstringNormalizer{}
	}

	return &CaptureService{
		archives:   archives,
		fetchLimit: semaphore.NewWeighted(int64(limit)),
		fetcher:    fetcher,
		metrics:    metrics,
		newID:      func() string { return uuid.New().String() },
		normalizer: normalizer,
		notifier:   notifier,
		now:        time.Now,
		saver:      saver,
		source:     source,
		stateRepo:  stateRepo,
		state:      domain.StateIdle,
	}
}

// Start begins a capture session for the page loaded in tabID.
// Returns an error wrapping domain.ErrAlreadyCapturing while a session is live.
func (s *CaptureService) Start(ctx context.Context, pageURL string, tabID int) (*domain.Session, error) {
	s.mu.Lock()

	if s.state != domain.StateIdle {
		s.mu.Unlock()
		logging.Logger.Info("Capture already in progress, ignoring start request",
			"page_url", pageURL,
			"tab_id", tabID,
			"state", s.state)
		return nil, domain.ErrAlreadyCapturing
	}

	session := domain.NewSession(s.newID(), pageURL, tabID, s.now())

	subscription, err := s.source.Subscribe(tabID, s.HandleRequest)
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("failed to subscribe to request events: %w", err)
	}

	// Fetch tasks outlive the start command's context and run until Stop has drained them
	taskCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	log := logging.ForSession(session.ID)
	s.active = &activeCapture{
		ctx:          taskCtx,
		cancel:       cancel,
		log:          log,
		sanitizer:    domain.NewPathSanitizer(session.Aliases()),
		session:      session,
		sink:         s.archives.NewArchive(),
		subscription: subscription,
		tasks:        &errgroup.Group{},
	}
	s.state = domain.StateCapturing
	s.mu.Unlock()

	log.Info("Capture session started",
		"page_url", pageURL,
		"base_url", session.BaseURL,
		"tab_id", tabID)

	if err := s.stateRepo.SetActive(ctx, true, session.ID, session.BaseURL); err != nil {
		log.Warn("Failed to persist capture state", "error", err)
	}
	if err := s.stateRepo.SetFileCount(ctx, 0); err != nil {
		log.Warn("Failed to reset persisted file count", "error", err)
	}

	s.notifier.SessionStarted()
	return session, nil
}

// HandleRequest applies the admission filter to an observed request and,
// when admitted, captures it asynchronously
func (s *CaptureService) HandleRequest(event domain.RequestEvent) {
	s.mu.Lock()

	reason := s.rejectReason(event)
	if reason == "" && !s.active.session.Admit(event.URL) {
		reason = RejectDuplicate
	}
	if reason != "" {
		s.mu.Unlock()
		s.metrics.rejected(reason)
		logging.Logger.Debug("Request not admitted",
			"url", event.URL,
			"type", event.ResourceType,
			"tab_id", event.TabID,
			"reason", reason)
		return
	}

	run := s.active
	s.metrics.admitted()
	// Registered under the lock so Stop's drain sees every admitted task
	run.tasks.Go(func() error {
		s.capture(run, event.URL)
		return nil
	})
	s.mu.Unlock()

	run.log.Debug("Request admitted",
		"url", event.URL,
		"type", event.ResourceType)
	s.notifyPending(run.session)
}

// rejectReason returns why an event is not admitted, or "" when it passes
// every check except dedup. Must be called with s.mu held.
func (s *CaptureService) rejectReason(event domain.RequestEvent) string {
	switch {
	case s.state != domain.StateCapturing || s.active == nil:
		return RejectNotCapturing
	case event.TabID != s.active.session.TabID:
		return RejectOtherTab
	case !event.ResourceType.IsCapturable():
		return RejectResourceType
	case domain.IsSkippedScheme(event.URL):
		return RejectScheme
	default:
		return ""
	}
}

// capture fetches one admitted URL and writes it into the session archive.
// Failures are logged and counted; they never end the session.
func (s *CaptureService) capture(run *activeCapture, url string) {
	if err := s.fetchLimit.Acquire(run.ctx, 1); err != nil {
		s.recordFailure(run, url, err)
		return
	}
	defer s.fetchLimit.Release(1)

	archivePath, size, err := s.captureResource(run, url)
	if err != nil {
		s.recordFailure(run, url, err)
		return
	}

	run.session.Complete(url, archivePath)
	s.metrics.captured(size)

	run.log.Debug("Resource captured",
		"url", url,
		"path", archivePath,
		"size", size)

	if err := s.stateRepo.SetFileCount(run.ctx, run.session.CapturedCount()); err != nil {
		run.log.Warn("Failed to persist file count", "error", err)
	}

	s.notifier.FileCaptured(archivePath)
	s.notifyPending(run.session)
}

// captureResource returns the archive path and size of the stored body
func (s *CaptureService) captureResource(run *activeCapture, url string) (string, int, error) {
	result, err := s.fetcher.Fetch(run.ctx, url)
	if err != nil {
		var fetchErr *domain.FetchError
		if !errors.As(err, &fetchErr) {
			err = &domain.FetchError{URL: url, Err: err}
		}
		return "", 0, err
	}
	if !result.OK() {
		return "", 0, &domain.FetchError{URL: url, StatusCode: result.StatusCode}
	}

	path, err := archivePath(s.normalizer, run.session.BaseURL, url, run.sanitizer)
	if err != nil {
		return "", 0, err
	}

	if err := run.sink.Put(path, result.Body); err != nil {
		return "", 0, fmt.Errorf("failed to add %s to archive: %w", path, err)
	}

	return path, len(result.Body), nil
}

// archivePath maps a resource URL to its path inside the archive
func archivePath(normalizer domain.URLNormalizer, baseURL, url string, sanitizer *domain.PathSanitizer) (string, error) {
	relative := normalizer.Normalize(baseURL, url)
	sanitized, err := sanitizer.Sanitize(relative)
	if err != nil {
		return "", err
	}
	return domain.CompleteDirectoryPath(sanitized), nil
}

func (s *CaptureService) recordFailure(run *activeCapture, url string, err error) {
	run.session.Fail(url)
	s.metrics.failed(failureKind(err))

	run.log.Warn("Failed to capture resource",
		"url", url,
		"error", err)

	s.notifyPending(run.session)
}

func failureKind(err error) string {
	var fetchErr *domain.FetchError
	var pathErr *domain.InvalidPathError
	switch {
	case errors.Is(err, domain.ErrBodyTooLarge):
		return FailureBodyTooLarge
	case errors.As(err, &fetchErr) && fetchErr.IsNetwork():
		return FailureNetwork
	case errors.As(err, &fetchErr):
		return FailureStatus
	case errors.As(err, &pathErr):
		return FailureInvalidPath
	case errors.Is(err, context.Canceled):
		return FailureNetwork
	default:
		return FailureArchive
	}
}

func (s *CaptureService) notifyPending(session *domain.Session) {
	pending := session.Pending()
	s.notifier.PendingCountChanged(len(pending), pending)
}

// Stop ends the live session: it stops listening for requests, waits for
// in-flight fetches, finalizes the archive and hands it to the saver.
// The service is idle again when Stop returns, whatever the outcome.
// Cancelling ctx does not abort the drain or the save; an admitted resource
// is bounded by the fetcher's own timeout.
// Returns an error wrapping domain.ErrNotCapturing when no session is live.
func (s *CaptureService) Stop(ctx context.Context) (*StopResult, error) {
	s.mu.Lock()
	if s.state != domain.StateCapturing {
		state := s.state
		s.mu.Unlock()
		logging.Logger.Info("No capture in progress, ignoring stop request", "state", state)
		return nil, domain.ErrNotCapturing
	}
	run := s.active
	s.state = domain.StateFinalizing
	s.mu.Unlock()

	ctx = context.WithoutCancel(ctx)
	log := run.log
	defer func() {
		run.cancel()
		s.mu.Lock()
		s.active = nil
		s.state = domain.StateIdle
		s.mu.Unlock()
	}()

	log.Info("Stopping capture session",
		"pending", run.session.PendingCount())

	run.subscription.Unsubscribe()

	if err := s.stateRepo.SetActive(ctx, false, run.session.ID, run.session.BaseURL); err != nil {
		log.Warn("Failed to persist capture state", "error", err)
	}

	// Drain in-flight fetches so none race the finalization
	_ = run.tasks.Wait()

	// Concurrent captures may persist counts out of order
	if err := s.stateRepo.SetFileCount(ctx, run.session.CapturedCount()); err != nil {
		log.Warn("Failed to persist file count", "error", err)
	}

	result := &StopResult{
		BaseURL:     run.session.BaseURL,
		FailedCount: run.session.FailedCount(),
		FileCount:   run.session.CapturedCount(),
		SessionID:   run.session.ID,
	}

	if err := s.finalize(ctx, run, result); err != nil {
		log.Error("Capture session failed", "error", err)
		s.notifier.SessionError(err.Error())
		return result, err
	}

	log.Info("Capture session saved",
		"archive", result.SavedTo,
		"files", result.FileCount,
		"failed", result.FailedCount,
		"size", result.ArchiveSize)

	s.metrics.sessionFinished(OutcomeSaved)
	s.notifier.SessionStopped()
	return result, nil
}

func (s *CaptureService) finalize(ctx context.Context, run *activeCapture, result *StopResult) error {
	data, err := run.sink.Finalize()
	if err != nil {
		s.metrics.sessionFinished(OutcomeFinalizeFailed)
		return &domain.FinalizeError{Err: err}
	}
	result.ArchiveSize = len(data)
	result.ArchiveName = domain.ArchiveName(run.session.BaseURL, run.sanitizer)

	savedTo, err := s.saver.Save(ctx, result.ArchiveName, data)
	if err != nil {
		s.metrics.sessionFinished(OutcomeSaveFailed)
		return &domain.SaveError{Filename: result.ArchiveName, Err: err}
	}
	result.SavedTo = savedTo
	return nil
}

// Shutdown finalizes a live session, if any, before the process exits
func (s *CaptureService) Shutdown(ctx context.Context) error {
	_, err := s.Stop(ctx)
	if errors.Is(err, domain.ErrNotCapturing) {
		return nil
	}
	return err
}

// Status returns a snapshot of the service together with the persisted status
func (s *CaptureService) Status(ctx context.Context) CaptureStatus {
	s.mu.Lock()
	status := CaptureStatus{State: s.state}
	if s.active != nil {
		session := s.active.session
		status.BaseURL = session.BaseURL
		status.FailedCount = session.FailedCount()
		status.FileCount = session.CapturedCount()
		status.PendingURLs = session.Pending()
		status.SessionID = session.ID
		status.TabID = session.TabID
	}
	s.mu.Unlock()

	persisted, err := s.stateRepo.Load(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to load persisted capture state", "error", err)
	} else {
		status.Persisted = persisted
	}

	return status
}

// Resolve shows where resourceURL would be archived for a capture started
// on pageURL. Aliases come from a throwaway registry.
func (s *CaptureService) Resolve(pageURL, resourceURL string) (*PathResolution, error) {
	return ResolvePath(s.normalizer, pageURL, resourceURL)
}

// ResolvePath is Resolve for callers without a service. A nil normalizer uses
// domain.SubstringNormalizer.
func ResolvePath(normalizer domain.URLNormalizer, pageURL, resourceURL string) (*PathResolution, error) {
	if normalizer == nil {
		normalizer = domain.SubstringNormalizer{}
	}
	baseURL := domain.ResolveBaseURL(pageURL)

	path, err := archivePath(normalizer, baseURL, resourceURL, domain.NewPathSanitizer(nil))
	if err != nil {
		return nil, err
	}

	return &PathResolution{
		ArchivePath: path,
		BaseURL:     baseURL,
		Normalized:  normalizer.Normalize(baseURL, resourceURL),
		ResourceURL: resourceURL,
	}, nil
}
