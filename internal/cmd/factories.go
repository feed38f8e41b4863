package cmd

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/renato0307/sitegrab/internal/adapters/eventsource"
	"github.com/renato0307/sitegrab/internal/adapters/filesaver"
	"github.com/renato0307/sitegrab/internal/adapters/httpfetch"
	"github.com/renato0307/sitegrab/internal/adapters/progress"
	adapterstorage "github.com/renato0307/sitegrab/internal/adapters/storage"
	"github.com/renato0307/sitegrab/internal/adapters/zipsink"
	"github.com/renato0307/sitegrab/internal/ports"
	"github.com/renato0307/sitegrab/internal/services"
)

// ContainerOptions configures the adapters wired by NewContainer
type ContainerOptions struct {
	DBPath               string
	FetchTimeout         time.Duration
	MaxArchiveBytes      int64
	MaxConcurrentFetches int
	OutputDir            string
	UserAgent            string

	// Notifier receives progress events in addition to the broker; may be nil
	Notifier ports.ProgressNotifier
}

// Container holds all dependencies for the application
type Container struct {
	// Adapters
	Broker *progress.Broker
	Hub    *eventsource.Hub
	Saver  *filesaver.Saver

	// Services
	CaptureService *services.CaptureService

	Registry *prometheus.Registry

	// Internal - for cleanup only
	stateRepo *adapterstorage.SQLiteRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(opts ContainerOptions) (*Container, error) {
	stateRepo, err := adapterstorage.NewSQLiteRepository(opts.DBPath)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	hub := eventsource.NewHub()
	broker := progress.NewBroker(progress.DefaultClientBufferSize)
	saver := filesaver.New(opts.OutputDir)
	fetcher := httpfetch.NewClient(nil, httpfetch.Config{
		Timeout:   opts.FetchTimeout,
		UserAgent: opts.UserAgent,
	})
	archives := zipsink.Factory{Options: zipsink.Options{MaxBytes: opts.MaxArchiveBytes}}

	var notifier ports.ProgressNotifier = broker
	if opts.Notifier != nil {
		notifier = progress.Multi{broker, opts.Notifier}
	}

	captureService := services.NewCaptureService(
		hub,
		fetcher,
		archives,
		saver,
		notifier,
		stateRepo,
		services.NewMetrics(registry),
		services.CaptureOptions{MaxConcurrentFetches: opts.MaxConcurrentFetches},
	)

	return &Container{
		Broker:         broker,
		CaptureService: captureService,
		Hub:            hub,
		Registry:       registry,
		Saver:          saver,
		stateRepo:      stateRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	c.Broker.Close()
	if c.stateRepo != nil {
		return c.stateRepo.Close()
	}
	return nil
}
