package labels

import (
	"context"
	"fmt"
	"strings"

	"github.com/douhashi/gh-labels/internal/github"
	"github.com/douhashi/gh-labels/internal/logger"
	"github.com/google/uuid"
)

// LabelService is the subset of the GitHub API the synchronizer needs.
type LabelService interface {
	ListLabels(ctx context.Context, repo github.Repo) ([]github.Label, error)
	DeleteLabel(ctx context.Context, repo github.Repo, name string) error
	CreateLabel(ctx context.Context, repo github.Repo, label github.Label) error
}

// ServiceFactory builds a LabelService once the options have been validated.
type ServiceFactory func(opts Options) (LabelService, error)

// Options describes one synchronization run.
type Options struct {
	Username  string
	Repo      string
	Token     string
	UserAgent string
	// CleanExisting deletes every existing label before creating the
	// catalog. nil means true.
	CleanExisting *bool
}

// Validate returns a ConfigError listing every missing required field.
func (o Options) Validate() error {
	var missing []string
	if strings.TrimSpace(o.Username) == "" {
		missing = append(missing, "username")
	}
	if strings.TrimSpace(o.Repo) == "" {
		missing = append(missing, "repo")
	}
	if o.Token == "" {
		missing = append(missing, "token")
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}

func (o Options) cleanExisting() bool {
	return o.CleanExisting == nil || *o.CleanExisting
}

func (o Options) userAgent() string {
	if o.UserAgent == "" {
		return github.DefaultUserAgent
	}
	return o.UserAgent
}

// Report summarizes a synchronization run.
type Report struct {
	RunID    string
	Existing int
	Cleaned  bool
	Deleted  DeleteReport
	Created  CreateReport
}

// Result is delivered by SyncAsync.
type Result struct {
	Report *Report
	Err    error
}

// Synchronizer replaces the labels of a repository with the catalog.
type Synchronizer struct {
	newService ServiceFactory
	logger     logger.Logger
	batcher    *Batcher
	catalog    []github.Label
}

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithServiceFactory sets how the LabelService is built.
func WithServiceFactory(f ServiceFactory) Option {
	return func(s *Synchronizer) {
		s.newService = f
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Synchronizer) {
		s.logger = l
	}
}

// WithBatcher overrides the batching parameters.
func WithBatcher(b *Batcher) Option {
	return func(s *Synchronizer) {
		s.batcher = b
	}
}

// NewSynchronizer creates a Synchronizer. Without WithServiceFactory it talks
// to api.github.com.
func NewSynchronizer(opts ...Option) *Synchronizer {
	s := &Synchronizer{
		logger:  logger.NewNop(),
		batcher: NewBatcher(),
		catalog: Catalog(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.newService == nil {
		s.newService = DefaultServiceFactory(s.logger)
	}
	return s
}

// DefaultServiceFactory returns a factory building a REST client for
// api.github.com with the options' token and user agent.
func DefaultServiceFactory(log logger.Logger, clientOpts ...github.ClientOption) ServiceFactory {
	return func(opts Options) (LabelService, error) {
		all := append([]github.ClientOption{
			github.WithUserAgent(opts.userAgent()),
			github.WithLogger(log),
		}, clientOpts...)
		client, err := github.NewClient(opts.Token, all...)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}

// Sync lists the existing labels, deletes them when CleanExisting is set
// and creates the catalog. The first unrecovered error is returned; work
// already done is not rolled back.
func (s *Synchronizer) Sync(ctx context.Context, opts Options) (*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	service, err := s.newService(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	repo := github.Repo{Owner: opts.Username, Name: opts.Repo}
	report := &Report{RunID: uuid.NewString()}
	log := s.logger.WithFields("run_id", report.RunID, "repository", repo.String())

	if err := s.run(ctx, service, repo, opts.cleanExisting(), report, log); err != nil {
		log.Error("Operation failed", "error", err)
		return report, err
	}

	log.Info("All labels have been successfully created",
		"created", report.Created.Created,
		"already_exists", report.Created.AlreadyExists,
		"deleted", report.Deleted.Deleted,
	)
	return report, nil
}

func (s *Synchronizer) run(ctx context.Context, service LabelService, repo github.Repo, clean bool, report *Report, log logger.Logger) error {
	log.Info("Fetching existing labels")
	existing, err := service.ListLabels(ctx, repo)
	if err != nil {
		return err
	}
	report.Existing = len(existing)

	if clean {
		log.Info("Cleaning existing labels", "count", len(existing), "batches", s.batcher.Batches(len(existing)))
		report.Cleaned = true
		report.Deleted, err = NewDeleter(service, s.batcher, log).DeleteAll(ctx, repo, existing)
		if err != nil {
			return fmt.Errorf("failed to clean labels: %w", err)
		}
	}

	log.Info("Creating new labels", "count", len(s.catalog), "batches", s.batcher.Batches(len(s.catalog)))
	report.Created, err = NewCreator(service, s.batcher, log).CreateAll(ctx, repo, s.catalog)
	if err != nil {
		return fmt.Errorf("failed to create labels: %w", err)
	}

	return nil
}

// SyncAsync runs Sync in a goroutine. The returned channel receives exactly
// one Result and is then closed.
func (s *Synchronizer) SyncAsync(ctx context.Context, opts Options) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		report, err := s.Sync(ctx, opts)
		ch <- Result{Report: report, Err: err}
	}()
	return ch
}

// SyncWithCallback runs Sync in a goroutine and calls done with its error.
func (s *Synchronizer) SyncWithCallback(ctx context.Context, opts Options, done func(error)) {
	go func() {
		_, err := s.Sync(ctx, opts)
		if done != nil {
			done(err)
		}
	}()
}
