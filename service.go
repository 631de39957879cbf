package ingest

import (
	"context"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/storage"
	"github.com/rs/zerolog"
	"golang.org/x/xerrors"
)

// Service triggers BigQuery load jobs for a fixed source object and
// destination table.
type Service struct {
	cfg *Config

	logger        zerolog.Logger
	logLevel      string
	prettyLogging bool

	checker  sourceChecker
	loader   loader
	notifier Notifier
}

// New builds a Service. The BigQuery and Cloud Storage clients are created
// once here and shared by every request.
func New(ctx context.Context, cfg *Config, opts ...Option) (*Service, error) {
	s := &Service{
		cfg:           cfg,
		logLevel:      cfg.LogLevel,
		prettyLogging: cfg.LogPretty,
	}

	for _, o := range opts {
		if err := o.apply(s); err != nil {
			return nil, err
		}
	}

	logger, err := newLogger(s.logLevel, s.prettyLogging)
	if err != nil {
		return nil, err
	}
	s.logger = logger

	if s.loader == nil {
		bq, err := bigquery.NewClient(ctx, cfg.ProjectID)
		if err != nil {
			return nil, xerrors.Errorf("failed to build bigquery client for %s: %w", cfg.ProjectID, err)
		}
		s.loader = newDefaultLoader(bq, cfg)
	}

	if s.checker == nil {
		st, err := storage.NewClient(ctx)
		if err != nil {
			return nil, xerrors.Errorf("failed to build storage client: %w", err)
		}
		s.checker = newDefaultChecker(st, cfg)
	}

	if s.notifier == nil && cfg.SlackEnabled() {
		s.notifier = &SlackNotifier{
			Token:   cfg.SlackToken,
			Channel: cfg.SlackChannel,
		}
	}

	return s, nil
}

// Logger returns the service logger for use by the HTTP server.
func (s *Service) Logger() zerolog.Logger {
	return s.logger
}
