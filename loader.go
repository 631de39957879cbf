package ingest

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"
)

// loader runs one load job and reports the destination table's resulting
// row count.
type loader interface {
	load(context.Context) (int64, error)
}

type defaultLoader struct {
	table *bigquery.Table
	uri   string
}

func newDefaultLoader(bq *bigquery.Client, cfg *Config) loader {
	return &defaultLoader{
		table: bq.Dataset(cfg.Dataset).Table(cfg.Table),
		uri:   cfg.SourceURI(),
	}
}

func (l *defaultLoader) load(ctx context.Context) (int64, error) {
	gcs := bigquery.NewGCSReference(l.uri)
	gcs.SourceFormat = bigquery.CSV
	gcs.SkipLeadingRows = 1

	ld := l.table.LoaderFrom(gcs)
	ld.WriteDisposition = bigquery.WriteTruncate

	job, err := ld.Run(ctx)
	if err != nil {
		return 0, xerrors.Errorf("failed to run load job for %s: %w", l.uri, err)
	}

	status, err := job.Wait(ctx)
	if err != nil {
		return 0, xerrors.Errorf("failed to wait for load job %s: %w", job.ID(), err)
	}

	if status.Err() != nil {
		log.Ctx(ctx).Error().Msgf("load job failed: %v", status.Errors)
		return 0, xerrors.Errorf("load job %s failed: %w", job.ID(), status.Err())
	}

	md, err := l.table.Metadata(ctx)
	if err != nil {
		return 0, xerrors.Errorf("failed to fetch metadata of %s: %w", l.table.FullyQualifiedName(), err)
	}

	return int64(md.NumRows), nil
}
