package ingest

import (
	"context"

	"cloud.google.com/go/storage"
	"golang.org/x/xerrors"
)

// sourceChecker verifies the source object before a load job is submitted.
// It reads object attributes only, never contents: BigQuery pulls the bytes
// itself from the gs:// URI.
type sourceChecker interface {
	check(context.Context) error
}

type defaultChecker struct {
	object *storage.ObjectHandle
	uri    string
}

func newDefaultChecker(s *storage.Client, cfg *Config) sourceChecker {
	return &defaultChecker{
		object: s.Bucket(cfg.Bucket).Object(cfg.ObjectPath),
		uri:    cfg.SourceURI(),
	}
}

func (c *defaultChecker) check(ctx context.Context) error {
	if _, err := c.object.Attrs(ctx); err != nil {
		return xerrors.Errorf("source object %s is unavailable: %w", c.uri, err)
	}

	return nil
}
