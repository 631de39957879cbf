package ingest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type triggerResponse struct {
	Data int64 `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Trigger handles the load request: verify the source object, submit the
// load job, block until it reaches a terminal state, and answer with the
// destination table's row count.
func (s *Service) Trigger(w http.ResponseWriter, r *http.Request) {
	// A disconnected caller must not cancel the load job, so the work runs
	// detached from the request context. Context values (request logger,
	// request id) survive.
	ctx := context.WithoutCancel(r.Context())
	l := log.Ctx(ctx)

	started := time.Now()
	l.Info().
		Str("source", s.cfg.SourceURI()).
		Str("table", s.cfg.TableID()).
		Msg("load started")

	rows, err := s.run(ctx)
	s.notify(ctx, rows, err)

	l.Info().Dur("elapsed", time.Since(started)).Msg("load finished")

	if err != nil {
		l.Error().Msgf("load failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, triggerResponse{Data: rows})
}

func (s *Service) run(ctx context.Context) (int64, error) {
	if err := s.checker.check(ctx); err != nil {
		return 0, err
	}

	return s.loader.load(ctx)
}

func (s *Service) notify(ctx context.Context, rows int64, err error) {
	if s.notifier == nil {
		return
	}

	r := &Result{
		Source: s.cfg.SourceURI(),
		Table:  s.cfg.TableID(),
		Rows:   rows,
		Error:  err,
	}

	if nerr := s.notifier.Notify(ctx, r); nerr != nil {
		log.Ctx(ctx).Error().Msgf("failed to notify: %v", nerr)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
