package workers

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

type Workers struct {
	workers []Worker
	started []Worker

	logger *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Start starts every worker in order. A worker that fails to start is
// skipped; the others keep running and the joined error is returned.
func (w *Workers) Start(ctx context.Context) error {
	var errs []error
	for _, worker := range w.workers {
		if err := worker.Start(ctx); err != nil {
			w.logger.Warn().Err(err).Msg("worker failed to start")
			errs = append(errs, err)
			continue
		}
		w.started = append(w.started, worker)
	}
	return errors.Join(errs...)
}

// Stop stops the started workers in reverse order.
func (w *Workers) Stop() {
	for i := len(w.started) - 1; i >= 0; i-- {
		w.started[i].Stop()
	}
	w.started = nil
}
