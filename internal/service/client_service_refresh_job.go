package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

type clientSessionRefreshJob struct {
	authService ClientAuthService
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSessionRefreshJob creates a job that calls
// authService.RefreshSession on a ticker. The job is idle until Start is
// called.
func NewClientSessionRefreshJob(authService ClientAuthService, log *logger.Logger) ClientSessionRefreshJob {
	return &clientSessionRefreshJob{authService: authService, logger: log}
}

func (j *clientSessionRefreshJob) Start(ctx context.Context, interval, margin time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				refreshed, err := j.authService.RefreshSession(jobCtx, margin)
				if err != nil {
					j.logger.Warn().Err(err).Str("func", "clientSessionRefreshJob").Msg("session refresh failed")
					continue
				}
				if refreshed {
					j.logger.Debug().Str("func", "clientSessionRefreshJob").Msg("session refreshed")
				}
			}
		}
	}()
}

// Stop is a no-op when the job is not running.
func (j *clientSessionRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
