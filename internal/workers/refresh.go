// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
)

type refreshWorker struct {
	job service.ClientSessionRefreshJob
	cfg config.ClientWorkers
}

// NewRefreshWorker runs job with the configured interval and margin.
func NewRefreshWorker(job service.ClientSessionRefreshJob, cfg config.ClientWorkers) Worker {
	return &refreshWorker{job: job, cfg: cfg}
}

func (r *refreshWorker) Start(ctx context.Context) error {
	r.job.Start(ctx, r.cfg.RefreshInterval, r.cfg.RefreshMargin)
	return nil
}

func (r *refreshWorker) Stop() {
	r.job.Stop()
}
