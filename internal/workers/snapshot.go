// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"bytes"
	"context"
	"time"

	"github.com/MKhiriev/talos-vault/internal/backup"
	"github.com/MKhiriev/talos-vault/internal/logger"
)

// SnapshotWorker exports the tree every interval and hands the archive to an
// uploader. Failures are logged and retried on the next tick only.
type SnapshotWorker struct {
	exporter SnapshotExporter
	uploader backup.Uploader
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewSnapshotWorker(exporter SnapshotExporter, uploader backup.Uploader, interval time.Duration, logger *logger.Logger) *SnapshotWorker {
	return &SnapshotWorker{
		exporter: exporter,
		uploader: uploader,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (w *SnapshotWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("snapshot worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("snapshot worker stopped")
			return
		case <-ticker.C:
			w.ship(ctx)
		}
	}
}

func (w *SnapshotWorker) ship(ctx context.Context) {
	var buf bytes.Buffer
	if err := w.exporter.ExportSnapshot(ctx, &buf); err != nil {
		w.logger.Err(err).Msg("snapshot export failed")
		return
	}

	if _, err := w.uploader.Upload(ctx, buf.Bytes(), w.now()); err != nil {
		w.logger.Err(err).Msg("snapshot upload failed")
	}
}
