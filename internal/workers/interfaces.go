// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the tree engine's background jobs.
// It defines the Worker interface and a Workers aggregate that runs several
// workers side by side until their context is cancelled.
package workers

import (
	"context"
	"io"
)

// Worker is a background job. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// SnapshotExporter produces a full snapshot of the secret tree.
type SnapshotExporter interface {
	ExportSnapshot(ctx context.Context, w io.Writer) error
}
