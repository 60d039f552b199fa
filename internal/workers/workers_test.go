// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/talos-vault/internal/logger"
)

// mockWorker counts Run calls and returns once ctx is done.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}
	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should not block or panic with no workers
	NewWorkers().Run(context.Background())
	(&Workers{}).Run(context.Background())
}

// ─────────────────────────────────────────────
// SnapshotWorker
// ─────────────────────────────────────────────

type fakeExporter struct {
	err error
}

func (f *fakeExporter) ExportSnapshot(_ context.Context, w io.Writer) error {
	if f.err != nil {
		return f.err
	}
	_, err := w.Write([]byte("ZIP"))
	return err
}

type fakeUploader struct {
	mu      sync.Mutex
	uploads [][]byte
	at      []time.Time
	err     error
}

func (f *fakeUploader) Upload(_ context.Context, snapshot []byte, createdAt time.Time) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, append([]byte(nil), snapshot...))
	f.at = append(f.at, createdAt)
	return "key", f.err
}

func (f *fakeUploader) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.uploads)
}

func TestSnapshotWorker_ShipsOnEveryTick(t *testing.T) {
	uploader := &fakeUploader{}
	w := NewSnapshotWorker(&fakeExporter{}, uploader, 10*time.Millisecond, logger.Nop())
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	w.now = func() time.Time { return fixed }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.Eventually(t, func() bool { return uploader.count() >= 2 }, 2*time.Second, 5*time.Millisecond)

	uploader.mu.Lock()
	defer uploader.mu.Unlock()
	assert.Equal(t, "ZIP", string(uploader.uploads[0]))
	assert.Equal(t, fixed, uploader.at[0])
}

func TestSnapshotWorker_ExportFailureSkipsUpload(t *testing.T) {
	uploader := &fakeUploader{}
	w := NewSnapshotWorker(&fakeExporter{err: errors.New("disk")}, uploader, time.Millisecond, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	w.Run(ctx)

	assert.Zero(t, uploader.count())
}

func TestSnapshotWorker_UploadFailureKeepsRunning(t *testing.T) {
	uploader := &fakeUploader{err: errors.New("s3 down")}
	w := NewSnapshotWorker(&fakeExporter{}, uploader, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.Eventually(t, func() bool { return uploader.count() >= 3 }, 2*time.Second, 5*time.Millisecond)
}
