// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backup

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/talos-vault/internal/config"
	"github.com/MKhiriev/talos-vault/internal/logger"
)

type recordedPut struct {
	method string
	path   string
	body   []byte
	auth   string
}

func newFakeS3(t *testing.T, status int) (*httptest.Server, func() []recordedPut) {
	t.Helper()
	var (
		mu   sync.Mutex
		puts []recordedPut
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		puts = append(puts, recordedPut{method: r.Method, path: r.URL.Path, body: body, auth: r.Header.Get("Authorization")})
		mu.Unlock()

		if status != http.StatusOK {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(status)
			io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>denied</Message></Error>`)
			return
		}
		w.Header().Set("ETag", `"abc"`)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	return srv, func() []recordedPut {
		mu.Lock()
		defer mu.Unlock()
		return append([]recordedPut(nil), puts...)
	}
}

func testConfig(endpoint string) config.Backup {
	return config.Backup{
		S3Bucket:    "snapshots",
		S3Prefix:    "/talos/",
		S3Region:    "us-east-1",
		S3Endpoint:  endpoint,
		S3AccessKey: "minio",
		S3SecretKey: "minio123",
		Interval:    time.Hour,
	}
}

func TestObjectKey(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 30, 0, 0, time.FixedZone("X", 3600))

	assert.Equal(t, "talos/talos_backup-2026-03-01T11:30:00Z.zip", ObjectKey("talos", at))
	assert.Equal(t, "talos_backup-2026-03-01T11:30:00Z.zip", ObjectKey("", at))
}

func TestNewS3Uploader_RequiresBucket(t *testing.T) {
	_, err := NewS3Uploader(context.Background(), config.Backup{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoBucket)
}

func TestS3Uploader_Upload(t *testing.T) {
	srv, puts := newFakeS3(t, http.StatusOK)

	u, err := NewS3Uploader(context.Background(), testConfig(srv.URL), logger.Nop())
	require.NoError(t, err)

	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	key, err := u.Upload(context.Background(), []byte("PKZIP"), at)
	require.NoError(t, err)
	assert.Equal(t, "talos/talos_backup-2026-03-01T00:00:00Z.zip", key)

	got := puts()
	require.Len(t, got, 1)
	assert.Equal(t, http.MethodPut, got[0].method)
	assert.Equal(t, "/snapshots/talos/talos_backup-2026-03-01T00:00:00Z.zip", got[0].path)
	assert.Equal(t, "PKZIP", string(got[0].body))
	assert.Contains(t, got[0].auth, "Credential=minio/")
}

func TestS3Uploader_UploadRejected(t *testing.T) {
	srv, _ := newFakeS3(t, http.StatusForbidden)

	u, err := NewS3Uploader(context.Background(), testConfig(srv.URL), logger.Nop())
	require.NoError(t, err)

	_, err = u.Upload(context.Background(), []byte("PKZIP"), time.Now())
	assert.Error(t, err)
}
