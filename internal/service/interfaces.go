// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/talos-vault/models"
)

// TreeService is the secret tree engine: ciphertext on disk, plaintext only
// in transit to and from the custodian.
type TreeService interface {
	ListTree(ctx context.Context) ([]models.TreeNode, error)

	// DecryptEntry returns the plaintext at path. Unless reveal is set the
	// first line is replaced by [RedactionMarker].
	DecryptEntry(ctx context.Context, path string, reveal bool) (string, error)

	// SaveEntry encrypts and stores req.Content at req.Path. A non-empty
	// OriginalPath different from Path makes the save a move.
	SaveEntry(ctx context.Context, req models.SaveRequest) error

	DeleteEntry(ctx context.Context, path string) error
	CreateCategory(ctx context.Context, path string) error

	ExportSnapshot(ctx context.Context, w io.Writer) error
	ImportSnapshot(ctx context.Context, r io.ReaderAt, size int64) (models.ImportReport, error)
}

// VaultService drives the custodian's lifecycle on behalf of the API.
type VaultService interface {
	Status(ctx context.Context) (models.SealState, error)
	Initialize(ctx context.Context, passphrase string) error
	Import(ctx context.Context, key, passphrase string) error

	// Unlock hands passphrase to the custodian and verifies it with a canary
	// round trip. Returns [ErrKeyRejected] when the round trip fails.
	Unlock(ctx context.Context, passphrase string) error
	ExportKey(ctx context.Context) (string, error)

	Health(ctx context.Context) models.HealthStatus
}

// TreeServiceWrapper defines middleware composition for TreeService.
// Implementations wrap an existing TreeService to add behavior such as
// validation.
type TreeServiceWrapper interface {
	Wrap(TreeService) TreeService
}
