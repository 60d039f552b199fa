// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"

	"github.com/MKhiriev/talos-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_store_mock.go -package=mock

// SecretStore is the on-disk half of the tree engine. It holds ciphertext
// only and never talks to the custodian.
type SecretStore interface {
	List(ctx context.Context) ([]models.TreeNode, error)

	ReadEntry(p string) ([]byte, error)
	WriteEntry(p string, ciphertext []byte) error
	RemoveEntry(p string) error

	// Delete removes an entry or an empty category and reports which one
	// it was.
	Delete(p string) (EntryKind, error)
	CreateCategory(p string) error

	ExportSnapshot(ctx context.Context, w io.Writer) error
	ImportSnapshot(ctx context.Context, r io.ReaderAt, size int64) (models.ImportReport, error)
}
