// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/MKhiriev/talos-vault/internal/logger"
	"github.com/MKhiriev/talos-vault/internal/service"
	"github.com/MKhiriev/talos-vault/models"
)

// ─────────────────────────────────────────────
// Mock: service.TreeService
// ─────────────────────────────────────────────

type mockTreeSvc struct {
	listFn     func(ctx context.Context) ([]models.TreeNode, error)
	decryptFn  func(ctx context.Context, path string, reveal bool) (string, error)
	saveFn     func(ctx context.Context, req models.SaveRequest) error
	deleteFn   func(ctx context.Context, path string) error
	categoryFn func(ctx context.Context, path string) error
	exportFn   func(ctx context.Context, w io.Writer) error
	importFn   func(ctx context.Context, r io.ReaderAt, size int64) (models.ImportReport, error)
}

func (m *mockTreeSvc) ListTree(ctx context.Context) ([]models.TreeNode, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []models.TreeNode{}, nil
}

func (m *mockTreeSvc) DecryptEntry(ctx context.Context, path string, reveal bool) (string, error) {
	if m.decryptFn != nil {
		return m.decryptFn(ctx, path, reveal)
	}
	return "", nil
}

func (m *mockTreeSvc) SaveEntry(ctx context.Context, req models.SaveRequest) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, req)
	}
	return nil
}

func (m *mockTreeSvc) DeleteEntry(ctx context.Context, path string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, path)
	}
	return nil
}

func (m *mockTreeSvc) CreateCategory(ctx context.Context, path string) error {
	if m.categoryFn != nil {
		return m.categoryFn(ctx, path)
	}
	return nil
}

func (m *mockTreeSvc) ExportSnapshot(ctx context.Context, w io.Writer) error {
	if m.exportFn != nil {
		return m.exportFn(ctx, w)
	}
	return nil
}

func (m *mockTreeSvc) ImportSnapshot(ctx context.Context, r io.ReaderAt, size int64) (models.ImportReport, error) {
	if m.importFn != nil {
		return m.importFn(ctx, r, size)
	}
	return models.ImportReport{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.VaultService
// ─────────────────────────────────────────────

type mockVaultSvc struct {
	statusFn     func(ctx context.Context) (models.SealState, error)
	initializeFn func(ctx context.Context, passphrase string) error
	importFn     func(ctx context.Context, key, passphrase string) error
	unlockFn     func(ctx context.Context, passphrase string) error
	exportKeyFn  func(ctx context.Context) (string, error)
	healthFn     func(ctx context.Context) models.HealthStatus
}

func (m *mockVaultSvc) Status(ctx context.Context) (models.SealState, error) {
	if m.statusFn != nil {
		return m.statusFn(ctx)
	}
	return models.SealStateUnsealed, nil
}

func (m *mockVaultSvc) Initialize(ctx context.Context, passphrase string) error {
	if m.initializeFn != nil {
		return m.initializeFn(ctx, passphrase)
	}
	return nil
}

func (m *mockVaultSvc) Import(ctx context.Context, key, passphrase string) error {
	if m.importFn != nil {
		return m.importFn(ctx, key, passphrase)
	}
	return nil
}

func (m *mockVaultSvc) Unlock(ctx context.Context, passphrase string) error {
	if m.unlockFn != nil {
		return m.unlockFn(ctx, passphrase)
	}
	return nil
}

func (m *mockVaultSvc) ExportKey(ctx context.Context) (string, error) {
	if m.exportKeyFn != nil {
		return m.exportKeyFn(ctx)
	}
	return "", nil
}

func (m *mockVaultSvc) Health(ctx context.Context) models.HealthStatus {
	if m.healthFn != nil {
		return m.healthFn(ctx)
	}
	return models.HealthStatus{Storage: true, Bunker: string(models.SealStateUnsealed)}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestRouter(t *testing.T, tree service.TreeService, vault service.VaultService) http.Handler {
	t.Helper()
	if tree == nil {
		tree = &mockTreeSvc{}
	}
	if vault == nil {
		vault = &mockVaultSvc{}
	}
	h := NewHandler(&service.Services{TreeService: tree, VaultService: vault}, logger.Nop())
	return h.Init()
}
