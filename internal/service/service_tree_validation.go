// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/talos-vault/internal/validators"
	"github.com/MKhiriev/talos-vault/models"
)

// TreeValidationService rejects malformed requests before they reach the
// wrapped TreeService.
type TreeValidationService struct {
	inner     TreeService
	validator validators.Validator
}

func NewTreeValidationService() TreeServiceWrapper {
	return &TreeValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *TreeValidationService) Wrap(inner TreeService) TreeService {
	v.inner = inner
	return v
}

func (v *TreeValidationService) ListTree(ctx context.Context) ([]models.TreeNode, error) {
	return v.inner.ListTree(ctx)
}

func (v *TreeValidationService) DecryptEntry(ctx context.Context, path string, reveal bool) (string, error) {
	if err := v.validator.Validate(ctx, models.ActionRequest{Path: path}, validators.FieldPath); err != nil {
		return "", fmt.Errorf("invalid decrypt request: %w", err)
	}
	return v.inner.DecryptEntry(ctx, path, reveal)
}

func (v *TreeValidationService) SaveEntry(ctx context.Context, req models.SaveRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("invalid save request: %w", err)
	}
	return v.inner.SaveEntry(ctx, req)
}

func (v *TreeValidationService) DeleteEntry(ctx context.Context, path string) error {
	if err := v.validator.Validate(ctx, models.ActionRequest{Path: path}, validators.FieldPath); err != nil {
		return fmt.Errorf("invalid delete request: %w", err)
	}
	return v.inner.DeleteEntry(ctx, path)
}

func (v *TreeValidationService) CreateCategory(ctx context.Context, path string) error {
	if err := v.validator.Validate(ctx, models.ActionRequest{Path: path}, validators.FieldPath); err != nil {
		return fmt.Errorf("invalid category request: %w", err)
	}
	return v.inner.CreateCategory(ctx, path)
}

func (v *TreeValidationService) ExportSnapshot(ctx context.Context, w io.Writer) error {
	return v.inner.ExportSnapshot(ctx, w)
}

func (v *TreeValidationService) ImportSnapshot(ctx context.Context, r io.ReaderAt, size int64) (models.ImportReport, error) {
	return v.inner.ImportSnapshot(ctx, r, size)
}
