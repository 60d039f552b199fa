// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/talos-vault/internal/adapter"
	"github.com/MKhiriev/talos-vault/internal/logger"
	"github.com/MKhiriev/talos-vault/internal/store"
	"github.com/MKhiriev/talos-vault/internal/versioning"
	"github.com/MKhiriev/talos-vault/models"
)

type treeService struct {
	store     store.SecretStore
	custodian adapter.CustodianClient
	sink      versioning.Sink

	logger *logger.Logger
}

func NewTreeService(secretStore store.SecretStore, custodian adapter.CustodianClient, sink versioning.Sink, logger *logger.Logger) TreeService {
	return &treeService{
		store:     secretStore,
		custodian: custodian,
		sink:      sink,
		logger:    logger,
	}
}

func (s *treeService) ListTree(ctx context.Context) ([]models.TreeNode, error) {
	return s.store.List(ctx)
}

func (s *treeService) DecryptEntry(ctx context.Context, path string, reveal bool) (string, error) {
	plaintext, err := s.decrypt(ctx, path)
	if err != nil {
		return "", err
	}
	if reveal {
		return plaintext, nil
	}
	return Redact(plaintext), nil
}

func (s *treeService) decrypt(ctx context.Context, path string) (string, error) {
	ciphertext, err := s.store.ReadEntry(path)
	if err != nil {
		return "", err
	}
	// A missing or empty entry holds an empty secret.
	if len(ciphertext) == 0 {
		return "", nil
	}

	plaintext, err := s.custodian.Decrypt(ctx, string(ciphertext))
	if err != nil {
		return "", fmt.Errorf("decrypt %s: %w", path, err)
	}
	return plaintext, nil
}

func (s *treeService) SaveEntry(ctx context.Context, req models.SaveRequest) error {
	path, err := store.ValidatePath(req.Path)
	if err != nil {
		return err
	}

	var origin string
	if req.OriginalPath != "" {
		if origin, err = store.ValidatePath(req.OriginalPath); err != nil {
			return err
		}
	}
	moving := origin != "" && origin != path

	content := req.Content
	if strings.HasPrefix(content, KeepSentinel) {
		// On a move the secret being kept lives at the origin.
		source := path
		if moving {
			source = origin
		}
		current, err := s.decrypt(ctx, source)
		if err != nil {
			return fmt.Errorf("keep current secret: %w", err)
		}
		content = firstLine(current) + strings.TrimPrefix(content, KeepSentinel)
	}

	ciphertext, err := s.custodian.Encrypt(ctx, content)
	if err != nil {
		return fmt.Errorf("encrypt %s: %w", path, err)
	}
	if ciphertext == "" {
		return ErrEmptyCiphertext
	}

	if err := s.store.WriteEntry(path, []byte(ciphertext)); err != nil {
		return err
	}

	message := fmt.Sprintf(versioning.MsgUpdate, path)
	if moving {
		if err := s.store.RemoveEntry(origin); err != nil {
			s.logger.Warn().Err(err).Str("from", origin).Str("to", path).Msg("old entry not removed after move")
		} else {
			message = fmt.Sprintf(versioning.MsgMove, origin, path)
		}
	}

	s.sink.Commit(ctx, message)
	return nil
}

func (s *treeService) DeleteEntry(ctx context.Context, path string) error {
	kind, err := s.store.Delete(path)
	if err != nil {
		return err
	}

	clean, _ := store.ValidatePath(path)
	switch kind {
	case store.KindCategory:
		s.sink.Commit(ctx, fmt.Sprintf(versioning.MsgDeleteCategory, clean))
	default:
		s.sink.Commit(ctx, fmt.Sprintf(versioning.MsgDeleteSecret, clean))
	}
	return nil
}

func (s *treeService) CreateCategory(ctx context.Context, path string) error {
	if err := s.store.CreateCategory(path); err != nil {
		return err
	}

	clean, _ := store.ValidatePath(path)
	s.sink.Commit(ctx, fmt.Sprintf(versioning.MsgAddCategory, clean))
	return nil
}

func (s *treeService) ExportSnapshot(ctx context.Context, w io.Writer) error {
	return s.store.ExportSnapshot(ctx, w)
}

func (s *treeService) ImportSnapshot(ctx context.Context, r io.ReaderAt, size int64) (models.ImportReport, error) {
	report, err := s.store.ImportSnapshot(ctx, r, size)
	if err != nil {
		return report, err
	}

	s.logger.Info().
		Int("files", report.Files).
		Int("directories", report.Directories).
		Int("skipped", report.Skipped).
		Msg("snapshot restored")
	s.sink.Commit(ctx, versioning.MsgRestored)
	return report, nil
}
