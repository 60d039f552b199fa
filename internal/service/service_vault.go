// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/talos-vault/internal/adapter"
	"github.com/MKhiriev/talos-vault/internal/logger"
	"github.com/MKhiriev/talos-vault/internal/validators"
	"github.com/MKhiriev/talos-vault/models"
)

type vaultService struct {
	custodian adapter.CustodianClient
	validator validators.Validator

	logger *logger.Logger
}

func NewVaultService(custodian adapter.CustodianClient, logger *logger.Logger) VaultService {
	return &vaultService{
		custodian: custodian,
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}

func (s *vaultService) Status(ctx context.Context) (models.SealState, error) {
	return s.custodian.Check(ctx)
}

// Initialize refuses to run unless the custodian reports UNINITIALIZED, so a
// lost race with another initializer surfaces as ErrAlreadyInitialized.
func (s *vaultService) Initialize(ctx context.Context, passphrase string) error {
	if err := s.validator.Validate(ctx, models.KeyRequest{Key: passphrase}); err != nil {
		return err
	}

	state, err := s.custodian.Check(ctx)
	if err != nil {
		return err
	}
	if state != models.SealStateUninitialized {
		return ErrAlreadyInitialized
	}

	if err := s.custodian.Initialize(ctx, passphrase); err != nil {
		if errors.Is(err, adapter.ErrAlreadyInitialized) {
			return fmt.Errorf("%w: %w", ErrAlreadyInitialized, err)
		}
		return err
	}

	s.logger.Info().Msg("vault initialized")
	return nil
}

func (s *vaultService) Import(ctx context.Context, key, passphrase string) error {
	if err := s.validator.Validate(ctx, models.ImportRequest{Key: key, Passphrase: passphrase}); err != nil {
		return err
	}

	if err := s.custodian.Import(ctx, key, passphrase); err != nil {
		if errors.Is(err, adapter.ErrAlreadyInitialized) {
			return fmt.Errorf("%w: %w", ErrAlreadyInitialized, err)
		}
		return err
	}

	s.logger.Info().Msg("vault key imported")
	return nil
}

func (s *vaultService) Unlock(ctx context.Context, passphrase string) error {
	if err := s.validator.Validate(ctx, models.KeyRequest{Key: passphrase}); err != nil {
		return err
	}

	if err := s.custodian.Unlock(ctx, passphrase); err != nil {
		return err
	}

	if err := VerifyPassphrase(ctx, s.custodian); err != nil {
		s.logger.Warn().Err(err).Msg("unlock rejected")
		return err
	}

	s.logger.Info().Msg("vault unsealed")
	return nil
}

func (s *vaultService) ExportKey(ctx context.Context) (string, error) {
	key, err := s.custodian.ExportKey(ctx)
	if err != nil {
		return "", err
	}
	s.logger.Info().Bool("empty", key == "").Msg("vault key exported")
	return key, nil
}

// Health never fails: an unreachable or misbehaving custodian is reported as
// OFFLINE.
func (s *vaultService) Health(ctx context.Context) models.HealthStatus {
	health := models.HealthStatus{Storage: true, Bunker: models.BunkerOffline}

	state, err := s.custodian.Check(ctx)
	if err != nil {
		s.logger.Debug().Err(err).Msg("custodian health check failed")
		return health
	}
	health.Bunker = string(state)
	return health
}

// VerifyPassphrase round-trips [Canary] through the custodian. Any crypto
// failure or mismatch yields ErrKeyRejected; an unreachable custodian is
// returned as is.
func VerifyPassphrase(ctx context.Context, custodian adapter.CustodianClient) error {
	ciphertext, err := custodian.Encrypt(ctx, Canary)
	if err != nil {
		return rejectUnlessUnreachable("encryption failed", err)
	}

	plaintext, err := custodian.Decrypt(ctx, ciphertext)
	if err != nil {
		return rejectUnlessUnreachable("decryption failed", err)
	}

	if strings.TrimSpace(plaintext) != Canary {
		return fmt.Errorf("%w: canary mismatch", ErrKeyRejected)
	}
	return nil
}

func rejectUnlessUnreachable(stage string, err error) error {
	if errors.Is(err, adapter.ErrBackendUnreachable) {
		return err
	}
	return fmt.Errorf("%w (%s): %w", ErrKeyRejected, stage, err)
}
