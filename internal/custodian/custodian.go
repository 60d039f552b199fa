// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package custodian owns the vault's private key lifecycle and the master
// passphrase. It is the only component that ever holds the passphrase; every
// decrypt is performed here on behalf of callers.
package custodian

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/talos-vault/internal/gpg"
	"github.com/MKhiriev/talos-vault/internal/logger"
	"github.com/MKhiriev/talos-vault/internal/utils"
	"github.com/MKhiriev/talos-vault/models"
)

// Custodian answers the seven custodian operations.
//
// The seal state is derived on every call: Uninitialized when the keyring has
// no key for the identity, otherwise Unsealed while a passphrase is held and
// Sealed when not.
type Custodian struct {
	engine     Engine
	passphrase *Passphrase
	// lifecycle serializes initialize, import and unlock so that two
	// concurrent callers cannot both observe an empty keyring.
	lifecycle sync.Mutex
	logger    *logger.Logger
}

// New returns a Custodian backed by engine. The custodian starts sealed.
func New(engine Engine, passphrase *Passphrase, logger *logger.Logger) *Custodian {
	return &Custodian{
		engine:     engine,
		passphrase: passphrase,
		logger:     logger,
	}
}

// Check returns the current seal state.
func (c *Custodian) Check(ctx context.Context) (models.SealState, error) {
	ok, err := c.engine.HasIdentity(ctx)
	if err != nil {
		return "", fmt.Errorf("check identity: %w", err)
	}

	switch {
	case !ok:
		return models.SealStateUninitialized, nil
	case c.passphrase.Held():
		return models.SealStateUnsealed, nil
	default:
		return models.SealStateSealed, nil
	}
}

// Initialize generates the vault identity protected by passphrase and, on
// success, retains the passphrase so the vault is immediately unsealed.
func (c *Custodian) Initialize(ctx context.Context, passphrase []byte) error {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()

	ok, err := c.engine.HasIdentity(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGenerate, err)
	}
	if ok {
		return ErrAlreadyInitialized
	}

	if err := c.engine.GenerateIdentity(ctx, passphrase); err != nil {
		if errors.Is(err, gpg.ErrCarrierWrite) {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
		return fmt.Errorf("%w: %w", ErrGenerate, err)
	}

	c.passphrase.Set(passphrase)
	c.logger.Info().Msg("vault initialized")
	return nil
}

// Import adds an existing armored private key to the keyring and retains
// passphrase. It refuses when the identity already exists. The passphrase is
// not verified against the key; callers confirm it with an encrypt/decrypt
// round trip.
func (c *Custodian) Import(ctx context.Context, key, passphrase []byte) error {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()

	ok, err := c.engine.HasIdentity(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrImport, err)
	}
	if ok {
		return ErrAlreadyInitialized
	}

	if err := c.engine.ImportKey(ctx, key); err != nil {
		return fmt.Errorf("%w: %w", ErrImport, err)
	}

	c.passphrase.Set(passphrase)
	c.logger.Info().Msg("key imported")
	return nil
}

// Unlock retains passphrase without verifying it. Without an identity there
// is nothing to unlock and the passphrase is dropped.
func (c *Custodian) Unlock(ctx context.Context, passphrase []byte) {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()

	ok, err := c.engine.HasIdentity(ctx)
	if err != nil {
		c.logger.Err(err).Msg("unlock: identity lookup failed, passphrase dropped")
		return
	}
	if !ok {
		c.logger.Warn().Msg("unlock without identity, passphrase dropped")
		return
	}

	c.passphrase.Set(passphrase)
	c.logger.Info().Msg("vault unsealed")
}

// ExportKey returns the armored secret key. It is permitted in every state;
// a sealed vault or an absent identity yields empty output.
func (c *Custodian) ExportKey(ctx context.Context) ([]byte, error) {
	pass, ok := c.passphrase.Clone()
	if !ok {
		return nil, nil
	}
	defer utils.Zero(pass)

	return c.engine.ExportKey(ctx, pass)
}

// Encrypt encrypts plaintext to the vault identity. It requires the vault to
// be unsealed.
func (c *Custodian) Encrypt(ctx context.Context, plaintext []byte) ([]byte, error) {
	if !c.passphrase.Held() {
		return nil, ErrVaultSealed
	}
	return c.engine.Encrypt(ctx, plaintext)
}

// Decrypt decrypts ciphertext with the held passphrase.
func (c *Custodian) Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error) {
	pass, ok := c.passphrase.Clone()
	if !ok {
		return nil, ErrVaultSealed
	}
	defer utils.Zero(pass)

	return c.engine.Decrypt(ctx, ciphertext, pass)
}

// Seal drops the held passphrase.
func (c *Custodian) Seal() {
	c.passphrase.Wipe()
}
