// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the tree engine's and talosctl's client of the
// custodian.
//
// [CustodianClient] hides the /process envelope: result tags are turned into
// the sentinel errors of errors.go so callers can use [errors.Is], and
// transport failures are reported as [ErrBackendUnreachable].
package adapter

import (
	"context"

	"github.com/MKhiriev/talos-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/custodian_client_mock.go -package=mock

// CustodianClient performs the seven custodian operations over RPC.
type CustodianClient interface {
	// Check returns the custodian's seal state.
	Check(ctx context.Context) (models.SealState, error)

	// Initialize asks the custodian to generate the vault identity protected
	// by passphrase. Returns [ErrAlreadyInitialized] when one exists.
	Initialize(ctx context.Context, passphrase string) error

	// Import hands an armored private key and its passphrase to the
	// custodian. The passphrase is not verified.
	Import(ctx context.Context, key, passphrase string) error

	// Unlock stores passphrase in the custodian without verifying it.
	Unlock(ctx context.Context, passphrase string) error

	// ExportKey returns the armored secret key, possibly empty.
	ExportKey(ctx context.Context) (string, error)

	// Encrypt returns ASCII-armored ciphertext for plaintext.
	Encrypt(ctx context.Context, plaintext string) (string, error)

	// Decrypt returns the plaintext of armored ciphertext.
	Decrypt(ctx context.Context, ciphertext string) (string, error)
}
