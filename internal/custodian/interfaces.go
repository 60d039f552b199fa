// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package custodian

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/engine_mock.go -package=mock

// Engine is the OpenPGP engine the custodian delegates to.
type Engine interface {
	HasIdentity(ctx context.Context) (bool, error)
	GenerateIdentity(ctx context.Context, passphrase []byte) error
	ImportKey(ctx context.Context, key []byte) error
	ExportKey(ctx context.Context, passphrase []byte) ([]byte, error)
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext, passphrase []byte) ([]byte, error)
}
