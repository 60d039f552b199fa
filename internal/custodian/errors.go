// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package custodian

import "errors"

var (
	ErrAlreadyInitialized = errors.New("identity already exists")
	ErrWrite              = errors.New("cannot write key parameters")
	ErrGenerate           = errors.New("key generation failed")
	ErrImport             = errors.New("key import failed")
	ErrVaultSealed        = errors.New("vault is sealed")
)
