// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrAlreadyInitialized = errors.New("vault is already initialized")
	ErrKeyRejected        = errors.New("master key rejected")
	ErrEmptyCiphertext    = errors.New("custodian returned empty ciphertext")
)
