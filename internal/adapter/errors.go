// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBackendUnreachable = errors.New("custodian unreachable")
	ErrSignatureMismatch  = errors.New("custodian response signature mismatch")
	ErrUnexpectedResult   = errors.New("unexpected custodian result")

	ErrVaultSealed        = errors.New("vault is sealed")
	ErrCryptoFailure      = errors.New("custodian crypto failure")
	ErrAlreadyInitialized = errors.New("vault already initialized")
	ErrInitializeFailed   = errors.New("vault initialization failed")
	ErrImportFailed       = errors.New("key import failed")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
)
