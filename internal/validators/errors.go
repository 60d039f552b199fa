// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyPath       = errors.New("path is required")
	ErrEmptyPassphrase = errors.New("passphrase is required")
	ErrEmptyArmoredKey = errors.New("armored key is required")
	ErrNotArmoredKey   = errors.New("key is not an ASCII-armored private key block")
)
