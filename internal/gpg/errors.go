// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gpg

import "errors"

var (
	// ErrCryptoFailure covers any failed gpg encrypt, decrypt, import or
	// export, including a run that exits cleanly with empty output.
	ErrCryptoFailure = errors.New("crypto operation failed")
	// ErrCarrierWrite is returned when a passphrase or parameter file cannot
	// be written to the secure tmp directory.
	ErrCarrierWrite = errors.New("cannot write carrier file")
	// ErrInvalidPassphrase rejects passphrases that cannot be represented in
	// a gpg parameter file.
	ErrInvalidPassphrase = errors.New("passphrase contains line breaks")
)
