// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Mode selects the custodian operation carried by a [Task].
type Mode string

const (
	ModeCheck      Mode = "check"
	ModeInitialize Mode = "initialize"
	ModeImport     Mode = "import"
	ModeUnlock     Mode = "unlock"
	ModeExportKey  Mode = "export_key"
	ModeEncrypt    Mode = "encrypt"
	ModeDecrypt    Mode = "decrypt"
)

// Valid reports whether m is one of the modes understood by the custodian.
func (m Mode) Valid() bool {
	switch m {
	case ModeCheck, ModeInitialize, ModeImport, ModeUnlock, ModeExportKey, ModeEncrypt, ModeDecrypt:
		return true
	}
	return false
}

// Task is the request envelope accepted by the custodian on POST /process.
//
// Payload meaning depends on Mode: plaintext for encrypt, armored ciphertext
// for decrypt, an armored private key for import, the passphrase for
// initialize and unlock. Passphrase is only read by import.
type Task struct {
	Payload    string  `json:"payload"`
	Mode       Mode    `json:"mode"`
	Passphrase *string `json:"passphrase,omitempty"`
}

// TaskResult is the single-field reply of the custodian.
type TaskResult struct {
	Result string `json:"result"`
}

// Result tags returned by the custodian in [TaskResult.Result].
const (
	ResultInitialized   = "INITIALIZED"
	ResultVaultUnsealed = "VAULT_UNSEALED"

	ResultErrAlreadyInit = "ERROR_ALREADY_INIT"
	ResultErrWrite       = "ERROR_WRITE"
	ResultErrGen         = "ERROR_GEN"
	ResultErrImport      = "ERROR_IMPORT"
	ResultErrVaultSealed = "ERROR_VAULT_SEALED"
	ResultErrCrypto      = "ERROR_CRYPTO"
)

// SealState is the lifecycle state of the custodian as reported by check.
type SealState string

const (
	SealStateUninitialized SealState = "UNINITIALIZED"
	SealStateSealed        SealState = "SEALED"
	SealStateUnsealed      SealState = "UNSEALED"
)

// ParseSealState converts a check result into a [SealState].
func ParseSealState(s string) (SealState, bool) {
	switch st := SealState(s); st {
	case SealStateUninitialized, SealStateSealed, SealStateUnsealed:
		return st, true
	}
	return "", false
}
