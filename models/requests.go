// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ActionRequest is the body shared by the tree engine's entry operations.
//
// Content is only read by save, OriginalPath only by save (move), Reveal only
// by decrypt.
type ActionRequest struct {
	Path         string `json:"path"`
	Content      string `json:"content,omitempty"`
	OriginalPath string `json:"original_path,omitempty"`
	Reveal       bool   `json:"reveal,omitempty"`
}

// SaveRequest describes a save or move of a single entry.
type SaveRequest struct {
	Path         string
	Content      string
	OriginalPath string
}

// KeyRequest carries a master passphrase.
type KeyRequest struct {
	Key string `json:"key"`
}

// ImportRequest carries an armored private key and the passphrase protecting it.
type ImportRequest struct {
	Key        string `json:"key"`
	Passphrase string `json:"passphrase"`
}

// StatusResponse is the reply of the vault status endpoint.
type StatusResponse struct {
	Status SealState `json:"status"`
}

// AckResponse acknowledges a mutation of the tree or the vault.
type AckResponse struct {
	Status string `json:"status"`
}

// Acknowledgement statuses.
const (
	AckOK          = "OK"
	AckInitialized = "initialized"
	AckImported    = "imported"
	AckUnlocked    = "unlocked"
)

// HealthStatus is returned by the tree engine's health endpoint. Bunker holds
// the custodian's check result or "OFFLINE".
type HealthStatus struct {
	Storage bool   `json:"storage"`
	Bunker  string `json:"bunker"`
}

// BunkerOffline is reported in [HealthStatus.Bunker] when the custodian
// cannot be reached.
const BunkerOffline = "OFFLINE"
