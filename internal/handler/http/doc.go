// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the tree engine's collaborator-facing API.
//
// Routes cover the secret tree (list, decrypt, save, delete, categories),
// snapshots (backup download, restore upload), the vault lifecycle
// (status, initialize, import, unlock, key export) and health. Errors from
// the service layer are mapped to HTTP statuses in errors_mapper.go.
package http
