// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a binary's required configuration groups
// are incomplete or invalid.
var (
	ErrInvalidServerConfigs     = errors.New("invalid server configuration")
	ErrInvalidAppConfigs        = errors.New("invalid app configuration")
	ErrInvalidCustodianConfigs  = errors.New("invalid custodian configuration")
	ErrInvalidAdapterConfigs    = errors.New("invalid adapter configuration")
	ErrInvalidStorageConfigs    = errors.New("invalid storage configuration")
	ErrInvalidVersioningConfigs = errors.New("invalid versioning configuration")
	ErrInvalidBackupConfigs     = errors.New("invalid backup configuration")
)
