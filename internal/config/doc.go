// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates configuration for the custodian
// and the tree engine.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// [GetCustodianConfig] and [GetStorageConfig] validate the groups each binary
// depends on; talosctl reads its settings with [GetCLIConfig].
package config
