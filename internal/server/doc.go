// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs an HTTP handler until the process is told to stop.
//
// It owns the listener lifecycle: startup, termination-signal handling and
// graceful shutdown bounded by the configured request timeout.
package server
