// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !linux && !darwin && !freebsd

package custodian

func lockMemory([]byte)   {}
func unlockMemory([]byte) {}

// DisableCoreDumps is a no-op on this platform.
func DisableCoreDumps() error { return nil }
