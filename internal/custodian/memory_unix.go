// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build linux || darwin || freebsd

package custodian

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// lockMemory keeps b out of swap. Failure (e.g. RLIMIT_MEMLOCK) is ignored;
// the value is still wiped on replacement.
func lockMemory(b []byte) {
	if len(b) == 0 {
		return
	}
	_ = unix.Mlock(b)
}

func unlockMemory(b []byte) {
	if len(b) == 0 {
		return
	}
	_ = unix.Munlock(b)
}

// DisableCoreDumps sets RLIMIT_CORE to zero so a crash cannot write the
// passphrase to disk.
func DisableCoreDumps() error {
	if err := unix.Setrlimit(unix.RLIMIT_CORE, &unix.Rlimit{Cur: 0, Max: 0}); err != nil {
		return fmt.Errorf("disable core dumps: %w", err)
	}
	return nil
}
