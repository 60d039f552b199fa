// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package custodian

import (
	"sync"

	"github.com/MKhiriev/talos-vault/internal/utils"
)

// Passphrase holds the master passphrase in locked memory for the lifetime of
// the process. The zero value is not usable; call NewPassphrase.
type Passphrase struct {
	mu    sync.RWMutex
	value []byte
	held  bool
}

// NewPassphrase returns an empty holder.
func NewPassphrase() *Passphrase {
	return &Passphrase{}
}

// Set replaces the held value with a copy of v. The previous value is wiped.
// An empty v still counts as held.
func (p *Passphrase) Set(v []byte) {
	buf := make([]byte, len(v))
	copy(buf, v)
	lockMemory(buf)

	p.mu.Lock()
	old := p.value
	p.value = buf
	p.held = true
	p.mu.Unlock()

	wipe(old)
}

// Clone returns a copy of the held value, or false when nothing is held.
// Callers should wipe the copy with utils.Zero when done.
func (p *Passphrase) Clone() ([]byte, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.held {
		return nil, false
	}
	out := make([]byte, len(p.value))
	copy(out, p.value)
	return out, true
}

// Held reports whether a passphrase is present.
func (p *Passphrase) Held() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.held
}

// Wipe zeroes and releases the held value.
func (p *Passphrase) Wipe() {
	p.mu.Lock()
	old := p.value
	p.value = nil
	p.held = false
	p.mu.Unlock()

	wipe(old)
}

func wipe(b []byte) {
	if b == nil {
		return
	}
	utils.Zero(b)
	unlockMemory(b)
}
