// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/talos-vault/internal/config"
	"github.com/MKhiriev/talos-vault/internal/logger"
)

type Storages struct {
	SecretStore SecretStore

	tree *Tree
}

// NewStorages prepares the store root for identity and returns the storages
// backed by it.
func NewStorages(cfg config.Storage, identity string, logger *logger.Logger) (*Storages, error) {
	tree := NewTree(cfg.StoreDir, logger)
	if err := tree.Bootstrap(identity); err != nil {
		return nil, fmt.Errorf("bootstrap store: %w", err)
	}

	return &Storages{
		SecretStore: tree,
		tree:        tree,
	}, nil
}

// Root returns the directory holding the secret tree.
func (s *Storages) Root() string {
	return s.tree.Root()
}
