// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/talos-vault/internal/adapter"
	"github.com/MKhiriev/talos-vault/internal/logger"
	"github.com/MKhiriev/talos-vault/internal/store"
	"github.com/MKhiriev/talos-vault/internal/versioning"
)

type Services struct {
	TreeService  TreeService
	VaultService VaultService
}

func NewServices(storages *store.Storages, custodian adapter.CustodianClient, sink versioning.Sink, logger *logger.Logger) *Services {
	tree := NewTreeService(storages.SecretStore, custodian, sink, logger)

	return &Services{
		TreeService:  NewTreeValidationService().Wrap(tree),
		VaultService: NewVaultService(custodian, logger),
	}
}
