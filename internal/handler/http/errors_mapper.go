// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/talos-vault/internal/adapter"
	"github.com/MKhiriev/talos-vault/internal/service"
	"github.com/MKhiriev/talos-vault/internal/store"
	"github.com/MKhiriev/talos-vault/internal/validators"
)

// errorStatusMap is ordered: an error wrapping several sentinels gets the
// status of the first one listed (ErrKeyRejected before ErrCryptoFailure).
var errorStatusMap = []struct {
	err    error
	status int
}{
	{validators.ErrEmptyPath, http.StatusBadRequest},
	{validators.ErrEmptyPassphrase, http.StatusBadRequest},
	{validators.ErrEmptyArmoredKey, http.StatusBadRequest},
	{validators.ErrNotArmoredKey, http.StatusBadRequest},

	{service.ErrAlreadyInitialized, http.StatusForbidden},
	{service.ErrKeyRejected, http.StatusUnauthorized},
	{service.ErrEmptyCiphertext, http.StatusInternalServerError},

	{store.ErrInvalidPath, http.StatusBadRequest},
	{store.ErrInvalidArchive, http.StatusBadRequest},
	{store.ErrNotFound, http.StatusNotFound},
	{store.ErrCategoryNotEmpty, http.StatusConflict},
	{store.ErrPathConflict, http.StatusConflict},

	{adapter.ErrBackendUnreachable, http.StatusServiceUnavailable},
	{adapter.ErrVaultSealed, http.StatusLocked},
	{adapter.ErrAlreadyInitialized, http.StatusForbidden},
	{adapter.ErrCryptoFailure, http.StatusInternalServerError},
	{adapter.ErrInitializeFailed, http.StatusInternalServerError},
	{adapter.ErrImportFailed, http.StatusInternalServerError},
	{adapter.ErrSignatureMismatch, http.StatusBadGateway},
	{adapter.ErrUnexpectedResult, http.StatusBadGateway},
	{adapter.ErrUnauthorized, http.StatusBadGateway},
	{adapter.ErrBadRequest, http.StatusBadGateway},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Messages of 5xx
// responses are generic; 4xx responses carry the error text.
func writeError(w http.ResponseWriter, err error) int {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return status
	}
	http.Error(w, err.Error(), status)
	return status
}
