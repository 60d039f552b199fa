// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/talos-vault/internal/app"
	"github.com/MKhiriev/talos-vault/internal/logger"
	"github.com/MKhiriev/talos-vault/internal/utils"
	"github.com/MKhiriev/talos-vault/models"
)

func (h *Handler) vaultStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	state, err := h.services.VaultService.Status(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.vaultStatus").Msg("error checking vault status")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Status: state}, http.StatusOK)
}

func (h *Handler) vaultInitialize(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.KeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.vaultInitialize").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.VaultService.Initialize(r.Context(), req.Key); err != nil {
		log.Err(err).Str("func", "*Handler.vaultInitialize").Msg("error initializing vault")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.AckResponse{Status: models.AckInitialized}, http.StatusOK)
}

func (h *Handler) vaultImport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.vaultImport").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.VaultService.Import(r.Context(), req.Key, req.Passphrase); err != nil {
		log.Err(err).Str("func", "*Handler.vaultImport").Msg("error importing key")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.AckResponse{Status: models.AckImported}, http.StatusOK)
}

func (h *Handler) vaultUnlock(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.KeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.vaultUnlock").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.VaultService.Unlock(r.Context(), req.Key); err != nil {
		log.Err(err).Str("func", "*Handler.vaultUnlock").Msg("error unlocking vault")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.AckResponse{Status: models.AckUnlocked}, http.StatusOK)
}

func (h *Handler) vaultExportKey(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	key, err := h.services.VaultService.ExportKey(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.vaultExportKey").Msg("error exporting key")
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(key))
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.VaultService.Health(r.Context()), http.StatusOK)
}
