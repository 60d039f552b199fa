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

func (h *Handler) listTree(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	nodes, err := h.services.TreeService.ListTree(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listTree").Msg("error listing tree")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, nodes, http.StatusOK)
}

func (h *Handler) decrypt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, ok := decodeAction(w, r, "*Handler.decrypt")
	if !ok {
		return
	}

	plaintext, err := h.services.TreeService.DecryptEntry(r.Context(), req.Path, req.Reveal)
	if err != nil {
		log.Err(err).Str("func", "*Handler.decrypt").Str("path", req.Path).Msg("error decrypting entry")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, plaintext, http.StatusOK)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, ok := decodeAction(w, r, "*Handler.save")
	if !ok {
		return
	}

	err := h.services.TreeService.SaveEntry(r.Context(), models.SaveRequest{
		Path:         req.Path,
		Content:      req.Content,
		OriginalPath: req.OriginalPath,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.save").Str("path", req.Path).Msg("error saving entry")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.AckResponse{Status: models.AckOK}, http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, ok := decodeAction(w, r, "*Handler.deleteEntry")
	if !ok {
		return
	}

	if err := h.services.TreeService.DeleteEntry(r.Context(), req.Path); err != nil {
		log.Err(err).Str("func", "*Handler.deleteEntry").Str("path", req.Path).Msg("error deleting entry")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.AckResponse{Status: models.AckOK}, http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, ok := decodeAction(w, r, "*Handler.createCategory")
	if !ok {
		return
	}

	if err := h.services.TreeService.CreateCategory(r.Context(), req.Path); err != nil {
		log.Err(err).Str("func", "*Handler.createCategory").Str("path", req.Path).Msg("error creating category")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.AckResponse{Status: models.AckOK}, http.StatusOK)
}

func decodeAction(w http.ResponseWriter, r *http.Request, funcName string) (models.ActionRequest, bool) {
	var req models.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return req, false
	}
	return req, true
}
