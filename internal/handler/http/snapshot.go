// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/MKhiriev/talos-vault/internal/app"
	"github.com/MKhiriev/talos-vault/internal/logger"
	"github.com/MKhiriev/talos-vault/internal/store"
	"github.com/MKhiriev/talos-vault/internal/utils"
)

const (
	restoreFormField = "backup"

	// restoreMemoryLimit bounds the part of an upload kept in memory; the
	// rest spills to temporary files.
	restoreMemoryLimit = 32 << 20
)

func (h *Handler) backup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// Buffered so a failure midway still gets a proper status.
	var buf bytes.Buffer
	if err := h.services.TreeService.ExportSnapshot(r.Context(), &buf); err != nil {
		log.Err(err).Str("func", "*Handler.backup").Msg("error exporting snapshot")
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", store.SnapshotFileName))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handler) restore(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(restoreMemoryLimit); err != nil {
		log.Err(err).Str("func", "*Handler.restore").Msg("invalid multipart form")
		http.Error(w, app.MsgMissingBackupFile, http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(restoreFormField)
	if err != nil {
		log.Err(err).Str("func", "*Handler.restore").Msg("backup field missing")
		http.Error(w, app.MsgMissingBackupFile, http.StatusBadRequest)
		return
	}
	defer file.Close()

	report, err := h.services.TreeService.ImportSnapshot(r.Context(), file, header.Size)
	if err != nil {
		log.Err(err).Str("func", "*Handler.restore").Msg("error importing snapshot")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}
