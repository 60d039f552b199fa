// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpc

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/talos-vault/internal/app"
	"github.com/MKhiriev/talos-vault/internal/custodian"
	"github.com/MKhiriev/talos-vault/internal/gpg"
	"github.com/MKhiriev/talos-vault/internal/logger"
	"github.com/MKhiriev/talos-vault/internal/utils"
	"github.com/MKhiriev/talos-vault/models"
)

// errorResults is ordered: custodian errors wrap gpg errors, and the
// custodian tag wins.
var errorResults = []struct {
	err error
	tag string
}{
	{custodian.ErrAlreadyInitialized, models.ResultErrAlreadyInit},
	{custodian.ErrWrite, models.ResultErrWrite},
	{custodian.ErrGenerate, models.ResultErrGen},
	{custodian.ErrImport, models.ResultErrImport},
	{custodian.ErrVaultSealed, models.ResultErrVaultSealed},
	{gpg.ErrCryptoFailure, models.ResultErrCrypto},
	{gpg.ErrCarrierWrite, models.ResultErrCrypto},
}

func resultFromError(err error) (string, bool) {
	for _, entry := range errorResults {
		if errors.Is(err, entry.err) {
			return entry.tag, true
		}
	}
	return "", false
}

func (h *Handler) process(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	var task models.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	if !task.Mode.Valid() {
		log.Warn().Str("mode", string(task.Mode)).Msg("unknown mode")
		http.Error(w, app.MsgUnknownMode, http.StatusBadRequest)
		return
	}

	log = log.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context { return c.Str("mode", string(task.Mode)) })

	var (
		result string
		err    error
	)

	switch task.Mode {
	case models.ModeCheck:
		var st models.SealState
		st, err = h.vault.Check(ctx)
		result = string(st)
	case models.ModeInitialize:
		err = h.vault.Initialize(ctx, []byte(task.Payload))
		result = models.ResultInitialized
	case models.ModeImport:
		var pass []byte
		if task.Passphrase != nil {
			pass = []byte(*task.Passphrase)
		}
		err = h.vault.Import(ctx, []byte(task.Payload), pass)
		result = models.ResultInitialized
	case models.ModeUnlock:
		h.vault.Unlock(ctx, []byte(task.Payload))
		result = models.ResultVaultUnsealed
	case models.ModeExportKey:
		var key []byte
		key, err = h.vault.ExportKey(ctx)
		result = string(key)
	case models.ModeEncrypt:
		var out []byte
		out, err = h.vault.Encrypt(ctx, []byte(task.Payload))
		result = string(out)
	case models.ModeDecrypt:
		var out []byte
		out, err = h.vault.Decrypt(ctx, []byte(task.Payload))
		result = string(out)
	}

	if err != nil {
		tag, ok := resultFromError(err)
		if !ok {
			log.Err(err).Msg("custodian operation failed")
			http.Error(w, app.MsgCustodianFailure, http.StatusInternalServerError)
			return
		}
		log.Warn().Err(err).Str("result", tag).Msg("custodian operation refused")
		result = tag
	} else {
		log.Debug().Msg("custodian operation done")
	}

	if _, err := utils.WriteJSON(w, models.TaskResult{Result: result}, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write result")
	}
}
