// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package rpc exposes the custodian over HTTP: a single POST /process
// endpoint taking a {payload, mode, passphrase?} envelope and answering
// {result}. Failures of the operation itself are reported as result tags with
// status 200; only malformed envelopes and unknown modes get HTTP errors.
package rpc

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	mw "github.com/MKhiriev/talos-vault/internal/handler/middleware"
	"github.com/MKhiriev/talos-vault/internal/logger"
	"github.com/MKhiriev/talos-vault/internal/utils"
	"github.com/MKhiriev/talos-vault/models"
)

// Vault is the custodian as seen by the RPC layer.
type Vault interface {
	Check(ctx context.Context) (models.SealState, error)
	Initialize(ctx context.Context, passphrase []byte) error
	Import(ctx context.Context, key, passphrase []byte) error
	Unlock(ctx context.Context, passphrase []byte)
	ExportKey(ctx context.Context) ([]byte, error)
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
}

type Handler struct {
	vault  Vault
	signer *utils.Signer
	logger *logger.Logger
}

// NewHandler returns a Handler. rpcKey enables body signatures when non-empty.
func NewHandler(vault Vault, rpcKey string, logger *logger.Logger) *Handler {
	logger.Info().Bool("signed", rpcKey != "").Msg("rpc handler created")
	return &Handler{
		vault:  vault,
		signer: utils.NewSigner(rpcKey),
		logger: logger,
	}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(mw.WithTraceID(h.logger))
	router.Use(mw.WithLogging)
	router.Use(mw.WithSignature(h.signer))

	router.Post("/process", h.process)

	router.MethodNotAllowed(mw.CheckHTTPMethod(router))

	return router
}
