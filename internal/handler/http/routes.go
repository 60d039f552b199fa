// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	mw "github.com/MKhiriev/talos-vault/internal/handler/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(mw.WithTraceID(h.logger))
	router.Use(mw.WithLogging)
	router.Use(mw.WithGZip)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)

		r.Get("/tree", h.listTree)
		r.Post("/decrypt", h.decrypt)
		r.Post("/save", h.save)
		r.Post("/delete", h.deleteEntry)
		r.Post("/create_category", h.createCategory)

		r.Get("/backup", h.backup)
		r.Post("/restore", h.restore)

		r.Route("/vault", func(r chi.Router) {
			r.Get("/status", h.vaultStatus)
			r.Post("/initialize", h.vaultInitialize)
			r.Post("/import", h.vaultImport)
			r.Post("/unlock", h.vaultUnlock)
			r.Get("/export_key", h.vaultExportKey)
		})
	})

	router.MethodNotAllowed(mw.CheckHTTPMethod(router))

	return router
}
