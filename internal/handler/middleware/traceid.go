// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/talos-vault/internal/logger"
)

// TraceIDHeader carries the request trace id in both directions.
const TraceIDHeader = "X-Trace-ID"

// WithTraceID reuses the caller's X-Trace-ID or generates one, echoes it in
// the response and attaches a child of base tagged with trace_id to the
// request context.
func WithTraceID(base *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			l := base.GetChildLogger()
			l.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("trace_id", traceID)
			})
			r = r.WithContext(l.WithContext(r.Context()))

			w.Header().Set(TraceIDHeader, traceID)
			next.ServeHTTP(w, r)
		})
	}
}
