// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/talos-vault/internal/app"
	"github.com/MKhiriev/talos-vault/internal/logger"
	"github.com/MKhiriev/talos-vault/internal/utils"
)

// WithSignature rejects requests whose HashSHA256 header is not the HMAC of
// the body under signer's key, and signs the response body the same way.
// A disabled signer makes the middleware a pass-through.
func WithSignature(signer *utils.Signer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !signer.Enabled() {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			body, err := io.ReadAll(r.Body)
			if err != nil {
				log.Err(err).Msg("failed to read request body")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			if !signer.Verify(body, r.Header.Get(utils.SignatureHeader)) {
				log.Warn().Msg("request signature mismatch")
				http.Error(w, app.MsgIntegrityCheckFailed, http.StatusUnauthorized)
				return
			}

			sw := &signingWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			w.Header().Set(utils.SignatureHeader, signer.Sign(sw.buf.Bytes()))
			w.WriteHeader(sw.status)
			if _, err := w.Write(sw.buf.Bytes()); err != nil {
				log.Err(err).Msg("failed to write signed response")
			}
		})
	}
}

// signingWriter buffers the response so its signature can be set as a
// header before the body is sent.
type signingWriter struct {
	http.ResponseWriter

	status int
	buf    bytes.Buffer
}

func (w *signingWriter) WriteHeader(statusCode int) {
	w.status = statusCode
}

func (w *signingWriter) Write(b []byte) (int, error) {
	return w.buf.Write(b)
}
