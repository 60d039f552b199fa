// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/talos-vault/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

var resultErrorMap = map[string]error{
	models.ResultErrAlreadyInit: ErrAlreadyInitialized,
	models.ResultErrWrite:       ErrInitializeFailed,
	models.ResultErrGen:         ErrInitializeFailed,
	models.ResultErrImport:      ErrImportFailed,
	models.ResultErrVaultSealed: ErrVaultSealed,
	models.ResultErrCrypto:      ErrCryptoFailure,
}

// errorFromResult maps a failure tag to its sentinel, keeping the tag in the
// message. Results that are not failure tags yield nil.
func errorFromResult(result string) error {
	if err, ok := resultErrorMap[result]; ok {
		return fmt.Errorf("%w (%s)", err, result)
	}
	return nil
}
