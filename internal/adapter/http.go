// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/talos-vault/internal/config"
	"github.com/MKhiriev/talos-vault/internal/logger"
	"github.com/MKhiriev/talos-vault/internal/utils"
	"github.com/MKhiriev/talos-vault/models"
)

type httpCustodianAdapter struct {
	client *utils.HTTPClient
	signer *utils.Signer

	logger *logger.Logger
}

// NewHTTPCustodianAdapter returns a [CustodianClient] talking to the
// custodian at adapterCfg.CustodianURL. When appCfg.RPCKey is set, requests
// are signed and responses verified.
func NewHTTPCustodianAdapter(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (CustodianClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.CustodianURL)
	if err != nil {
		return nil, fmt.Errorf("invalid custodian url: %w", err)
	}

	return &httpCustodianAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		signer: utils.NewSigner(appCfg.RPCKey),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// process sends one envelope and returns the raw result string.
func (a *httpCustodianAdapter) process(ctx context.Context, task models.Task) (string, error) {
	body, err := json.Marshal(task)
	if err != nil {
		return "", fmt.Errorf("encode task: %w", err)
	}

	req := a.client.R().
		SetContext(ctx).
		SetBody(body)
	if a.signer.Enabled() {
		req.SetHeader(utils.SignatureHeader, a.signer.Sign(body))
	}

	resp, err := req.Post("/process")
	if err != nil {
		a.logger.Debug().Err(err).Str("mode", string(task.Mode)).Msg("custodian request failed")
		return "", fmt.Errorf("%w: %w", ErrBackendUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if !a.signer.Verify(resp.Body(), resp.Header().Get(utils.SignatureHeader)) {
		return "", ErrSignatureMismatch
	}

	var result models.TaskResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("%w: decode result: %w", ErrUnexpectedResult, err)
	}

	return result.Result, nil
}

// Check implements [CustodianClient].
func (a *httpCustodianAdapter) Check(ctx context.Context) (models.SealState, error) {
	result, err := a.process(ctx, models.Task{Mode: models.ModeCheck})
	if err != nil {
		return "", err
	}

	state, ok := models.ParseSealState(result)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnexpectedResult, result)
	}
	return state, nil
}

// Initialize implements [CustodianClient].
func (a *httpCustodianAdapter) Initialize(ctx context.Context, passphrase string) error {
	result, err := a.process(ctx, models.Task{Mode: models.ModeInitialize, Payload: passphrase})
	if err != nil {
		return err
	}
	return expect(result, models.ResultInitialized)
}

// Import implements [CustodianClient].
func (a *httpCustodianAdapter) Import(ctx context.Context, key, passphrase string) error {
	result, err := a.process(ctx, models.Task{Mode: models.ModeImport, Payload: key, Passphrase: &passphrase})
	if err != nil {
		return err
	}
	return expect(result, models.ResultInitialized)
}

// Unlock implements [CustodianClient].
func (a *httpCustodianAdapter) Unlock(ctx context.Context, passphrase string) error {
	result, err := a.process(ctx, models.Task{Mode: models.ModeUnlock, Payload: passphrase})
	if err != nil {
		return err
	}
	return expect(result, models.ResultVaultUnsealed)
}

// ExportKey implements [CustodianClient].
func (a *httpCustodianAdapter) ExportKey(ctx context.Context) (string, error) {
	return a.process(ctx, models.Task{Mode: models.ModeExportKey})
}

// Encrypt implements [CustodianClient].
func (a *httpCustodianAdapter) Encrypt(ctx context.Context, plaintext string) (string, error) {
	return a.payloadOp(ctx, models.ModeEncrypt, plaintext)
}

// Decrypt implements [CustodianClient].
func (a *httpCustodianAdapter) Decrypt(ctx context.Context, ciphertext string) (string, error) {
	return a.payloadOp(ctx, models.ModeDecrypt, ciphertext)
}

func (a *httpCustodianAdapter) payloadOp(ctx context.Context, mode models.Mode, payload string) (string, error) {
	result, err := a.process(ctx, models.Task{Mode: mode, Payload: payload})
	if err != nil {
		return "", err
	}
	if err := errorFromResult(result); err != nil {
		return "", err
	}
	return result, nil
}

func expect(result, want string) error {
	if result == want {
		return nil
	}
	if err := errorFromResult(result); err != nil {
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnexpectedResult, result)
}
