// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gpg drives the gpg binary as a subprocess.
//
// Secrets never appear on the command line: plaintext, ciphertext and key
// material travel over stdin/stdout, and passphrases are handed over through
// short-lived files in a memory-backed directory that are removed when the
// call returns, whatever its outcome.
package gpg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/talos-vault/internal/logger"
	"github.com/MKhiriev/talos-vault/internal/utils"
)

const carrierPrefix = "gpg_pass_"

// Config configures an [Engine].
type Config struct {
	Binary       string
	HomeDir      string
	SecureTmpDir string
	Identity     string
	Timeout      time.Duration
}

// Engine runs gpg for a single identity.
type Engine struct {
	cfg    Config
	logger *logger.Logger
}

// NewEngine returns an Engine for cfg.
func NewEngine(cfg Config, logger *logger.Logger) *Engine {
	if cfg.Binary == "" {
		cfg.Binary = "gpg"
	}
	if cfg.SecureTmpDir == "" {
		cfg.SecureTmpDir = os.TempDir()
	}
	return &Engine{cfg: cfg, logger: logger}
}

// Identity returns the user id the engine encrypts to.
func (e *Engine) Identity() string {
	return e.cfg.Identity
}

// Prepare creates the gpg home directory, if one is configured, and tightens
// its permissions to owner-only.
func (e *Engine) Prepare() error {
	if e.cfg.HomeDir == "" {
		return nil
	}
	if err := os.MkdirAll(e.cfg.HomeDir, 0o700); err != nil {
		return fmt.Errorf("create gpg home: %w", err)
	}
	if err := os.Chmod(e.cfg.HomeDir, 0o700); err != nil {
		return fmt.Errorf("chmod gpg home: %w", err)
	}
	return nil
}

// HasIdentity reports whether the keyring holds a secret key for the
// identity. A non-zero gpg exit means no key; failing to start gpg at all is
// returned as an error.
func (e *Engine) HasIdentity(ctx context.Context) (bool, error) {
	_, err := e.run(ctx, nil, "--list-secret-keys", e.cfg.Identity)
	if err == nil {
		return true, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, err
}

// GenerateIdentity creates an RSA-4096 key for the identity, protected by
// passphrase and never expiring.
func (e *Engine) GenerateIdentity(ctx context.Context, passphrase []byte) error {
	if bytes.ContainsAny(passphrase, "\r\n") {
		return ErrInvalidPassphrase
	}

	var params bytes.Buffer
	fmt.Fprintf(&params, "Key-Type: RSA\nKey-Length: 4096\nName-Email: %s\nExpire-Date: 0\nPassphrase: ", e.cfg.Identity)
	params.Write(passphrase)
	params.WriteString("\n%commit\n")
	defer utils.Zero(params.Bytes())

	path, cleanup, err := e.writeCarrier(params.Bytes())
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := e.run(ctx, nil, "--generate-key", path); err != nil {
		return fmt.Errorf("generate key: %w", err)
	}

	e.logger.Info().Str("identity", e.cfg.Identity).Msg("identity generated")
	return nil
}

// ImportKey imports an armored secret key read from stdin.
func (e *Engine) ImportKey(ctx context.Context, key []byte) error {
	if len(bytes.TrimSpace(key)) == 0 {
		return fmt.Errorf("%w: empty key", ErrCryptoFailure)
	}
	if _, err := e.run(ctx, key, "--import"); err != nil {
		return fmt.Errorf("%w: import: %w", ErrCryptoFailure, err)
	}
	return nil
}

// ExportKey returns the armored secret key of the identity. When passphrase
// is non-empty it is supplied to gpg, which needs it to re-protect the key
// on export.
func (e *Engine) ExportKey(ctx context.Context, passphrase []byte) ([]byte, error) {
	args := []string{"--export-secret-keys", "--armor", e.cfg.Identity}
	if len(passphrase) > 0 {
		path, cleanup, err := e.writeCarrier(passphrase)
		if err != nil {
			return nil, err
		}
		defer cleanup()
		args = append([]string{"--passphrase-file", path}, args...)
	}

	out, err := e.run(ctx, nil, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: export: %w", ErrCryptoFailure, err)
	}
	return out, nil
}

// Encrypt encrypts plaintext to the identity and returns ASCII armor.
func (e *Engine) Encrypt(ctx context.Context, plaintext []byte) ([]byte, error) {
	out, err := e.run(ctx, plaintext, "--trust-model", "always", "--armor", "--recipient", e.cfg.Identity, "--encrypt")
	if err != nil {
		return nil, fmt.Errorf("%w: encrypt: %w", ErrCryptoFailure, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: encrypt produced no output", ErrCryptoFailure)
	}
	return out, nil
}

// Decrypt decrypts ciphertext using passphrase to unlock the secret key.
func (e *Engine) Decrypt(ctx context.Context, ciphertext, passphrase []byte) ([]byte, error) {
	path, cleanup, err := e.writeCarrier(passphrase)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	out, err := e.run(ctx, ciphertext, "--passphrase-file", path, "--decrypt")
	if err != nil {
		return nil, fmt.Errorf("%w: decrypt: %w", ErrCryptoFailure, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: decrypt produced no output", ErrCryptoFailure)
	}
	return out, nil
}

func (e *Engine) run(ctx context.Context, stdin []byte, args ...string) ([]byte, error) {
	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	full := append([]string{"--batch", "--no-tty", "--quiet", "--pinentry-mode", "loopback"}, args...)
	cmd := exec.CommandContext(ctx, e.cfg.Binary, full...)
	if e.cfg.HomeDir != "" {
		cmd.Env = append(os.Environ(), "GNUPGHOME="+e.cfg.HomeDir)
	}
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		e.logger.Debug().
			Str("op", args[0]).
			Str("stderr", lastLine(stderr.String())).
			Err(err).
			Msg("gpg failed")
		return nil, err
	}
	return stdout.Bytes(), nil
}

// writeCarrier stores content in a fresh owner-only file under the secure tmp
// directory. cleanup removes the file and is safe to call once.
func (e *Engine) writeCarrier(content []byte) (string, func(), error) {
	path := filepath.Join(e.cfg.SecureTmpDir, carrierPrefix+utils.NewID())

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrCarrierWrite, err)
	}

	cleanup := func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			e.logger.Warn().Err(err).Msg("failed to remove carrier file")
		}
	}

	_, werr := f.Write(content)
	cerr := f.Close()
	if werr != nil || cerr != nil {
		cleanup()
		return "", nil, fmt.Errorf("%w: %w", ErrCarrierWrite, errors.Join(werr, cerr))
	}

	return path, cleanup, nil
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
