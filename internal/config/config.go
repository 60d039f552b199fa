// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration shared by the custodian
// and the tree engine. Each binary reads the whole structure and validates
// only the groups it uses.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env      : environment variable name for scalar fields.
//   - envDefault: value used when the variable is unset.
type StructuredConfig struct {
	App       App       `envPrefix:"APP_"`
	Server    Server    `envPrefix:"SERVER_"`
	Custodian Custodian `envPrefix:"CUSTODIAN_"`
	Adapter   Adapter   `envPrefix:"ADAPTER_"`
	Storage   Storage   `envPrefix:"STORAGE_"`
	Backup    Backup    `envPrefix:"BACKUP_"`

	// JSONFilePath is the optional path to a JSON configuration file merged
	// on top of env and flags. Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds settings shared by every binary.
type App struct {
	// Identity is the gpg user id (email) of the vault key.
	// Env: APP_IDENTITY
	Identity string `env:"IDENTITY" envDefault:"admin@talos.local"`

	// RPCKey, when set, signs every custodian request and response body with
	// HMAC-SHA256 carried in the HashSHA256 header.
	// Env: APP_RPC_KEY
	RPCKey string `env:"RPC_KEY"`

	// LogLevel is a zerolog level name. Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"debug"`
}

// Server holds the inbound HTTP listener settings.
type Server struct {
	// HTTPAddress is the host:port the server listens on. Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading and writing a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`
}

// Custodian configures the gpg engine used by the custodian.
type Custodian struct {
	// GPGBinary is the gpg executable name or path. Env: CUSTODIAN_GPG_BINARY
	GPGBinary string `env:"GPG_BINARY" envDefault:"gpg"`

	// GNUPGHome overrides GNUPGHOME for the gpg subprocess. Empty keeps the
	// user's default keyring. Env: CUSTODIAN_GNUPG_HOME
	GNUPGHome string `env:"GNUPG_HOME"`

	// SecureTmpDir is the memory-backed directory holding passphrase carrier
	// files. Env: CUSTODIAN_SECURE_TMP_DIR
	SecureTmpDir string `env:"SECURE_TMP_DIR" envDefault:"/dev/shm"`

	// GPGTimeout bounds a single gpg invocation. Zero leaves it unbounded.
	// Env: CUSTODIAN_GPG_TIMEOUT
	GPGTimeout time.Duration `env:"GPG_TIMEOUT"`
}

// Adapter configures the tree engine's client of the custodian.
type Adapter struct {
	// CustodianURL is the base URL of the custodian. Env: ADAPTER_CUSTODIAN_URL
	CustodianURL string `env:"CUSTODIAN_URL" envDefault:"http://127.0.0.1:5000"`

	// RequestTimeout bounds a single RPC round trip. Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"2m"`
}

// Storage configures the tree engine's store.
type Storage struct {
	// StoreDir is the root of the secret tree. Env: STORAGE_STORE_DIR
	StoreDir string `env:"STORE_DIR"`

	Versioning Versioning `envPrefix:"VERSIONING_"`
}

// Versioning selects and configures the versioning sink.
type Versioning struct {
	// Backend is "local" (no history) or "git". Env: STORAGE_VERSIONING_BACKEND
	Backend string `env:"BACKEND" envDefault:"local"`

	RepositoryURL string `env:"REPOSITORY_URL"`
	SSHKeyPath    string `env:"SSH_KEY_PATH"`
	Branch        string `env:"BRANCH" envDefault:"main"`
	AuthorName    string `env:"AUTHOR_NAME" envDefault:"Talos Storage"`
	AuthorEmail   string `env:"AUTHOR_EMAIL" envDefault:"talos@system.local"`
}

// Versioning backends.
const (
	BackendLocal = "local"
	BackendGit   = "git"
)

// Backup configures periodic snapshot shipping to S3-compatible storage.
// Shipping is disabled while S3Bucket is empty.
type Backup struct {
	S3Bucket    string        `env:"S3_BUCKET"`
	S3Prefix    string        `env:"S3_PREFIX" envDefault:"talos"`
	S3Region    string        `env:"S3_REGION" envDefault:"us-east-1"`
	S3Endpoint  string        `env:"S3_ENDPOINT"`
	S3AccessKey string        `env:"S3_ACCESS_KEY"`
	S3SecretKey string        `env:"S3_SECRET_KEY"`
	Interval    time.Duration `env:"INTERVAL" envDefault:"24h"`
}

// Enabled reports whether snapshot shipping is configured.
func (b Backup) Enabled() bool {
	return b.S3Bucket != ""
}

// GetStructuredConfig loads and merges the configuration from all sources in
// priority order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

// GetCustodianConfig returns the configuration validated for the custodian.
func GetCustodianConfig(args []string) (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, err
	}
	return cfg, cfg.validateCustodian()
}

// GetStorageConfig returns the configuration validated for the tree engine.
func GetStorageConfig(args []string) (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, err
	}
	return cfg, cfg.validateStorage()
}
