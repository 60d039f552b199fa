// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

func (cfg *StructuredConfig) validateCustodian() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: listen address is required", ErrInvalidServerConfigs)
	}
	if cfg.App.Identity == "" {
		return fmt.Errorf("%w: identity is required", ErrInvalidAppConfigs)
	}
	if cfg.Custodian.GPGBinary == "" || cfg.Custodian.SecureTmpDir == "" {
		return fmt.Errorf("%w: gpg binary and secure tmp dir are required", ErrInvalidCustodianConfigs)
	}
	if cfg.Custodian.GPGTimeout < 0 {
		return fmt.Errorf("%w: gpg timeout must not be negative", ErrInvalidCustodianConfigs)
	}

	// A request must be allowed to outlive the gpg call it waits for.
	if cfg.Server.RequestTimeout < cfg.Custodian.GPGTimeout {
		cfg.Server.RequestTimeout = cfg.Custodian.GPGTimeout
	}

	return nil
}

func (cfg *StructuredConfig) validateStorage() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: listen address is required", ErrInvalidServerConfigs)
	}
	if cfg.App.Identity == "" {
		return fmt.Errorf("%w: identity is required", ErrInvalidAppConfigs)
	}
	if cfg.Adapter.CustodianURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: custodian url and request timeout are required", ErrInvalidAdapterConfigs)
	}
	if cfg.Server.RequestTimeout < cfg.Adapter.RequestTimeout {
		cfg.Server.RequestTimeout = cfg.Adapter.RequestTimeout
	}

	if cfg.Storage.StoreDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("%w: store dir is required", ErrInvalidStorageConfigs)
		}
		cfg.Storage.StoreDir = filepath.Join(home, ".password-store")
	}

	if err := cfg.Storage.Versioning.validate(); err != nil {
		return err
	}

	if cfg.Backup.Enabled() && cfg.Backup.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive", ErrInvalidBackupConfigs)
	}

	return nil
}

func (v Versioning) validate() error {
	switch v.Backend {
	case "", BackendLocal:
		return nil
	case BackendGit:
		if v.RepositoryURL == "" || v.SSHKeyPath == "" {
			return fmt.Errorf("%w: git backend requires repository url and ssh key path", ErrInvalidVersioningConfigs)
		}
		if v.Branch == "" {
			return fmt.Errorf("%w: git backend requires a branch", ErrInvalidVersioningConfigs)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidVersioningConfigs, v.Backend)
	}
}
