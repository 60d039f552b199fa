// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// CLIConfig holds the talosctl defaults read from the environment. Command
// flags override every field.
type CLIConfig struct {
	CustodianURL   string        `env:"TALOS_CUSTODIAN_URL" envDefault:"http://127.0.0.1:5000"`
	RPCKey         string        `env:"TALOS_RPC_KEY"`
	RequestTimeout time.Duration `env:"TALOS_REQUEST_TIMEOUT" envDefault:"2m"`
}

// GetCLIConfig reads [CLIConfig] from the environment.
func GetCLIConfig() (*CLIConfig, error) {
	cfg := &CLIConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
