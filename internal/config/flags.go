// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses args into a partial [StructuredConfig].
//
// Flags:
//
//	-a listen address in format [host]:[port]
//	-c/-config json file path with configs
//	-identity gpg identity email
//	-rpc-key custodian request signing key
//	-log-level zerolog level
//	-request-timeout server request timeout (e.g. "30s")
//	-gpg gpg binary
//	-gnupg-home GNUPGHOME for the gpg subprocess
//	-secure-tmp memory-backed directory for passphrase files
//	-custodian custodian base URL
//	-s store directory
//	-versioning versioning backend (local, git)
//	-repo git remote URL
//	-ssh-key git SSH private key path
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var cfg StructuredConfig

	fs := flag.NewFlagSet("talos", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.Identity, "identity", "", "gpg identity email")
	fs.StringVar(&cfg.App.RPCKey, "rpc-key", "", "Custodian request signing key")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Custodian.GPGBinary, "gpg", "", "gpg binary")
	fs.StringVar(&cfg.Custodian.GNUPGHome, "gnupg-home", "", "GNUPGHOME for gpg")
	fs.StringVar(&cfg.Custodian.SecureTmpDir, "secure-tmp", "", "Memory-backed directory for passphrase files")
	fs.StringVar(&cfg.Adapter.CustodianURL, "custodian", "", "Custodian base URL")
	fs.StringVar(&cfg.Storage.StoreDir, "s", "", "Store directory")
	fs.StringVar(&cfg.Storage.Versioning.Backend, "versioning", "", "Versioning backend (local, git)")
	fs.StringVar(&cfg.Storage.Versioning.RepositoryURL, "repo", "", "Git remote URL")
	fs.StringVar(&cfg.Storage.Versioning.SSHKeyPath, "ssh-key", "", "Git SSH private key path")

	var timeout time.Duration
	fs.DurationVar(&timeout, "gpg-timeout", 0, "gpg invocation timeout")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Custodian.GPGTimeout = timeout
	cfg.JSONFilePath = jsonConfigPath

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
