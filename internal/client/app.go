// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MKhiriev/talos-vault/internal/adapter"
	"github.com/MKhiriev/talos-vault/internal/config"
	"github.com/MKhiriev/talos-vault/internal/logger"
)

var (
	ErrPassphraseMismatch = errors.New("passphrases do not match")
	ErrEmptyPassphrase    = errors.New("passphrase must not be empty")
	ErrNotUninitialized   = errors.New("vault is already initialized")
	ErrEmptyExport        = errors.New("custodian returned no key")
)

// App is the talosctl command tree bound to its I/O.
type App struct {
	custodianURL string
	rpcKey       string
	timeout      time.Duration

	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer

	// readPassword prompts for a secret. Replaced in tests.
	readPassword func(prompt string) (string, error)
	// newCustodian builds the RPC client from the resolved flags.
	newCustodian func() (adapter.CustodianClient, error)

	logger *logger.Logger
}

// NewApp returns an App reading from stdin and writing to stdout/stderr with
// defaults taken from cfg.
func NewApp(cfg *config.CLIConfig, logger *logger.Logger) *App {
	a := &App{
		custodianURL: cfg.CustodianURL,
		rpcKey:       cfg.RPCKey,
		timeout:      cfg.RequestTimeout,
		in:           bufio.NewReader(os.Stdin),
		out:          os.Stdout,
		errOut:       os.Stderr,
		logger:       logger,
	}
	a.readPassword = a.promptPassword
	a.newCustodian = a.dialCustodian
	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "talosctl",
		Short:         "Operate the Talos vault custodian",
		Long:          `Checks, initializes, imports, unlocks and exports the key of a Talos vault custodian.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.PersistentFlags().StringVar(&a.custodianURL, "custodian-url", a.custodianURL, "custodian base URL")
	root.PersistentFlags().StringVar(&a.rpcKey, "rpc-key", a.rpcKey, "shared key signing custodian requests")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", a.timeout, "timeout of a single custodian call")

	root.AddCommand(a.statusCommand())
	root.AddCommand(a.initCommand())
	root.AddCommand(a.importCommand())
	root.AddCommand(a.unlockCommand())
	root.AddCommand(a.exportKeyCommand())

	return root
}

func (a *App) dialCustodian() (adapter.CustodianClient, error) {
	return adapter.NewHTTPCustodianAdapter(
		config.Adapter{CustodianURL: a.custodianURL, RequestTimeout: a.timeout},
		config.App{RPCKey: a.rpcKey},
		a.logger,
	)
}

// promptPassword reads without echo from a terminal, or one line from
// piped stdin.
func (a *App) promptPassword(prompt string) (string, error) {
	fmt.Fprint(a.errOut, prompt)

	if isTerminalStdin() {
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(a.errOut)
		if err != nil {
			return "", fmt.Errorf("read passphrase: %w", err)
		}
		return string(secret), nil
	}

	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func isTerminalStdin() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// readNewPassphrase asks twice and requires both answers to match.
func (a *App) readNewPassphrase() (string, error) {
	first, err := a.readPassword("New master passphrase: ")
	if err != nil {
		return "", err
	}
	if first == "" {
		return "", ErrEmptyPassphrase
	}

	second, err := a.readPassword("Repeat master passphrase: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", ErrPassphraseMismatch
	}
	return first, nil
}
