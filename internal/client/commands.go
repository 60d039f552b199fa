// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/talos-vault/internal/service"
	"github.com/MKhiriev/talos-vault/models"
)

// ─── status ──────────────────────────────────────────────────────────────────

func (a *App) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the custodian seal state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			custodian, err := a.newCustodian()
			if err != nil {
				return err
			}

			state, err := custodian.Check(cmd.Context())
			if err != nil {
				return fmt.Errorf("check custodian: %w", err)
			}

			fmt.Fprintf(a.out, "%s custodian is %s\n", color.CyanString("→"), colorState(state))
			return nil
		},
	}
}

func colorState(state models.SealState) string {
	switch state {
	case models.SealStateUnsealed:
		return color.GreenString(string(state))
	case models.SealStateSealed:
		return color.YellowString(string(state))
	default:
		return color.RedString(string(state))
	}
}

// ─── init ────────────────────────────────────────────────────────────────────

func (a *App) initCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate the vault master key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			custodian, err := a.newCustodian()
			if err != nil {
				return err
			}

			state, err := custodian.Check(cmd.Context())
			if err != nil {
				return fmt.Errorf("check custodian: %w", err)
			}
			if state != models.SealStateUninitialized {
				return fmt.Errorf("%w (state %s)", ErrNotUninitialized, state)
			}

			passphrase, err := a.readNewPassphrase()
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s generating key, this can take a while\n", color.CyanString("→"))
			if err = custodian.Initialize(cmd.Context(), passphrase); err != nil {
				return fmt.Errorf("initialize: %w", err)
			}

			fmt.Fprintf(a.out, "%s vault initialized and unsealed\n", color.GreenString("✓"))
			return nil
		},
	}
}

// ─── import ──────────────────────────────────────────────────────────────────

func (a *App) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <key-file>",
		Short: "Import an armored master key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read key file: %w", err)
			}

			passphrase, err := a.readPassword("Key passphrase: ")
			if err != nil {
				return err
			}
			if passphrase == "" {
				return ErrEmptyPassphrase
			}

			custodian, err := a.newCustodian()
			if err != nil {
				return err
			}
			if err = custodian.Import(cmd.Context(), string(key), passphrase); err != nil {
				return fmt.Errorf("import: %w", err)
			}
			fmt.Fprintf(a.out, "%s key imported\n", color.GreenString("✓"))

			if err = service.VerifyPassphrase(cmd.Context(), custodian); err != nil {
				return a.reportRejected(err)
			}
			fmt.Fprintf(a.out, "%s passphrase verified\n", color.GreenString("✓"))
			return nil
		},
	}
}

// ─── unlock ──────────────────────────────────────────────────────────────────

func (a *App) unlockCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock",
		Short: "Hand the master passphrase to the custodian",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			passphrase, err := a.readPassword("Master passphrase: ")
			if err != nil {
				return err
			}
			if passphrase == "" {
				return ErrEmptyPassphrase
			}

			custodian, err := a.newCustodian()
			if err != nil {
				return err
			}
			if err = custodian.Unlock(cmd.Context(), passphrase); err != nil {
				return fmt.Errorf("unlock: %w", err)
			}

			if err = service.VerifyPassphrase(cmd.Context(), custodian); err != nil {
				return a.reportRejected(err)
			}
			fmt.Fprintf(a.out, "%s vault unsealed\n", color.GreenString("✓"))
			return nil
		},
	}
}

func (a *App) reportRejected(err error) error {
	if errors.Is(err, service.ErrKeyRejected) {
		fmt.Fprintf(a.errOut, "%s the custodian rejected the passphrase, run unlock again\n", color.RedString("✗"))
	}
	return err
}

// ─── export-key ──────────────────────────────────────────────────────────────

func (a *App) exportKeyCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export-key",
		Short: "Export the armored master key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			custodian, err := a.newCustodian()
			if err != nil {
				return err
			}

			armored, err := custodian.ExportKey(cmd.Context())
			if err != nil {
				return fmt.Errorf("export key: %w", err)
			}
			if armored == "" {
				return ErrEmptyExport
			}

			if output == "" {
				fmt.Fprint(a.out, armored)
				return nil
			}

			if err = os.WriteFile(output, []byte(armored), 0o600); err != nil {
				return fmt.Errorf("write key file: %w", err)
			}
			fmt.Fprintf(a.errOut, "%s key written to %s\n", color.GreenString("✓"), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the key to this file instead of stdout")
	return cmd
}
