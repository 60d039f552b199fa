// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements talosctl, the operator's command-line client of
// the custodian.
//
// Commands talk to the custodian directly over its RPC endpoint:
//
//	talosctl status
//	talosctl init
//	talosctl import <key-file>
//	talosctl unlock
//	talosctl export-key [-o file]
//
// Passphrases are read without echo when stdin is a terminal. unlock and
// import finish with a canary round trip, so a wrong passphrase is reported
// immediately instead of on the first decrypt.
package client
