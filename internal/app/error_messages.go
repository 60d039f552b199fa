// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response messages shared by the custodian RPC
// endpoint, the tree engine API and their middleware.
package app

const (
	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgIntegrityCheckFailed is returned when the HashSHA256 header does not
	// match the request body.
	MsgIntegrityCheckFailed = "Integrity check failed"

	// MsgInvalidGzip is returned for a gzip-encoded body that fails to
	// decompress.
	MsgInvalidGzip = "Invalid gzip data"

	// MsgUnknownMode is returned for a task whose mode is not one of the
	// seven custodian operations.
	MsgUnknownMode = "unknown mode"

	// MsgCustodianFailure is returned when the custodian cannot produce a
	// result tag for a task.
	MsgCustodianFailure = "custodian operation failed"

	// MsgMissingBackupFile is returned by restore when the multipart form has
	// no "backup" file.
	MsgMissingBackupFile = "expected multipart form with a backup file"
)
