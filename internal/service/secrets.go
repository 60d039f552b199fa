// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "strings"

const (
	// RedactionMarker replaces the first line of a secret that was not
	// explicitly revealed.
	RedactionMarker = "__TALOS_HIDDEN_SECRET__"

	// KeepSentinel at the start of saved content stands for the first line
	// of the secret currently stored.
	KeepSentinel = "__TALOS_KEEP_SECRET__"

	// Canary is round-tripped through the custodian to prove a passphrase.
	Canary = "TALOS_VERIFY_SEQ"
)

// Redact replaces the first line of plaintext with RedactionMarker. Text
// without a line break is replaced entirely.
func Redact(plaintext string) string {
	i := strings.IndexByte(plaintext, '\n')
	if i < 0 {
		return RedactionMarker
	}
	return RedactionMarker + plaintext[i:]
}

// firstLine returns text up to, not including, the first line break.
func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return line
}
