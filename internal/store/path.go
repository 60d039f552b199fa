// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
)

// ValidatePath checks a logical tree path and returns it trimmed of
// surrounding whitespace and slashes. Paths use "/" separators and may not
// contain empty, "." or ".." segments, backslashes or NUL bytes.
func ValidatePath(p string) (string, error) {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if strings.ContainsAny(p, "\\\x00") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}

	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "", ".", "..":
			return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
		case GitDirName:
			return "", fmt.Errorf("%w: %q is reserved", ErrInvalidPath, p)
		}
	}
	return p, nil
}
