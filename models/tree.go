// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TreeNode is one element of the secret tree listing.
//
// Path is relative to the store root, uses "/" as separator and never carries
// the ciphertext extension. Children is nil for entries and non-nil (possibly
// empty) for categories.
type TreeNode struct {
	Name     string     `json:"name"`
	Path     string     `json:"path"`
	IsDir    bool       `json:"is_dir"`
	Children []TreeNode `json:"children"`
}
