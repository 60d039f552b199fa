// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrInvalidPath is returned for empty, absolute or dot-segment paths.
	ErrInvalidPath = errors.New("invalid path")
	// ErrNotFound is returned when a path names neither an entry nor a category.
	ErrNotFound = errors.New("path not found")
	// ErrCategoryNotEmpty refuses deletion of a category that still holds
	// anything besides its placeholder.
	ErrCategoryNotEmpty = errors.New("category is not empty")
	// ErrPathConflict is returned when an entry and a category would share a
	// path.
	ErrPathConflict = errors.New("path is taken by an entry of another kind")
	// ErrInvalidArchive is returned when a snapshot is not a readable zip.
	ErrInvalidArchive = errors.New("invalid snapshot archive")
	// ErrPathTraversal marks snapshot members that resolve outside the root.
	ErrPathTraversal = errors.New("archive member escapes store root")
)
