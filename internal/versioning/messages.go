// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package versioning

// Commit messages recorded for tree mutations.
const (
	MsgUpdate         = "Update secret: %s"
	MsgMove           = "Move secret from %s to %s"
	MsgDeleteSecret   = "Delete secret: %s"
	MsgDeleteCategory = "Delete category: %s"
	MsgAddCategory    = "Add category: %s"
	MsgRestored       = "Restored from backup"
)
