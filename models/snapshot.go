// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ImportReport summarizes a snapshot restore.
type ImportReport struct {
	Files       int `json:"files"`
	Directories int `json:"directories"`
	Skipped     int `json:"skipped"`
}
