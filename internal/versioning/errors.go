// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package versioning

import "errors"

var (
	ErrUnknownBackend           = errors.New("unknown versioning backend")
	ErrMissingRemoteCredentials = errors.New("git remote requires repository url and ssh key")
)
