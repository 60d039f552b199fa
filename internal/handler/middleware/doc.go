// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package middleware holds the chi middleware shared by the custodian RPC
// router and the tree engine API: trace ids, access logging, HMAC body
// signatures, gzip bodies and the 404-for-unknown-method handler.
package middleware
