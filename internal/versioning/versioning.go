// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package versioning records every mutation of the secret tree.
//
// The local backend discards records. The git backend keeps the store root
// as a git working tree: each record stages all changes, commits them and
// pushes to the configured remote over SSH. Recording never fails the
// caller; errors are logged.
package versioning

import (
	"context"
	"fmt"

	"github.com/MKhiriev/talos-vault/internal/config"
	"github.com/MKhiriev/talos-vault/internal/logger"
)

// Sink receives one commit message per successful mutation.
type Sink interface {
	Commit(ctx context.Context, message string)
}

// Open returns the sink selected by cfg for the tree rooted at root. The git
// backend initializes or opens the repository, configures the remote and
// pulls it once; a remote without usable credentials is an error.
func Open(ctx context.Context, root string, cfg config.Versioning, logger *logger.Logger) (Sink, error) {
	switch cfg.Backend {
	case "", config.BackendLocal:
		logger.Info().Msg("versioning: local backend")
		return NewLocal(logger), nil
	case config.BackendGit:
		sink, err := openGit(ctx, root, cfg, logger)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("branch", cfg.Branch).Msg("versioning: git backend")
		return sink, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

type localSink struct {
	logger *logger.Logger
}

// NewLocal returns a Sink that only logs.
func NewLocal(logger *logger.Logger) Sink {
	return &localSink{logger: logger}
}

func (s *localSink) Commit(_ context.Context, message string) {
	s.logger.Debug().Str("message", message).Msg("change recorded locally")
}
