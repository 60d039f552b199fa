// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package versioning

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"
	"golang.org/x/crypto/ssh"

	"github.com/MKhiriev/talos-vault/internal/config"
	"github.com/MKhiriev/talos-vault/internal/logger"
)

const remoteName = "origin"

type gitSink struct {
	// mu serializes worktree access; go-git worktrees are not safe for
	// concurrent use.
	mu     sync.Mutex
	repo   *git.Repository
	auth   transport.AuthMethod
	branch plumbing.ReferenceName
	author object.Signature
	logger *logger.Logger
}

func openGit(ctx context.Context, root string, cfg config.Versioning, logger *logger.Logger) (*gitSink, error) {
	if cfg.RepositoryURL == "" || cfg.SSHKeyPath == "" {
		return nil, ErrMissingRemoteCredentials
	}

	auth, err := gitssh.NewPublicKeysFromFile("git", cfg.SSHKeyPath, "")
	if err != nil {
		return nil, fmt.Errorf("load ssh key: %w", err)
	}
	auth.HostKeyCallback = ssh.InsecureIgnoreHostKey()

	sink, err := newGitSink(root, cfg, logger)
	if err != nil {
		return nil, err
	}
	sink.auth = auth

	if err := sink.ensureRemote(cfg.RepositoryURL); err != nil {
		return nil, err
	}
	sink.pull(ctx)

	return sink, nil
}

// newGitSink opens or initializes the repository at root without any remote.
func newGitSink(root string, cfg config.Versioning, logger *logger.Logger) (*gitSink, error) {
	branch := plumbing.NewBranchReferenceName(cfg.Branch)

	repo, err := git.PlainOpen(root)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		repo, err = git.PlainInitWithOptions(root, &git.PlainInitOptions{
			InitOptions: git.InitOptions{DefaultBranch: branch},
		})
		if err == nil {
			logger.Info().Str("root", root).Msg("initialized git repository")
		}
	}
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	return &gitSink{
		repo:   repo,
		branch: branch,
		author: object.Signature{Name: cfg.AuthorName, Email: cfg.AuthorEmail},
		logger: logger,
	}, nil
}

func (s *gitSink) ensureRemote(url string) error {
	remote, err := s.repo.Remote(remoteName)
	if errors.Is(err, git.ErrRemoteNotFound) {
		_, err = s.repo.CreateRemote(&gitconfig.RemoteConfig{Name: remoteName, URLs: []string{url}})
		if err != nil {
			return fmt.Errorf("create remote: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("read remote: %w", err)
	}

	if urls := remote.Config().URLs; len(urls) == 0 || urls[0] != url {
		if err := s.repo.DeleteRemote(remoteName); err != nil {
			return fmt.Errorf("replace remote: %w", err)
		}
		if _, err := s.repo.CreateRemote(&gitconfig.RemoteConfig{Name: remoteName, URLs: []string{url}}); err != nil {
			return fmt.Errorf("replace remote: %w", err)
		}
	}
	return nil
}

func (s *gitSink) pull(ctx context.Context) {
	wt, err := s.repo.Worktree()
	if err != nil {
		s.logger.Warn().Err(err).Msg("git worktree unavailable")
		return
	}

	err = wt.PullContext(ctx, &git.PullOptions{
		RemoteName:    remoteName,
		ReferenceName: s.branch,
		Auth:          s.auth,
	})
	switch {
	case err == nil:
		s.logger.Info().Msg("pulled remote changes")
	case errors.Is(err, git.NoErrAlreadyUpToDate):
	default:
		s.logger.Warn().Err(err).Msg("initial pull failed")
	}
}

// Commit stages all changes, commits them with message and pushes the branch
// when a remote is configured. A clean tree produces no commit.
func (s *gitSink) Commit(ctx context.Context, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.With().Str("message", message).Logger()

	wt, err := s.repo.Worktree()
	if err != nil {
		log.Error().Err(err).Msg("git worktree unavailable")
		return
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		log.Error().Err(err).Msg("git add failed")
		return
	}

	status, err := wt.Status()
	if err != nil {
		log.Error().Err(err).Msg("git status failed")
		return
	}
	if status.IsClean() {
		log.Debug().Msg("nothing to commit")
		return
	}

	author := s.author
	author.When = time.Now()
	if _, err := wt.Commit(message, &git.CommitOptions{All: true, Author: &author}); err != nil {
		log.Error().Err(err).Msg("git commit failed")
		return
	}

	if s.auth == nil {
		return
	}

	refSpec := gitconfig.RefSpec(s.branch.String() + ":" + s.branch.String())
	err = s.repo.PushContext(ctx, &git.PushOptions{
		RemoteName: remoteName,
		RefSpecs:   []gitconfig.RefSpec{refSpec},
		Auth:       s.auth,
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		log.Warn().Err(err).Msg("git push failed")
		return
	}
	log.Debug().Msg("change pushed")
}
