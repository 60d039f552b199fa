// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store keeps the secret tree on disk.
//
// Categories are directories; each entry is one ASCII-armored OpenPGP file
// named <path>.gpg. A category created empty holds a .gitkeep placeholder so
// it survives in version control. The root holds a .gpg-id file naming the
// vault identity and, with the git backend, the .git directory.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MKhiriev/talos-vault/internal/logger"
	"github.com/MKhiriev/talos-vault/models"
)

const (
	CiphertextExt    = ".gpg"
	PlaceholderName  = ".gitkeep"
	IdentityFileName = ".gpg-id"
	GitDirName       = ".git"

	dirPerm  os.FileMode = 0o700
	filePerm os.FileMode = 0o600
)

// EntryKind tells what a deleted path was.
type EntryKind int

const (
	KindEntry EntryKind = iota + 1
	KindCategory
)

// Tree is the on-disk secret tree rooted at a single directory.
type Tree struct {
	root   string
	logger *logger.Logger
}

// NewTree returns a Tree rooted at root. The directory is not touched until
// Bootstrap or a write.
func NewTree(root string, logger *logger.Logger) *Tree {
	return &Tree{root: filepath.Clean(root), logger: logger}
}

// Root returns the absolute or relative store root as configured.
func (t *Tree) Root() string {
	return t.root
}

// Bootstrap creates the root and writes the identity file when it is absent.
// An existing identity file is left untouched.
func (t *Tree) Bootstrap(identity string) error {
	if err := os.MkdirAll(t.root, dirPerm); err != nil {
		return fmt.Errorf("create store root: %w", err)
	}

	idPath := filepath.Join(t.root, IdentityFileName)
	f, err := os.OpenFile(idPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, filePerm)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("create identity file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(identity + "\n"); err != nil {
		return fmt.Errorf("write identity file: %w", err)
	}
	t.logger.Info().Str("root", t.root).Msg("store bootstrapped")
	return nil
}

// List returns the tree below the root, sorted by name at every level.
// Version-control metadata, the identity file and placeholders are omitted;
// entry names and paths are shown without the ciphertext extension.
func (t *Tree) List(ctx context.Context) ([]models.TreeNode, error) {
	nodes, err := t.list(ctx, t.root, "")
	if errors.Is(err, fs.ErrNotExist) {
		return []models.TreeNode{}, nil
	}
	return nodes, err
}

func (t *Tree) list(ctx context.Context, dir, rel string) ([]models.TreeNode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	nodes := make([]models.TreeNode, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if hiddenFromListing(name) {
			continue
		}

		if e.IsDir() {
			childRel := path.Join(rel, name)
			children, err := t.list(ctx, filepath.Join(dir, name), childRel)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, models.TreeNode{
				Name:     name,
				Path:     childRel,
				IsDir:    true,
				Children: children,
			})
			continue
		}

		display := strings.TrimSuffix(name, CiphertextExt)
		nodes = append(nodes, models.TreeNode{
			Name: display,
			Path: path.Join(rel, display),
		})
	}

	sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].Name < nodes[j].Name })
	return nodes, nil
}

func hiddenFromListing(name string) bool {
	return name == GitDirName || name == IdentityFileName || name == PlaceholderName
}

// entryFile returns the ciphertext file for a validated logical path.
func (t *Tree) entryFile(p string) string {
	return filepath.Join(t.root, filepath.FromSlash(p)+CiphertextExt)
}

func (t *Tree) dirPath(p string) string {
	return filepath.Join(t.root, filepath.FromSlash(p))
}

// ReadEntry returns the ciphertext stored at p. A missing entry reads as
// empty ciphertext.
func (t *Tree) ReadEntry(p string) ([]byte, error) {
	clean, err := ValidatePath(p)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(t.entryFile(clean))
	if errors.Is(err, fs.ErrNotExist) {
		return []byte{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read entry: %w", err)
	}
	return data, nil
}

// WriteEntry stores ciphertext at p, creating parent categories as needed.
func (t *Tree) WriteEntry(p string, ciphertext []byte) error {
	clean, err := ValidatePath(p)
	if err != nil {
		return err
	}

	if isDir(t.dirPath(clean)) {
		return fmt.Errorf("%w: %s is a category", ErrPathConflict, clean)
	}

	file := t.entryFile(clean)
	if err := os.MkdirAll(filepath.Dir(file), dirPerm); err != nil {
		return fmt.Errorf("create parent categories: %w", err)
	}
	if err := os.WriteFile(file, ciphertext, filePerm); err != nil {
		return fmt.Errorf("write entry: %w", err)
	}
	return nil
}

// RemoveEntry deletes the entry at p.
func (t *Tree) RemoveEntry(p string) error {
	clean, err := ValidatePath(p)
	if err != nil {
		return err
	}

	if err := os.Remove(t.entryFile(clean)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, clean)
		}
		return fmt.Errorf("remove entry: %w", err)
	}
	return nil
}

// Delete removes the entry at p, or the category at p when it holds nothing
// but its placeholder.
func (t *Tree) Delete(p string) (EntryKind, error) {
	clean, err := ValidatePath(p)
	if err != nil {
		return 0, err
	}

	if isFile(t.entryFile(clean)) {
		if err := os.Remove(t.entryFile(clean)); err != nil {
			return 0, fmt.Errorf("remove entry: %w", err)
		}
		return KindEntry, nil
	}

	dir := t.dirPath(clean)
	if !isDir(dir) {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, clean)
	}

	children, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read category: %w", err)
	}
	for _, c := range children {
		if c.Name() != PlaceholderName {
			return 0, fmt.Errorf("%w: %s", ErrCategoryNotEmpty, clean)
		}
	}

	if err := os.RemoveAll(dir); err != nil {
		return 0, fmt.Errorf("remove category: %w", err)
	}
	return KindCategory, nil
}

// CreateCategory creates the category at p with its placeholder. Creating an
// existing category only ensures the placeholder.
func (t *Tree) CreateCategory(p string) error {
	clean, err := ValidatePath(p)
	if err != nil {
		return err
	}

	if isFile(t.entryFile(clean)) {
		return fmt.Errorf("%w: %s is an entry", ErrPathConflict, clean)
	}

	dir := t.dirPath(clean)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, PlaceholderName), nil, filePerm); err != nil {
		return fmt.Errorf("create placeholder: %w", err)
	}
	return nil
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
