// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/talos-vault/internal/logger"
	"github.com/MKhiriev/talos-vault/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestTree(t *testing.T) *Tree {
	t.Helper()
	tree := NewTree(t.TempDir(), logger.Nop())
	require.NoError(t, tree.Bootstrap("admin@talos.local"))
	return tree
}

func mustWrite(t *testing.T, tree *Tree, p, content string) {
	t.Helper()
	require.NoError(t, tree.WriteEntry(p, []byte(content)))
}

func buildZip(t *testing.T, files map[string]string) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return bytes.NewReader(buf.Bytes())
}

// ── ValidatePath ──────────────────────────────────────────────────────────────

func TestValidatePath(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "email/google", want: "email/google"},
		{in: " /bank/ ", want: "bank"},
		{in: "", wantErr: true},
		{in: "/", wantErr: true},
		{in: "a/../b", wantErr: true},
		{in: "../etc/passwd", wantErr: true},
		{in: "a//b", wantErr: true},
		{in: "./a", wantErr: true},
		{in: `a\b`, wantErr: true},
		{in: ".git/config", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ValidatePath(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Bootstrap ─────────────────────────────────────────────────────────────────

func TestBootstrap_WritesIdentityOnce(t *testing.T) {
	root := filepath.Join(t.TempDir(), "store")
	tree := NewTree(root, logger.Nop())

	require.NoError(t, tree.Bootstrap("first@talos.local"))
	require.NoError(t, tree.Bootstrap("second@talos.local"))

	data, err := os.ReadFile(filepath.Join(root, IdentityFileName))
	require.NoError(t, err)
	assert.Equal(t, "first@talos.local\n", string(data))
}

// ── List ──────────────────────────────────────────────────────────────────────

func TestList_ShapeAndOrdering(t *testing.T) {
	tree := newTestTree(t)
	mustWrite(t, tree, "zeta", "z")
	mustWrite(t, tree, "email/google", "g")
	mustWrite(t, tree, "email/aol", "a")
	require.NoError(t, tree.CreateCategory("empty"))
	require.NoError(t, os.MkdirAll(filepath.Join(tree.Root(), GitDirName, "objects"), 0o700))

	nodes, err := tree.List(context.Background())
	require.NoError(t, err)

	want := []models.TreeNode{
		{Name: "email", Path: "email", IsDir: true, Children: []models.TreeNode{
			{Name: "aol", Path: "email/aol"},
			{Name: "google", Path: "email/google"},
		}},
		{Name: "empty", Path: "empty", IsDir: true, Children: []models.TreeNode{}},
		{Name: "zeta", Path: "zeta"},
	}
	assert.Equal(t, want, nodes)
}

func TestList_MissingRoot(t *testing.T) {
	tree := NewTree(filepath.Join(t.TempDir(), "absent"), logger.Nop())
	nodes, err := tree.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

// ── entries ───────────────────────────────────────────────────────────────────

func TestReadEntry_MissingIsEmpty(t *testing.T) {
	tree := newTestTree(t)
	data, err := tree.ReadEntry("nothing/here")
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestWriteEntry_CreatesParentsWithPrivatePerms(t *testing.T) {
	tree := newTestTree(t)
	mustWrite(t, tree, "a/b/c", "CT")

	data, err := tree.ReadEntry("a/b/c")
	require.NoError(t, err)
	assert.Equal(t, "CT", string(data))

	info, err := os.Stat(filepath.Join(tree.Root(), "a", "b", "c.gpg"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteEntry_ConflictsWithCategory(t *testing.T) {
	tree := newTestTree(t)
	require.NoError(t, tree.CreateCategory("bank"))

	assert.ErrorIs(t, tree.WriteEntry("bank", []byte("x")), ErrPathConflict)

	mustWrite(t, tree, "mail", "x")
	assert.ErrorIs(t, tree.CreateCategory("mail"), ErrPathConflict)
}

func TestRemoveEntry(t *testing.T) {
	tree := newTestTree(t)
	mustWrite(t, tree, "a", "x")

	require.NoError(t, tree.RemoveEntry("a"))
	assert.ErrorIs(t, tree.RemoveEntry("a"), ErrNotFound)
}

// ── Delete ────────────────────────────────────────────────────────────────────

func TestDelete(t *testing.T) {
	tree := newTestTree(t)
	mustWrite(t, tree, "bank/visa", "x")
	require.NoError(t, tree.CreateCategory("empty"))

	_, err := tree.Delete("bank")
	assert.ErrorIs(t, err, ErrCategoryNotEmpty)

	kind, err := tree.Delete("bank/visa")
	require.NoError(t, err)
	assert.Equal(t, KindEntry, kind)

	kind, err = tree.Delete("empty")
	require.NoError(t, err)
	assert.Equal(t, KindCategory, kind)
	assert.NoDirExists(t, filepath.Join(tree.Root(), "empty"))

	_, err = tree.Delete("ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = tree.Delete("../outside")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestCreateCategory_Idempotent(t *testing.T) {
	tree := newTestTree(t)
	require.NoError(t, tree.CreateCategory("x/y"))
	require.NoError(t, tree.CreateCategory("x/y"))
	assert.FileExists(t, filepath.Join(tree.Root(), "x", "y", PlaceholderName))
}

// ── snapshots ─────────────────────────────────────────────────────────────────

func TestSnapshot_RoundTrip(t *testing.T) {
	src := newTestTree(t)
	mustWrite(t, src, "email/google", "CT1")
	mustWrite(t, src, "root", "CT2")
	require.NoError(t, src.CreateCategory("empty"))
	require.NoError(t, os.MkdirAll(filepath.Join(src.Root(), GitDirName), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(src.Root(), GitDirName, "HEAD"), []byte("ref"), 0o600))

	var buf bytes.Buffer
	require.NoError(t, src.ExportSnapshot(context.Background(), &buf))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	for _, f := range zr.File {
		assert.Equal(t, zip.Store, f.Method, f.Name)
		assert.NotContains(t, f.Name, GitDirName+"/")
	}

	dst := NewTree(filepath.Join(t.TempDir(), "restored"), logger.Nop())
	report, err := dst.ImportSnapshot(context.Background(), bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, 4, report.Files)
	assert.Zero(t, report.Skipped)

	want, err := src.List(context.Background())
	require.NoError(t, err)
	got, err := dst.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	data, err := dst.ReadEntry("email/google")
	require.NoError(t, err)
	assert.Equal(t, "CT1", string(data))
}

func TestImportSnapshot_SkipsTraversal(t *testing.T) {
	parent := t.TempDir()
	tree := NewTree(filepath.Join(parent, "store"), logger.Nop())

	archive := buildZip(t, map[string]string{
		"../evil.gpg":      "x",
		"a/../../evil2":    "x",
		"/etc/evil3":       "x",
		".git/hooks/post":  "x",
		"ok/entry.gpg":     "CT",
		"dir/":             "",
	})

	report, err := tree.ImportSnapshot(context.Background(), archive, archive.Size())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Files)
	assert.Equal(t, 1, report.Directories)
	assert.Equal(t, 4, report.Skipped)
	assert.NoFileExists(t, filepath.Join(parent, "evil.gpg"))
	assert.NoFileExists(t, filepath.Join(parent, "evil2"))
	assert.NoDirExists(t, filepath.Join(tree.Root(), GitDirName))
	assert.FileExists(t, filepath.Join(tree.Root(), "ok", "entry.gpg"))
}

func TestImportSnapshot_OverwritesButKeepsOthers(t *testing.T) {
	tree := newTestTree(t)
	mustWrite(t, tree, "keep", "old-keep")
	mustWrite(t, tree, "over", "old")

	archive := buildZip(t, map[string]string{"over.gpg": "new"})
	_, err := tree.ImportSnapshot(context.Background(), archive, archive.Size())
	require.NoError(t, err)

	data, _ := tree.ReadEntry("over")
	assert.Equal(t, "new", string(data))
	data, _ = tree.ReadEntry("keep")
	assert.Equal(t, "old-keep", string(data))
}

func TestImportSnapshot_InvalidArchive(t *testing.T) {
	tree := newTestTree(t)
	r := bytes.NewReader([]byte("definitely not a zip"))

	_, err := tree.ImportSnapshot(context.Background(), r, r.Size())
	assert.ErrorIs(t, err, ErrInvalidArchive)
}
