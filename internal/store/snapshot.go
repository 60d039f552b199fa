// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/talos-vault/models"
)

// SnapshotFileName is the download name of an exported snapshot.
const SnapshotFileName = "talos_backup.zip"

// ExportSnapshot writes every file under the root except the .git directory
// to w as an uncompressed zip. Member names are root-relative with "/"
// separators.
func (t *Tree) ExportSnapshot(ctx context.Context, w io.Writer) error {
	zw := zip.NewWriter(w)

	err := filepath.WalkDir(t.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(t.root, p)
		if err != nil {
			return err
		}
		if d.IsDir() {
			if rel == GitDirName {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		return addToZip(zw, p, filepath.ToSlash(rel))
	})
	if err != nil {
		_ = zw.Close()
		return fmt.Errorf("export snapshot: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finish snapshot: %w", err)
	}
	return nil
}

func addToZip(zw *zip.Writer, src, name string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	hdr.Name = name
	hdr.Method = zip.Store

	dst, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, f)
	return err
}

// ImportSnapshot extracts a zip produced by ExportSnapshot over the root.
// Existing files at the same paths are overwritten; files absent from the
// archive are left alone. Members that would land outside the root or inside
// .git are skipped and counted in the report. Extraction is not atomic: an
// I/O failure midway leaves the files written so far in place.
func (t *Tree) ImportSnapshot(ctx context.Context, r io.ReaderAt, size int64) (models.ImportReport, error) {
	var report models.ImportReport

	zr, err := zip.NewReader(r, size)
	// Non-local member names are resolved and skipped one by one below.
	if errors.Is(err, zip.ErrInsecurePath) && zr != nil {
		err = nil
	}
	if err != nil {
		return report, fmt.Errorf("%w: %w", ErrInvalidArchive, err)
	}

	if err := os.MkdirAll(t.root, dirPerm); err != nil {
		return report, fmt.Errorf("create store root: %w", err)
	}

	for _, f := range zr.File {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		target, err := t.resolveMember(f.Name)
		if err != nil {
			t.logger.Warn().Str("member", f.Name).Err(err).Msg("skipping archive member")
			report.Skipped++
			continue
		}

		if f.FileInfo().IsDir() || strings.HasSuffix(f.Name, "/") {
			if err := os.MkdirAll(target, dirPerm); err != nil {
				return report, fmt.Errorf("create %s: %w", f.Name, err)
			}
			report.Directories++
			continue
		}

		if err := extractMember(f, target); err != nil {
			return report, fmt.Errorf("extract %s: %w", f.Name, err)
		}
		report.Files++
	}

	return report, nil
}

// resolveMember maps an archive member name to a path under the root.
func (t *Tree) resolveMember(name string) (string, error) {
	name = strings.ReplaceAll(name, "\\", "/")
	if name == "" || strings.HasPrefix(name, "/") || filepath.IsAbs(name) {
		return "", ErrPathTraversal
	}

	target := filepath.Join(t.root, filepath.FromSlash(name))
	rel, err := filepath.Rel(t.root, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrPathTraversal
	}

	first := strings.SplitN(filepath.ToSlash(rel), "/", 2)[0]
	if first == GitDirName {
		return "", fmt.Errorf("%w: version-control metadata", ErrPathTraversal)
	}
	return target, nil
}

func extractMember(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
		return err
	}

	src, err := f.Open()
	if err != nil {
		return errors.Join(ErrInvalidArchive, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, filePerm)
	if err != nil {
		return err
	}

	_, cerr := io.Copy(dst, src)
	return errors.Join(cerr, dst.Close())
}
