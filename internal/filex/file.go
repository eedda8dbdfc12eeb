// Package filex holds the filesystem helpers used by the setup steps:
// directory provisioning and whole-file replacement.
package filex

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/deskdev/deskdev-setup/internal/common"
)

// DirPerm is applied to every directory created by EnsureDir.
const DirPerm os.FileMode = 0o755

// EnsureDir creates dir and any missing parents. An existing directory is
// not an error; an existing non-directory is.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("%w: mkdir %s: %w", common.ErrCreateDir, dir, err)
	}
	return nil
}

// EnsureParentDir creates the directory that will contain path and returns it.
func EnsureParentDir(path string) (string, error) {
	dir := filepath.Dir(path)
	if err := EnsureDir(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// WriteFileAtomic replaces path with data. The bytes go to a temporary file
// in the same directory which is synced and then renamed over path, so
// readers observe either the old content or the new one.
//
// When path is a symlink the file it points to is replaced and the link is
// kept. When the target already exists its permission bits are kept and perm
// only applies to a new file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	path, perm, err = resolveTarget(path, perm)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename %s -> %s: %w", tmpName, path, err)
	}
	return nil
}

// resolveTarget follows symlinks at path and picks the mode for the new file.
// A dangling link resolves to nothing and is replaced like a missing file.
func resolveTarget(path string, perm os.FileMode) (string, os.FileMode, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return path, perm, nil
		}
		return "", 0, fmt.Errorf("resolve %s: %w", path, err)
	}

	fi, err := os.Stat(resolved)
	if err != nil {
		return "", 0, fmt.Errorf("stat %s: %w", resolved, err)
	}
	if fi.Mode().IsRegular() {
		perm = fi.Mode().Perm()
	}
	return resolved, perm, nil
}
