package installer

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// BackupSuffix is appended to files replaced by CopyTree.
const BackupSuffix = ".basix.bak"

// CopyResult summarises a CopyTree run.
type CopyResult struct {
	Copied   int
	BackedUp int
	Skipped  int
}

// CopyTree copies every regular file and symlink under src into dst, keeping
// relative paths and file modes. The .git directory is skipped. A file that
// already exists at the destination is renamed with BackupSuffix first; when
// that backup exists too, a numeric suffix is added (.basix.bak.1, ...), so
// earlier backups are never overwritten.
func CopyTree(src, dst string) (CopyResult, error) {
	var res CopyResult

	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}

		isLink := d.Type()&fs.ModeSymlink != 0
		if !d.Type().IsRegular() && !isLink {
			res.Skipped++
			return nil
		}

		target := filepath.Join(dst, rel)
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", rel, err)
		}

		backedUp, err := backup(target)
		if err != nil {
			return err
		}
		if backedUp {
			res.BackedUp++
		}

		if isLink {
			err = copySymlink(path, target)
		} else {
			err = copyFile(path, target)
		}
		if err != nil {
			return fmt.Errorf("failed to copy %s: %w", rel, err)
		}
		res.Copied++
		return nil
	})

	return res, err
}

// backup moves an existing file at path aside. It reports whether it did.
func backup(path string) (bool, error) {
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	dest, err := backupPath(path)
	if err != nil {
		return false, err
	}
	if err := os.Rename(path, dest); err != nil {
		return false, fmt.Errorf("failed to back up %s: %w", path, err)
	}
	return true, nil
}

// backupPath returns the first unused backup name for path.
func backupPath(path string) (string, error) {
	candidate := path + BackupSuffix
	for i := 1; ; i++ {
		_, err := os.Lstat(candidate)
		if os.IsNotExist(err) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to back up %s: %w", path, err)
		}
		candidate = fmt.Sprintf("%s%s.%d", path, BackupSuffix, i)
	}
}

func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func copySymlink(src, dst string) error {
	link, err := os.Readlink(src)
	if err != nil {
		return err
	}
	return os.Symlink(link, dst)
}
