package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// ResolveCollision picks a name for base in dir that does not already
// exist, probing base, base1, base2, ... The decimal suffix goes after the
// whole name, so "a.txt" collides into "a.txt1".
func ResolveCollision(dir, base string) string {
	target := base
	for i := 1; ; i++ {
		if _, err := os.Lstat(filepath.Join(dir, target)); os.IsNotExist(err) {
			return target
		}
		target = base + strconv.Itoa(i)
	}
}

// CopyFileOrDir copies src to dst, recursing into directories and
// preserving permission bits.
func CopyFileOrDir(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return copyDir(src, dst, info.Mode())
	}
	return copyFile(src, dst, info.Mode())
}

func copyFile(src, dst string, mode os.FileMode) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, mode.Perm())
}

func copyDir(src, dst string, mode os.FileMode) error {
	if err := os.MkdirAll(dst, mode.Perm()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		if err := CopyFileOrDir(srcPath, dstPath); err != nil {
			return fmt.Errorf("copy %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// Rename renames an entry within dir.
func Rename(dir, oldName, newName string) error {
	return os.Rename(filepath.Join(dir, oldName), filepath.Join(dir, newName))
}

// Delete removes path and anything under it.
func Delete(path string) error {
	return os.RemoveAll(path)
}
