// Package fileutil provides file and path utility functions on an afero.Fs.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Default permissions for generated files and directories.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

// Sentinel errors for file utility operations.
var (
	ErrNotDirectory = errors.New("not a directory")
	ErrUnsafeClean  = errors.New("refusing to clean directory")
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(fsys afero.Fs, path string) bool {
	ok, err := afero.IsDir(fsys, path)
	return err == nil && ok
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "default" -> false (name)
//   - "./site.css" -> true (relative path)
//   - "/absolute/site.yaml" -> true (absolute)
//   - "C:\windows\site.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsURL returns true if the string looks like a URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// IsCSS returns true if the string looks like CSS content rather than a name or path.
func IsCSS(s string) bool {
	return strings.Contains(s, "{")
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(fsys afero.Fs, path string, data []byte) error {
	if err := fsys.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(fsys, path, data, FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// CleanDir removes dir and everything under it, then recreates it empty.
// Refuses to clean the filesystem root or the current directory.
func CleanDir(fsys afero.Fs, dir string) error {
	clean := filepath.Clean(dir)
	if clean == "." || clean == string(filepath.Separator) || clean == "" {
		return fmt.Errorf("%w: %q", ErrUnsafeClean, dir)
	}
	if err := fsys.RemoveAll(clean); err != nil {
		return fmt.Errorf("removing %s: %w", clean, err)
	}
	if err := fsys.MkdirAll(clean, DirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", clean, err)
	}
	return nil
}

// CopyStats summarizes a directory copy.
type CopyStats struct {
	Files int
	Bytes int64
}

// CopyDir recursively copies the contents of src into dst, creating dst
// and any subdirectories. Existing files in dst are overwritten.
// onFile, if not nil, is called with each destination path after it is written.
func CopyDir(fsys afero.Fs, src, dst string, onFile func(path string, size int64)) (CopyStats, error) {
	var stats CopyStats

	if !DirExists(fsys, src) {
		return stats, fmt.Errorf("%w: %s", ErrNotDirectory, src)
	}

	err := afero.Walk(fsys, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if info.IsDir() {
			return fsys.MkdirAll(target, DirPerm)
		}

		n, err := copyFile(fsys, path, target)
		if err != nil {
			return err
		}
		stats.Files++
		stats.Bytes += n
		if onFile != nil {
			onFile(target, n)
		}
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return stats, nil
}

func copyFile(fsys afero.Fs, src, dst string) (n int64, err error) {
	in, err := fsys.Open(src)
	if err != nil {
		return 0, err
	}
	defer func() { _ = in.Close() }()

	out, err := fsys.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, FilePerm)
	if err != nil {
		return 0, err
	}
	defer func() {
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}
	}()

	return io.Copy(out, in)
}
