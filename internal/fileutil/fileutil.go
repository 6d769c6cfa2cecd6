// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// File modes used for generated output.
const (
	DirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	FilePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

const (
	markdownExt = ".md"
	htmlExt     = ".html"
)

// Sentinel errors for file utility operations.
var (
	ErrInvalidExtension = errors.New("not a markdown file")
	ErrNotDirectory     = errors.New("not a directory")
)

// MarkdownToHTMLPath rewrites the trailing ".md" extension of p to ".html".
// Only the final extension is touched: "a.md.md" becomes "a.md.html".
// Paths that do not end with ".md" return ErrInvalidExtension.
//
// Examples:
//   - "README.md" -> "README.html"
//   - "./src/rust.md" -> "./src/rust.html"
//   - "./src/file.md.md" -> "./src/file.md.html"
//   - "notes.txt" -> ErrInvalidExtension
func MarkdownToHTMLPath(p string) (string, error) {
	if !strings.HasSuffix(p, markdownExt) {
		return "", fmt.Errorf("%w: %q", ErrInvalidExtension, p)
	}
	return strings.TrimSuffix(p, markdownExt) + htmlExt, nil
}

// IsMarkdownPath reports whether p ends with ".md".
func IsMarkdownPath(p string) bool {
	return strings.HasSuffix(p, markdownExt)
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "default" -> false (name)
//   - "./custom.css" -> true (relative path)
//   - "/absolute/path.css" -> true (absolute)
//   - "sub/dir" -> true (contains separator)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsURL returns true if the string looks like a URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// ResetDir removes dir and everything under it, then recreates it empty.
func ResetDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("removing %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPermissions); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	// #nosec G306 -- generated site files are meant to be readable
	if err := os.WriteFile(path, data, FilePermissions); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// CopyDir copies the tree rooted at src into dst and returns the number of
// files and bytes copied. Symlinks and other special files are skipped.
func CopyDir(src, dst string) (files int, bytes int64, err error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, 0, fmt.Errorf("reading %s: %w", src, err)
	}
	if !info.IsDir() {
		return 0, 0, fmt.Errorf("%w: %s", ErrNotDirectory, src)
	}

	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			return os.MkdirAll(target, DirPermissions)
		case !d.Type().IsRegular():
			return nil
		}

		n, err := copyFile(path, target)
		if err != nil {
			return err
		}
		files++
		bytes += n
		return nil
	})
	if err != nil {
		return files, bytes, fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return files, bytes, nil
}

func copyFile(src, dst string) (n int64, err error) {
	in, err := os.Open(src) // #nosec G304 -- walked path under the source tree
	if err != nil {
		return 0, err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePermissions) // #nosec G304 -- mirrored path under the output tree
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
