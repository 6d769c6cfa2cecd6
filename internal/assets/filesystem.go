package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// FilesystemLoader reads styles and template sets from a directory laid out
// like the embedded assets: styles/<name>.css and templates/<name>/*.html.
type FilesystemLoader struct {
	basePath string // absolute, symlinks resolved
}

// NewFilesystemLoader returns a loader rooted at basePath, which must be a
// readable directory. Errors wrap ErrInvalidBasePath.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	dir, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if real, err := filepath.EvalSymlinks(dir); err == nil {
		dir = real
	}

	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		return nil, fmt.Errorf("%w: %s does not exist", ErrInvalidBasePath, dir)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidBasePath, dir)
	}
	if _, err := os.ReadDir(dir); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{basePath: dir}, nil
}

// LoadStyle reads styles/<name>.css.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	data, err := f.read("styles", name+".css")
	switch {
	case os.IsNotExist(err):
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	case err != nil:
		return "", err
	}
	return string(data), nil
}

// LoadTemplateSet reads page.html, chapter.html and sidebar.html from
// templates/<name>/.
func (f *FilesystemLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}
	if err := f.contain(filepath.Join(f.basePath, "templates", name)); err != nil {
		return nil, err
	}

	return readTemplateSet(name, func(file string) ([]byte, error) {
		return f.read("templates", name, file)
	})
}

// read returns the file at basePath/elem..., refusing files that resolve
// outside basePath through a symlink. Missing files return an error
// satisfying os.IsNotExist.
func (f *FilesystemLoader) read(elem ...string) ([]byte, error) {
	p := filepath.Join(append([]string{f.basePath}, elem...)...)
	data, err := os.ReadFile(p) // #nosec G304 -- elements are validated asset names
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	if err := f.contain(p); err != nil {
		return nil, err
	}
	return data, nil
}

// contain returns ErrPathTraversal unless p, after resolving symlinks,
// lies strictly inside basePath. Paths that do not exist are checked as is.
func (f *FilesystemLoader) contain(p string) error {
	if real, err := filepath.EvalSymlinks(p); err == nil {
		p = real
	}
	rel, err := filepath.Rel(f.basePath, p)
	if err != nil || rel == "." || !filepath.IsLocal(rel) {
		return fmt.Errorf("%w: %s escapes %s", ErrPathTraversal, p, f.basePath)
	}
	return nil
}

var _ AssetLoader = (*FilesystemLoader)(nil)
