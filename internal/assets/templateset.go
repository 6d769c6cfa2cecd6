package assets

import (
	"errors"
	"fmt"
	"io/fs"
)

// TemplateSet holds the HTML templates used to assemble book pages.
type TemplateSet struct {
	Name    string // Identifier (name or directory path)
	Page    string // Page skeleton with title, sidebar and content regions
	Chapter string // One sidebar entry; sees {{.Href}} and {{.Title}}
	Sidebar string // Sidebar wrapper; sees {{.Title}} and {{.Chapters}}
}

// DefaultTemplateSetName is the name of the built-in template set.
const DefaultTemplateSetName = "default"

// DefaultStyleName is the name of the built-in CSS style.
const DefaultStyleName = "default"

// Template file names inside a template set directory.
const (
	pageFile    = "page.html"
	chapterFile = "chapter.html"
	sidebarFile = "sidebar.html"
)

// readTemplateSet assembles a TemplateSet from the three files returned by read.
// A set with none of its files is not found; a set with only some is incomplete.
func readTemplateSet(name string, read func(file string) ([]byte, error)) (*TemplateSet, error) {
	files := []string{pageFile, chapterFile, sidebarFile}
	contents := make([]string, len(files))
	var missing []string

	for i, file := range files {
		data, err := read(file)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			missing = append(missing, file)
		case errors.Is(err, ErrPathTraversal):
			return nil, err
		case err != nil:
			return nil, fmt.Errorf("%w: reading %s: %v", ErrAssetRead, file, err)
		default:
			contents[i] = string(data)
		}
	}

	if len(missing) == len(files) {
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %q missing %v", ErrIncompleteTemplateSet, name, missing)
	}

	return &TemplateSet{
		Name:    name,
		Page:    contents[0],
		Chapter: contents[1],
		Sidebar: contents[2],
	}, nil
}
