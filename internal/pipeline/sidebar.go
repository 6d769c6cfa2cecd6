package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrSidebarRender indicates the sidebar or chapter template failed to execute.
var ErrSidebarRender = errors.New("sidebar template rendering failed")

// Chapter is one sidebar entry.
type Chapter struct {
	Title string
	Href  string
}

// SidebarBuilder renders the shared navigation fragment from a chapter
// template (one entry) and a sidebar template (the wrapper).
type SidebarBuilder struct {
	chapter *template.Template
	sidebar *template.Template
}

// NewSidebarBuilder parses both templates.
// Chapter templates see {{.Href}} and {{.Title}}; sidebar templates see
// {{.Title}}, {{.Updated}} and {{.Chapters}}.
func NewSidebarBuilder(chapterTmpl, sidebarTmpl string) (*SidebarBuilder, error) {
	chapter, err := template.New("chapter").Parse(chapterTmpl)
	if err != nil {
		return nil, fmt.Errorf("parsing chapter template: %w", err)
	}
	sidebar, err := template.New("sidebar").Parse(sidebarTmpl)
	if err != nil {
		return nil, fmt.Errorf("parsing sidebar template: %w", err)
	}
	return &SidebarBuilder{chapter: chapter, sidebar: sidebar}, nil
}

// Build renders one chapter entry per chapter, in order, and wraps them with
// the sidebar template. Titles and hrefs are escaped by html/template.
// updated may be empty.
func (s *SidebarBuilder) Build(title, updated string, chapters []Chapter) (string, error) {
	var entries strings.Builder
	for _, ch := range chapters {
		if err := s.chapter.Execute(&entries, ch); err != nil {
			return "", fmt.Errorf("%w: chapter %q: %v", ErrSidebarRender, ch.Title, err)
		}
	}

	data := struct {
		Title    string
		Updated  string
		Chapters template.HTML
	}{
		Title:   title,
		Updated: updated,
		// #nosec G203 -- entries were produced by the escaping chapter template
		Chapters: template.HTML(entries.String()),
	}

	var buf bytes.Buffer
	if err := s.sidebar.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSidebarRender, err)
	}
	return buf.String(), nil
}
