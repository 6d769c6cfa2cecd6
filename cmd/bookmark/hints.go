package main

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	bookmark "github.com/alnah/go-bookmark"
	"github.com/alnah/go-bookmark/internal/config"
	"github.com/alnah/go-bookmark/internal/hints"
	"github.com/alnah/go-bookmark/internal/pipeline"
)

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, env *Environment) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(configCandidates(env))
	case errors.Is(err, bookmark.ErrBookExists):
		return hints.ForBookExists()
	case errors.Is(err, config.ErrUnsafeDistDir):
		return hints.ForUnsafeOutput()
	case errors.Is(err, bookmark.ErrPrepareOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, bookmark.ErrUnknownHighlightStyle):
		return hints.ForHighlightStyle(pipeline.HighlightStyles())
	case errors.Is(err, bookmark.ErrStyleNotFound):
		return hints.ForStyleNotFound(bookmark.StyleNames())
	case errors.Is(err, bookmark.ErrUnknownEngine), errors.Is(err, config.ErrInvalidEngine):
		return hints.ForEngine(pipeline.Engines())
	case errors.Is(err, bookmark.ErrMissingTemplateRegion), errors.Is(err, bookmark.ErrAmbiguousTemplateRegion):
		return hints.ForTemplateRegion(templateSlot(err))
	}
	return ""
}

// configCandidates lists the paths build looks for a config at.
func configCandidates(env *Environment) []string {
	paths := make([]string, 0, len(config.FileNames))
	for _, name := range config.FileNames {
		paths = append(paths, filepath.Join(env.WorkDir, name))
	}
	return paths
}

// templateSlot names the slot a template error is about.
func templateSlot(err error) string {
	msg := err.Error()
	for _, slot := range append(pipeline.RequiredSlots(), pipeline.SlotBase) {
		if strings.Contains(msg, strconv.Quote(slot)) {
			return slot
		}
	}
	return pipeline.SlotContent
}

// pageHint returns the hint printed after a failed page.
func pageHint(err error, rootDir string, env *Environment) string {
	if errors.Is(err, bookmark.ErrReadMarkdown) && errors.Is(err, fs.ErrNotExist) {
		return hints.ForMissingPage(rootDir)
	}
	return hintFor(err, env)
}
