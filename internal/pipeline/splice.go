package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// Slot names every page template must provide.
const (
	SlotTitle   = "title"
	SlotSidebar = "sidebar"
	SlotContent = "content"
)

// Optional slots in <head>. SlotBase receives a <base> element for pages
// nested below the book root, SlotAuthor an author <meta> element.
const (
	SlotBase   = "base"
	SlotAuthor = "author"
)

// Sentinel errors for template splicing.
var (
	ErrMissingTemplateRegion   = errors.New("template region not found")
	ErrAmbiguousTemplateRegion = errors.New("template region defined more than once")
)

// RequiredSlots returns the slots a page template must define.
func RequiredSlots() []string {
	return []string{SlotTitle, SlotSidebar, SlotContent}
}

// SlotMarkers returns the start and end comment markers delimiting slot.
//
//	<!-- bookmark:content -->placeholder<!-- /bookmark:content -->
func SlotMarkers(slot string) (start, end string) {
	return "<!-- bookmark:" + slot + " -->", "<!-- /bookmark:" + slot + " -->"
}

// Splice replaces whatever lies between the markers of slot with fragment.
// The markers themselves are kept, so a spliced document can be spliced again.
// Returns ErrMissingTemplateRegion if either marker is absent or out of order,
// and ErrAmbiguousTemplateRegion if the slot is defined more than once.
func Splice(template, fragment, slot string) (string, error) {
	start, end, err := locateRegion(template, slot)
	if err != nil {
		return "", err
	}
	return template[:start] + fragment + template[end:], nil
}

// SpliceAll splices each slot in order and stops at the first error.
func SpliceAll(template string, fragments map[string]string, slots ...string) (string, error) {
	out := template
	for _, slot := range slots {
		var err error
		if out, err = Splice(out, fragments[slot], slot); err != nil {
			return "", err
		}
	}
	return out, nil
}

// HasSlot reports whether template defines slot exactly once.
func HasSlot(template, slot string) bool {
	_, _, err := locateRegion(template, slot)
	return err == nil
}

// ValidateTemplate checks that template defines each slot exactly once.
func ValidateTemplate(template string, slots ...string) error {
	for _, slot := range slots {
		if _, _, err := locateRegion(template, slot); err != nil {
			return err
		}
	}
	return nil
}

// locateRegion returns the byte range between the start and end markers.
func locateRegion(template, slot string) (int, int, error) {
	startMarker, endMarker := SlotMarkers(slot)

	switch n := strings.Count(template, startMarker); {
	case n == 0:
		return 0, 0, fmt.Errorf("%w: %q", ErrMissingTemplateRegion, slot)
	case n > 1:
		return 0, 0, fmt.Errorf("%w: %q (%d times)", ErrAmbiguousTemplateRegion, slot, n)
	}
	if strings.Count(template, endMarker) > 1 {
		return 0, 0, fmt.Errorf("%w: %q end marker", ErrAmbiguousTemplateRegion, slot)
	}

	start := strings.Index(template, startMarker) + len(startMarker)
	end := strings.Index(template[start:], endMarker)
	if end == -1 {
		return 0, 0, fmt.Errorf("%w: %q has no end marker", ErrMissingTemplateRegion, slot)
	}
	return start, start + end, nil
}
