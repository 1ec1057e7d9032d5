package types

import (
	"fmt"
	"strings"
)

// Section is a fixed menu category.
type Section string

// Menu sections, in display order.
const (
	SectionDrinks   Section = "drinks"
	SectionDesserts Section = "desserts"
	SectionMeals    Section = "meals"
	SectionSides    Section = "sides"
)

// Sections lists every section in display order. Backends iterate sections
// in this order.
var Sections = []Section{
	SectionDrinks,
	SectionDesserts,
	SectionMeals,
	SectionSides,
}

// ParseSection maps user text to a Section. Matching ignores case and
// surrounding whitespace. Unknown names return an error wrapping
// ErrItemNotFound: an item cannot exist in a section that does not.
func ParseSection(s string) (Section, error) {
	want := Section(strings.ToLower(strings.TrimSpace(s)))
	for _, sec := range Sections {
		if sec == want {
			return sec, nil
		}
	}
	return "", fmt.Errorf("%w: unknown section %q", ErrItemNotFound, s)
}

// Ordinal returns the display position of the section, or -1 for an
// unknown value.
func (s Section) Ordinal() int {
	for i, sec := range Sections {
		if sec == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is one of the fixed sections.
func (s Section) Valid() bool {
	return s.Ordinal() >= 0
}

// Title returns the section name with its first letter upper-cased,
// as shown in menu listings.
func (s Section) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}
