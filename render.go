package tag2html

import (
	"maps"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Built-in tag kinds.
const (
	KindHeading  = "HEADING"
	KindSubtitle = "SUBTITLE"
	KindLink     = "LINK"
	KindEmphasis = "E"
	KindAlign    = "ALIGN"
)

// Literal substitutions emitted outside tag headers.
const (
	lineBreakHTML = "<br />"
	spacerHTML    = "<div style='width:2em;display:inline-block;'></div>"
)

// RenderFunc maps the argument text of a tag to its open and close
// HTML fragments. It must not fail.
type RenderFunc func(args string) (open, close string)

// TagSet maps a tag kind to its renderer.
// Kinds missing from the set render to empty fragments.
type TagSet map[string]RenderFunc

// defaultTags is never mutated after init; Clone it to customize.
var defaultTags = TagSet{
	KindHeading:  renderHeading,
	KindSubtitle: renderSubtitle,
	KindLink:     renderLink,
	KindEmphasis: renderEmphasis,
	KindAlign:    renderAlign,
}

// DefaultTagSet returns a copy of the built-in tag kinds.
func DefaultTagSet() TagSet {
	return defaultTags.Clone()
}

// Clone returns a shallow copy of s that can be modified independently.
func (s TagSet) Clone() TagSet {
	return maps.Clone(s)
}

// Render returns the fragments for kind and args using the set.
// The kind is trimmed of surrounding whitespace before lookup.
func (s TagSet) Render(kind, args string) (open, close string) {
	fn, ok := s[strings.TrimSpace(kind)]
	if !ok || fn == nil {
		return "", ""
	}
	return fn(args)
}

// Render returns the fragments for kind and args using the built-in kinds.
func Render(kind, args string) (open, close string) {
	return defaultTags.Render(kind, args)
}

func renderHeading(args string) (string, string) {
	level := args
	if level == "" {
		level = "1"
	}
	return "<h" + level + ">", "</h" + level + ">"
}

func renderSubtitle(string) (string, string) {
	return "<div class='subtitle'>", "</div>"
}

func renderLink(args string) (string, string) {
	return "<a href='" + args + "'>", "</a>"
}

// emphasisClasses maps style letters of the E tag to CSS classes.
var emphasisClasses = map[rune]string{
	'B': "bold",
	'I': "italic",
	'U': "underlined",
	'S': "secondary",
}

// renderEmphasis folds one class per letter into the class attribute.
// A separator is added only once the accumulated value is non-empty, so
// unknown letters leave blank tokens behind (but never a leading space).
func renderEmphasis(args string) (string, string) {
	var class string
	for _, r := range args {
		token := emphasisClasses[r]
		if class != "" {
			class += " " + token
		} else {
			class = token
		}
	}
	return "<span class='" + class + "'>", "</span>"
}

func renderAlign(args string) (string, string) {
	// A Caser must not be shared between goroutines.
	align := cases.Lower(language.Und).String(strings.TrimSpace(args))
	return "<div style='text-align: " + align + "'>", "</div>"
}
