package tag2html

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// First-line markers.
const (
	titleMarker    = '!' // the first line is the page title
	continueMarker = '\\' // the first line is body text despite looking special
)

// pageTemplate is the HTML shell around a parsed body.
// Placeholders: title, stylesheet href, body.
const pageTemplate = "<!DOCTYPE html><html><head><title>%s</title>" +
	"<link rel='stylesheet' href='%s' /></head><body>%s</body></html>"

// SplitTitle separates the optional title line from the body of source.
//
// A first line starting with '!' is the title (trimmed) and the remaining
// lines are the body. A first line starting with '\' loses that marker and
// stays in the body. Any other source is returned whole as the body.
func SplitTitle(source string) (title, body string) {
	first, rest, _ := strings.Cut(source, "\n")

	marker, size := utf8.DecodeRuneInString(first)
	if size == 0 {
		return "", source
	}

	switch marker {
	case titleMarker:
		return strings.TrimSpace(first[size:]), rest
	case continueMarker:
		return "", first[size:] + "\n" + rest
	default:
		return "", source
	}
}

// Assemble builds a complete HTML document from source, linking the
// stylesheet at the given href. The title is inserted verbatim.
func Assemble(source, stylesheet string) string {
	page, _ := assemble(defaultParser, source, stylesheet)
	return page
}

// assemble returns the page and the title it was built with.
func assemble(p *Parser, source, stylesheet string) (page, title string) {
	title, body := SplitTitle(source)
	return fmt.Sprintf(pageTemplate, title, stylesheet, p.Parse(body)), title
}
