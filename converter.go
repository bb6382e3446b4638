package tag2html

import (
	"context"
	"fmt"
	"strings"
)

// Input contains conversion parameters.
type Input struct {
	Source     string // Tag markup, optionally starting with a title line
	Stylesheet string // href of the stylesheet linked from the page (optional)
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	HTML  []byte // Complete HTML document
	Title string // Title extracted from the first line ("" when absent)
}

// Option configures a Converter.
type Option func(*Converter)

// WithTagSet replaces the tag kinds recognized by the converter.
// The set is copied when the converter is created.
// Panics if set is nil (programmer error).
func WithTagSet(set TagSet) Option {
	if set == nil {
		panic("tag2html: WithTagSet requires a non-nil set")
	}
	return func(c *Converter) {
		c.tags = set.Clone()
	}
}

// WithTag adds or overrides a single tag kind. The kind is trimmed of
// surrounding whitespace, as kinds are at lookup.
// Panics if kind is blank or fn is nil (programmer error).
func WithTag(kind string, fn RenderFunc) Option {
	kind = strings.TrimSpace(kind)
	if kind == "" || fn == nil {
		panic("tag2html: WithTag requires a kind and a render function")
	}
	return func(c *Converter) {
		c.tags[kind] = fn
	}
}

// Converter turns tag markup documents into HTML pages.
// It is safe for concurrent use once created.
type Converter struct {
	tags   TagSet
	parser *Parser
}

// NewConverter creates a Converter with the built-in tag kinds.
// Options are applied in order.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{tags: DefaultTagSet()}
	for _, opt := range opts {
		opt(c)
	}
	c.parser = NewParser(c.tags)
	return c
}

// Convert assembles input into a complete HTML page.
// Malformed markup never fails; errors only come from a done context or
// from a panicking custom RenderFunc.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, title := assemble(c.parser, input.Source, input.Stylesheet)

	return &ConvertResult{
		HTML:  []byte(page),
		Title: title,
	}, nil
}

// Parse converts markup to an HTML fragment with the converter's tag set.
func (c *Converter) Parse(source string) string {
	return c.parser.Parse(source)
}
