// Package tag2html converts plain-text documents written in a small
// bracket-tag markup into standalone HTML pages.
//
// # Quick Start
//
//	page := tag2html.Assemble("!Welcome\n[HEADING:Hello]~World", "ext/style.css")
//	os.WriteFile("index.html", []byte(page), 0644)
//
// Use Parse for an HTML fragment without the document shell:
//
//	tag2html.Parse("[E;BI:bold and italic]")
//	// <span class='bold italic'>bold and italic</span>
//
// # Markup
//
// A tag is written [KIND;ARGS:BODY]. The ;ARGS part is optional and BODY
// may contain nested tags. Built-in kinds:
//
//	[HEADING;2:Text]      <h2>Text</h2> (level defaults to 1)
//	[SUBTITLE:Text]       <div class='subtitle'>Text</div>
//	[LINK;url:Text]       <a href='url'>Text</a>
//	[E;BIUS:Text]         <span class='bold italic underlined secondary'>Text</span>
//	[ALIGN;center:Text]   <div style='text-align: center'>Text</div>
//
// Unknown kinds drop their delimiters and keep their body. Outside tag
// headers, ~ becomes a line break and a backtick a fixed-width spacer.
// Newlines are removed everywhere.
//
// A backslash before ], ~ or a backtick writes the character literally in
// place of the backslash. Inside tag arguments, \: keeps a literal colon.
// A backslash before [ prevents the tag from opening but stays in the
// output.
//
// # Title Line
//
// A first line starting with ! is the page title. A first line starting
// with \ is body text with the backslash removed, which allows a body to
// begin with !.
//
// # Custom Tags
//
// A Converter can recognize additional kinds:
//
//	conv := tag2html.NewConverter(
//	    tag2html.WithTag("CODE", func(string) (string, string) {
//	        return "<code>", "</code>"
//	    }),
//	)
//	result, err := conv.Convert(ctx, tag2html.Input{Source: src, Stylesheet: "style.css"})
//
// Parse, Assemble and Converter hold no shared mutable state and are safe
// for concurrent use.
package tag2html
