package tag2html

import "unicode/utf8"

// Tag is an open markup tag whose header is being collected or whose body
// is being parsed. The kind and args grow one rune at a time while the
// parser reads the tag header.
type Tag struct {
	kind []byte
	args []byte
}

// Kind returns the tag kind collected so far.
func (t *Tag) Kind() string { return string(t.kind) }

// Args returns the tag arguments collected so far.
func (t *Tag) Args() string { return string(t.args) }

func (t *Tag) pushKind(r rune) { t.kind = utf8.AppendRune(t.kind, r) }
func (t *Tag) pushArgs(r rune) { t.args = utf8.AppendRune(t.args, r) }

// popArgs drops the last rune of the args, if any.
func (t *Tag) popArgs() {
	if len(t.args) == 0 {
		return
	}
	_, size := utf8.DecodeLastRune(t.args)
	t.args = t.args[:len(t.args)-size]
}

// Fragments returns the open and close HTML fragments for t using set.
func (t *Tag) Fragments(set TagSet) (open, close string) {
	return set.Render(t.Kind(), t.Args())
}
