package tag2html

import "unicode/utf8"

// Control characters of the markup grammar.
const (
	tagOpen   = '['
	argSep    = ';'
	headerEnd = ':'
	tagClose  = ']'
	lineBreak = '~'
	spacer    = '`'
	escape    = '\\'
	newline   = '\n'
)

// mode selects the buffer that receives ordinary characters.
type mode int

const (
	modeOutput mode = iota // result buffer
	modeKind               // kind of the innermost open tag
	modeArgs               // args of the innermost open tag
)

// Parser converts tag markup to an HTML fragment.
// A Parser holds no scan state and is safe for concurrent use.
type Parser struct {
	tags TagSet
}

// NewParser creates a Parser rendering tags with the given set.
// A nil set selects the built-in kinds.
func NewParser(tags TagSet) *Parser {
	if tags == nil {
		tags = defaultTags
	}
	return &Parser{tags: tags}
}

var defaultParser = NewParser(nil)

// Parse converts source to an HTML fragment using the built-in tag kinds.
// It never fails: unbalanced or unknown tags degrade to partial output.
func Parse(source string) string {
	return defaultParser.Parse(source)
}

// Parse converts source to an HTML fragment in a single pass.
func (p *Parser) Parse(source string) string {
	s := &scanner{
		tags: p.tags,
		out:  make([]byte, 0, len(source)),
		prev: ' ',
	}
	for _, r := range source {
		s.step(r)
	}
	return string(s.out)
}

// scanner holds the state of one Parse call.
type scanner struct {
	tags  TagSet
	out   []byte
	stack []*Tag
	mode  mode
	// prev is the last rune handled as data; control characters that
	// take effect do not update it.
	prev rune
}

func (s *scanner) step(r rune) {
	escaped := s.prev == escape

	switch r {
	case tagOpen:
		if !escaped {
			s.stack = append(s.stack, &Tag{})
			s.mode = modeKind
			return
		}
	case argSep:
		if s.mode == modeKind {
			s.mode = modeArgs
			return
		}
	case headerEnd:
		if s.mode == modeKind || s.mode == modeArgs {
			if escaped && s.mode == modeArgs {
				// \: keeps a literal colon in the args, without the backslash.
				if top := s.top(); top != nil {
					top.popArgs()
				}
				break
			}
			if top := s.top(); top != nil {
				open, _ := top.Fragments(s.tags)
				s.emit(open)
			}
			s.mode = modeOutput
			return
		}
	case tagClose:
		if escaped {
			s.unemit()
			break
		}
		if n := len(s.stack); n > 0 {
			top := s.stack[n-1]
			s.stack[n-1] = nil
			s.stack = s.stack[:n-1]
			_, closing := top.Fragments(s.tags)
			s.emit(closing)
		}
		return
	case lineBreak:
		if !escaped {
			s.emit(lineBreakHTML)
			return
		}
		s.unemit()
	case spacer:
		if !escaped {
			s.emit(spacerHTML)
			return
		}
		s.unemit()
	}

	if r != newline {
		s.write(r)
	}
	s.prev = r
}

// write appends r to the buffer selected by the cursor mode.
// Header runes are dropped when no tag is open.
func (s *scanner) write(r rune) {
	switch s.mode {
	case modeOutput:
		s.out = utf8.AppendRune(s.out, r)
	case modeKind:
		if top := s.top(); top != nil {
			top.pushKind(r)
		}
	case modeArgs:
		if top := s.top(); top != nil {
			top.pushArgs(r)
		}
	}
}

func (s *scanner) emit(fragment string) {
	s.out = append(s.out, fragment...)
}

// unemit removes the last rune written to the result buffer.
func (s *scanner) unemit() {
	if len(s.out) == 0 {
		return
	}
	_, size := utf8.DecodeLastRune(s.out)
	s.out = s.out[:len(s.out)-size]
}

func (s *scanner) top() *Tag {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}
