package unicodemath

import (
	"strings"
	"unicode"
)

const eof = -1

// scanner converts LaTeX the parser rejected: environments, text commands,
// alignment and commands it has no definition for.
type scanner struct {
	src []rune
	pos int
}

func newScanner(src string) *scanner {
	return &scanner{src: []rune(src)}
}

func (s *scanner) peek() rune {
	if s.pos < len(s.src) {
		return s.src[s.pos]
	}
	return eof
}

func (s *scanner) eat(r rune) {
	if s.peek() == r {
		s.pos++
	}
}

func (s *scanner) skipSpace() {
	for unicode.IsSpace(s.peek()) {
		s.pos++
	}
}

// list converts up to stop, which is left unread.
func (s *scanner) list(stop rune) []piece {
	var out []piece
	for {
		r := s.peek()
		if r == eof || r == stop {
			return out
		}
		switch r {
		case '\\':
			out = append(out, s.command())
		case '{':
			out = append(out, piece{text: s.group()})
		case '^':
			s.pos++
			out = append(out, piece{text: script(superscripts, "^", s.atom())})
		case '_':
			s.pos++
			out = append(out, piece{text: script(subscripts, "_", s.atom())})
		case '&', '~':
			s.pos++
			out = append(out, piece{text: " "})
		case '%':
			for r := s.peek(); r != eof && r != '\n'; r = s.peek() {
				s.pos++
			}
		case '}':
			s.pos++
		default:
			s.pos++
			if !unicode.IsSpace(r) {
				out = append(out, piece{text: string(r)})
			}
		}
	}
}

func (s *scanner) group() string {
	s.pos++
	inner := join(s.list('}'))
	s.eat('}')
	return inner
}

// atom converts the next argument: a group, a command or one rune.
func (s *scanner) atom() string {
	s.skipSpace()
	switch r := s.peek(); r {
	case eof:
		return ""
	case '{':
		return s.group()
	case '\\':
		return s.command().text
	default:
		s.pos++
		return string(r)
	}
}

// raw returns the next braced argument as written.
func (s *scanner) raw() string {
	s.skipSpace()
	if s.peek() != '{' {
		return s.atom()
	}
	s.pos++
	start, depth := s.pos, 0
	for ; s.pos < len(s.src); s.pos++ {
		switch s.src[s.pos] {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				text := string(s.src[start:s.pos])
				s.pos++
				return text
			}
			depth--
		}
	}
	return string(s.src[start:])
}

func (s *scanner) command() piece {
	s.pos++
	r := s.peek()
	if r == eof {
		return piece{text: `\`}
	}
	if !isLetter(r) {
		s.pos++
		if g, ok := escapes[r]; ok {
			return piece{text: g}
		}
		return piece{text: `\` + string(r)}
	}
	start := s.pos
	for isLetter(s.peek()) {
		s.pos++
	}
	name := string(s.src[start:s.pos])

	switch {
	case name == "begin":
		env := s.raw()
		if env == "array" {
			s.raw()
		}
		return piece{text: environments[env][0]}
	case name == "end":
		return piece{text: environments[s.raw()][1]}
	case sizing[name]:
		if d := s.atom(); d != "." {
			return piece{text: d}
		}
		return piece{}
	case textual[name]:
		return piece{text: strings.ReplaceAll(s.raw(), "~", " ")}
	}

	req, hasOpt := arity(name)
	var opt string
	if hasOpt {
		s.skipSpace()
		if s.peek() == '[' {
			s.pos++
			opt = join(s.list(']'))
			s.eat(']')
		}
	}
	args := make([]string, req)
	for i := range args {
		args[i] = s.atom()
	}
	return piece{text: macro(name, opt, args), fn: functions[name]}
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
