// Package scan provides the cursor the interval parser reads its input with.
package scan

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Scanner is a read cursor over a string.
type Scanner struct {
	src string
	pos int
}

func New(src string) *Scanner {
	return &Scanner{src: src}
}

// Pos is the byte offset of the cursor.
func (s *Scanner) Pos() int { return s.pos }

func (s *Scanner) Done() bool { return s.pos >= len(s.src) }

// Rest returns the unread input.
func (s *Scanner) Rest() string { return s.src[s.pos:] }

func (s *Scanner) Advance(n int) { s.pos += n }

// Consume reads the first of tokens the input continues with.
func (s *Scanner) Consume(tokens ...string) (string, bool) {
	rest := s.Rest()
	for _, tok := range tokens {
		if strings.HasPrefix(rest, tok) {
			s.pos += len(tok)
			return tok, true
		}
	}
	return "", false
}

// Peek reports whether the input continues with one of tokens, without reading it.
func (s *Scanner) Peek(tokens ...string) bool {
	rest := s.Rest()
	for _, tok := range tokens {
		if strings.HasPrefix(rest, tok) {
			return true
		}
	}
	return false
}

func (s *Scanner) SkipSpaces() {
	for !s.Done() {
		r, size := utf8.DecodeRuneInString(s.Rest())
		if !unicode.IsSpace(r) {
			return
		}
		s.pos += size
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func digits(b []byte) int {
	n := 0
	for n < len(b) && isDigit(b[n]) {
		n++
	}
	return n
}

func sign(b []byte) int {
	if len(b) > 0 && (b[0] == '+' || b[0] == '-') {
		return 1
	}
	return 0
}

// Integer returns the length of the optionally signed decimal integer b starts with, or 0.
func Integer(b []byte) int {
	n := sign(b)
	d := digits(b[n:])
	if d == 0 {
		return 0
	}
	return n + d
}

// Float returns the length of the decimal floating point literal b starts with, or 0.
// The literal may carry a sign, a fraction and an exponent: -1.5e+3, .5, 2.
func Float(b []byte) int {
	n := sign(b)
	intDigits := digits(b[n:])
	n += intDigits

	fracDigits := 0
	if n < len(b) && b[n] == '.' {
		fracDigits = digits(b[n+1:])
		if intDigits > 0 || fracDigits > 0 {
			n += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}

	if n < len(b) && (b[n] == 'e' || b[n] == 'E') {
		m := n + 1
		m += sign(b[m:])
		if expDigits := digits(b[m:]); expDigits > 0 {
			n = m + expDigits
		}
	}
	return n
}
