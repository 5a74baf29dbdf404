package command

import (
	"fmt"
	"strings"
	"unicode"
)

// Token is one word of a command line. Quoted tokens only ever fill
// argument placeholders; they never match keywords.
type Token struct {
	Text   string
	Quoted bool
}

// Tokenize splits line into tokens. Words are separated by white space.
// Double quotes group text and honor backslash escapes, single quotes group
// text literally, and a backslash outside quotes escapes the next character.
func Tokenize(line string) ([]Token, error) {
	var (
		out    []Token
		b      strings.Builder
		inWord bool
		quoted bool
	)
	flush := func() {
		if inWord {
			out = append(out, Token{Text: b.String(), Quoted: quoted})
		}
		b.Reset()
		inWord, quoted = false, false
	}

	rs := []rune(line)
	for i := 0; i < len(rs); i++ {
		c := rs[i]
		switch {
		case unicode.IsSpace(c):
			flush()
		case c == '\\':
			inWord = true
			if i+1 < len(rs) {
				i++
				c = rs[i]
			}
			b.WriteRune(c)
		case c == '"' || c == '\'':
			inWord, quoted = true, true
			q := c
			closed := false
			for i++; i < len(rs); i++ {
				c = rs[i]
				if c == q {
					closed = true
					break
				}
				if c == '\\' && q == '"' && i+1 < len(rs) {
					i++
					c = rs[i]
				}
				b.WriteRune(c)
			}
			if !closed {
				return nil, fmt.Errorf("%c%s: %w", q, b.String(), ErrUnterminatedQuote)
			}
		default:
			inWord = true
			b.WriteRune(c)
		}
	}
	flush()
	return out, nil
}
