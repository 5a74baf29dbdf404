package command

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []Token
	}{
		{"", nil},
		{"  as   prefix ", []Token{{Text: "as"}, {Text: "prefix"}}},
		{`insert "a b"`, []Token{{Text: "insert"}, {Text: "a b", Quoted: true}}},
		{`insert 'a\b'`, []Token{{Text: "insert"}, {Text: `a\b`, Quoted: true}}},
		{`insert "a\"b"`, []Token{{Text: "insert"}, {Text: `a"b`, Quoted: true}}},
		{`insert a\ b`, []Token{{Text: "insert"}, {Text: "a b"}}},
		{`insert ""`, []Token{{Text: "insert"}, {Text: "", Quoted: true}}},
		{`x"y z"w`, []Token{{Text: "xy zw", Quoted: true}}},
	}
	for _, tt := range tests {
		got, err := Tokenize(tt.in)
		if err != nil {
			t.Errorf("Tokenize(%q): %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Tokenize(%q) (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestTokenizeUnterminated(t *testing.T) {
	for _, in := range []string{`insert "abc`, `insert 'abc`} {
		if _, err := Tokenize(in); !errors.Is(err, ErrUnterminatedQuote) {
			t.Errorf("Tokenize(%q) err = %v, want ErrUnterminatedQuote", in, err)
		}
	}
}
