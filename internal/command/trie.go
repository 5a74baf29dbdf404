// Package command parses REPL input against command specifications.
//
// A specification is a sequence of space-separated words. The words "#",
// "$" and "*" are placeholders for a number, a text and a file name; every
// other word is a keyword. Keywords match case-insensitively and may be
// abbreviated to any unambiguous prefix.
package command

import (
	"fmt"
	"sort"
	"strings"
)

// Placeholder words.
const (
	Number = "#"
	Text   = "$"
	File   = "*"
)

// Match is one parsed command.
type Match[T any] struct {
	Spec  string
	Value T
	Args  []string
}

type node[T any] struct {
	keywords map[string]*node[T]
	arg      *node[T]

	terminal bool
	spec     string
	value    T
}

func newNode[T any]() *node[T] {
	return &node[T]{keywords: make(map[string]*node[T])}
}

// Trie maps command specifications to values of type T.
type Trie[T any] struct {
	root  *node[T]
	specs []string
}

// NewTrie returns an empty trie.
func NewTrie[T any]() *Trie[T] {
	return &Trie[T]{root: newNode[T]()}
}

func isPlaceholder(w string) bool {
	return w == Number || w == Text || w == File
}

// Add registers spec with value v.
func (t *Trie[T]) Add(spec string, v T) error {
	words := strings.Fields(spec)
	if len(words) == 0 {
		return fmt.Errorf("empty command spec")
	}
	n := t.root
	for _, w := range words {
		if isPlaceholder(w) {
			if n.arg == nil {
				n.arg = newNode[T]()
			}
			n = n.arg
			continue
		}
		key := strings.ToLower(w)
		child, ok := n.keywords[key]
		if !ok {
			child = newNode[T]()
			n.keywords[key] = child
		}
		n = child
	}
	if n.terminal {
		return fmt.Errorf("%q: %w", spec, ErrDuplicateSpec)
	}
	n.terminal, n.spec, n.value = true, strings.Join(words, " "), v
	t.specs = append(t.specs, n.spec)
	return nil
}

// Specs returns every registered spec in sorted order.
func (t *Trie[T]) Specs() []string {
	out := append([]string(nil), t.specs...)
	sort.Strings(out)
	return out
}

// step advances from n by tok. It returns the next node and whether tok
// filled a placeholder, or a nil node when tok does not continue n.
func (n *node[T]) step(tok Token) (*node[T], bool, error) {
	if !tok.Quoted {
		key := strings.ToLower(tok.Text)
		if child, ok := n.keywords[key]; ok {
			return child, false, nil
		}
		var found []string
		for k := range n.keywords {
			if key != "" && strings.HasPrefix(k, key) {
				found = append(found, k)
			}
		}
		switch len(found) {
		case 1:
			return n.keywords[found[0]], false, nil
		case 0:
		default:
			sort.Strings(found)
			return nil, false, fmt.Errorf("`%s' could be %s: %w", tok.Text, strings.Join(found, ", "), ErrAmbiguousCommand)
		}
	}
	if n.arg != nil {
		return n.arg, true, nil
	}
	return nil, false, nil
}

// Parse splits line into one or more commands. Each command consumes as
// many tokens as it can; the next command starts where it stops.
func (t *Trie[T]) Parse(line string) ([]Match[T], error) {
	toks, err := Tokenize(line)
	if err != nil {
		return nil, err
	}
	var out []Match[T]
	for len(toks) > 0 {
		m, n, err := t.Next(toks)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
		toks = toks[n:]
	}
	return out, nil
}

// Next matches the longest command at the start of toks and returns it
// with the number of tokens it consumed.
func (t *Trie[T]) Next(toks []Token) (Match[T], int, error) {
	if len(toks) == 0 {
		return Match[T]{}, 0, fmt.Errorf("empty command: %w", ErrMissingArgument)
	}
	n, i := t.root, 0
	var args []string
	for i < len(toks) {
		next, isArg, err := n.step(toks[i])
		if err != nil {
			return Match[T]{}, 0, err
		}
		if next == nil {
			break
		}
		if isArg {
			args = append(args, toks[i].Text)
		}
		n = next
		i++
	}
	switch {
	case i == 0:
		return Match[T]{}, 0, fmt.Errorf("`%s': %w", toks[0].Text, ErrUnknownCommand)
	case !n.terminal && i == len(toks):
		return Match[T]{}, 0, fmt.Errorf("`%s': %w", joinTokens(toks[:i]), ErrMissingArgument)
	case !n.terminal:
		return Match[T]{}, 0, fmt.Errorf("`%s': %w", joinTokens(toks[:i+1]), ErrUnknownCommand)
	}
	return Match[T]{Spec: n.spec, Value: n.value, Args: args}, i, nil
}

func joinTokens(toks []Token) string {
	words := make([]string, len(toks))
	for i, tk := range toks {
		words[i] = tk.Text
	}
	return strings.Join(words, " ")
}
