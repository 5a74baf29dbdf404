// Package shell is the interactive front end of a rename session. It reads
// command lines, edits one rule at a time, keeps the rule chain, and renames
// files on request.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/backmassage/batchren/internal/chain"
	"github.com/backmassage/batchren/internal/command"
	"github.com/backmassage/batchren/internal/display"
	"github.com/backmassage/batchren/internal/fsys"
	"github.com/backmassage/batchren/internal/logging"
	"github.com/backmassage/batchren/internal/naming"
	"github.com/backmassage/batchren/internal/rule"
	"github.com/backmassage/batchren/internal/term"
)

// Options are the collaborators of a Session.
type Options struct {
	Validator *naming.Validator
	Registry  *rule.Registry
	FS        fsys.FS
	Log       *logging.Logger
	// Prompt receives the prompt; nil discards it.
	Prompt io.Writer
	// DryRun makes `rename' report without touching the filesystem.
	DryRun bool
}

// editing is the rule currently being configured.
type editing struct {
	kind rule.Kind
	rule rule.Rule
}

// Session is one interactive rename session. It is not safe for concurrent
// use; commands run one at a time.
type Session struct {
	chain  *chain.Chain
	reg    *rule.Registry
	v      *naming.Validator
	fs     fsys.FS
	log    *logging.Logger
	prompt io.Writer
	dryRun bool

	edit *editing
	// dirty is set by a rename and cleared by reset. newSet holds the paths
	// the records ended up at.
	dirty  bool
	newSet []string
	quit   bool
	seq    int
}

// New starts a session over batch.
func New(batch naming.Batch, opts Options) (*Session, error) {
	ch, err := chain.New(batch)
	if err != nil {
		return nil, err
	}
	if opts.Validator == nil {
		opts.Validator = naming.NewValidator(naming.ProfileUnix)
	}
	if opts.Registry == nil {
		opts.Registry = rule.Builtin(opts.FS)
	}
	if opts.Prompt == nil {
		opts.Prompt = io.Discard
	}
	return &Session{
		chain:  ch,
		reg:    opts.Registry,
		v:      opts.Validator,
		fs:     opts.FS,
		log:    opts.Log,
		prompt: opts.Prompt,
		dryRun: opts.DryRun,
	}, nil
}

// Done reports whether the user asked to leave.
func (s *Session) Done() bool { return s.quit }

// handler runs one parsed command.
type handler func(ctx context.Context, args []string)

// commands builds the command set of the current context: the global
// commands plus either the rule kinds or the commands of the rule being
// edited.
func (s *Session) commands() *command.Trie[handler] {
	t := command.NewTrie[handler]()
	add := func(spec string, h handler) {
		if err := t.Add(spec, h); err != nil {
			s.log.Debug("command %q not registered: %v", spec, err)
		}
	}
	for _, g := range globalCommands() {
		g := g
		add(g.spec, func(ctx context.Context, args []string) { g.run(s, ctx, args) })
	}
	if s.edit == nil {
		for _, e := range s.reg.Entries() {
			e := e
			add("#"+string(e.Kind), func(context.Context, []string) { s.enter(e) })
		}
		return t
	}
	for _, c := range s.edit.rule.Commands() {
		c := c
		add(c.Spec, func(_ context.Context, args []string) { s.apply(c, args) })
	}
	return t
}

// Exec runs every command on line in order. The command set is rebuilt
// after each command since entering or leaving a rule changes it. Parsing
// stops at the first unrecognized or incomplete command.
func (s *Session) Exec(ctx context.Context, line string) {
	toks, err := command.Tokenize(line)
	if err != nil {
		s.log.Error("%v", err)
		return
	}
	for len(toks) > 0 && !s.quit {
		m, n, err := s.commands().Next(toks)
		if err != nil {
			s.reportParse(err)
			return
		}
		s.log.Record("command", zap.String("spec", m.Spec), zap.Strings("args", m.Args))
		m.Value(ctx, m.Args)
		toks = toks[n:]
	}
}

// reportParse reports a line that could not be parsed.
func (s *Session) reportParse(err error) {
	if errors.Is(err, command.ErrUnknownCommand) || errors.Is(err, command.ErrAmbiguousCommand) {
		s.log.Error("%v; type `help' for commands", err)
		return
	}
	s.log.Error("%v", err)
}

// enter starts editing a fresh rule of kind e.
func (s *Session) enter(e rule.Entry) {
	if s.refuseDirty() {
		return
	}
	s.edit = &editing{kind: e.Kind, rule: e.New()}
	s.log.Success("entering `#%s'", e.Kind)
	s.log.Out("")
}

// apply runs a rule command and adopts the rule it returns.
func (s *Session) apply(c rule.Command, args []string) {
	res, err := c.Run(args)
	if res.Rule != nil {
		s.edit.rule = res.Rule
	}
	if err != nil {
		s.log.Error("%v", err)
	}
	if res.Message != "" {
		s.log.Success("%s", res.Message)
	}
	if res.Warning != "" {
		s.log.Warn("%s", res.Warning)
	}
	for _, d := range res.Detail {
		s.log.Out("%s", d)
	}
	s.log.Out("")
}

// refuseDirty reports whether the session must be reset first, and says so.
func (s *Session) refuseDirty() bool {
	if !s.dirty {
		return false
	}
	s.log.Warn("you need to `reset' file list and rules after `rename'")
	return true
}

func (s *Session) heading(title string) {
	s.log.Success("%s", title)
	s.log.Out("%s", strings.Repeat("-", display.Width(title)))
}

// preview prints initial -> next with the findings a rename would meet.
func (s *Session) preview(next naming.Batch) {
	prev := s.chain.Initial()
	reports, err := naming.Check(s.v, prev, next)
	if err != nil {
		s.log.Error("%v", err)
		return
	}
	display.Table(s.log, display.Rows(prev, next, reports))
}

func (s *Session) promptText() string {
	if s.edit == nil {
		return "> "
	}
	return term.Rule.Render("#"+string(s.edit.kind)) + "> "
}

func (s *Session) nextID() string {
	s.seq++
	return strconv.Itoa(s.seq)
}

// usage renders a command spec with readable placeholders.
func usage(spec string) string {
	words := strings.Fields(spec)
	for i, w := range words {
		switch w {
		case command.Number:
			words[i] = "<N>"
		case command.Text:
			words[i] = "<TEXT>"
		case command.File:
			words[i] = "<FILE>"
		}
	}
	return strings.Join(words, " ")
}

func (s *Session) showPrompt() {
	fmt.Fprint(s.prompt, s.promptText())
}
