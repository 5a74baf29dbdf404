package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/backmassage/batchren/internal/chain"
	"github.com/backmassage/batchren/internal/display"
	"github.com/backmassage/batchren/internal/pipeline"
	"github.com/backmassage/batchren/internal/term"
)

// global is a command available in every context.
type global struct {
	spec string
	help string
	run  func(s *Session, ctx context.Context, args []string)
}

func globalCommands() []global {
	return []global{
		{"cancel", "discard the rule being edited", (*Session).cancel},
		{"describe", "describe the rule being edited", (*Session).describe},
		{"done", "append the rule being edited to rule chain", (*Session).done},
		{"exit", "terminate batchren", (*Session).exit},
		{"help", "show this message", (*Session).help},
		{"move # #", "move rule #<N> to #<N>", (*Session).move},
		{"preview", "show how files would be renamed", (*Session).previewCmd},
		{"quit", "terminate batchren", (*Session).exit},
		{"drop #", "drop rule #<N> from rule chain", (*Session).drop},
		{"rename", "rename files", (*Session).rename},
		{"reset", "restart from the renamed files after `rename'", (*Session).reset},
		{"rules", "show rule chain", (*Session).rules},
		{"version", "show version information", (*Session).version},
	}
}

func (s *Session) help(context.Context, []string) {
	globals := globalCommands()
	entries := make([]display.HelpEntry, len(globals))
	for i, g := range globals {
		entries[i] = display.HelpEntry{Name: usage(g.spec), Help: g.help}
	}
	display.HelpList(s.log, "Global commands are:", entries)

	if s.edit == nil {
		var kinds []display.HelpEntry
		for _, e := range s.reg.Entries() {
			kinds = append(kinds, display.HelpEntry{Name: "#" + string(e.Kind), Help: e.Description})
		}
		display.HelpList(s.log, "Supported rules are:", kinds)
		return
	}
	var cmds []display.HelpEntry
	for _, c := range s.edit.rule.Commands() {
		cmds = append(cmds, display.HelpEntry{Name: usage(c.Spec), Help: c.Help})
	}
	display.HelpList(s.log, fmt.Sprintf("Commands for `#%s' are:", s.edit.kind), cmds)
}

func (s *Session) exit(context.Context, []string) {
	s.quit = true
}

func (s *Session) version(context.Context, []string) {
	s.log.Out("%s", display.VersionText())
	s.log.Out("")
}

func (s *Session) cancel(context.Context, []string) {
	if s.edit == nil {
		s.log.Warn("no rule being edited")
		s.log.Out("")
		return
	}
	kind := s.edit.kind
	s.edit = nil
	s.log.Success("exiting from `#%s'", kind)
	s.log.Out("")
}

func (s *Session) describe(context.Context, []string) {
	if s.edit == nil {
		s.log.Warn("no rule being edited; use `rules' to see the rule chain")
		s.log.Out("")
		return
	}
	s.heading("current rule being edited")
	s.log.Out("%s", term.Val.Render(s.edit.rule.Describe()))
	s.log.Out("")
}

// done appends the rule being edited, if any, and previews the chain.
func (s *Session) done(context.Context, []string) {
	if s.refuseDirty() {
		return
	}
	if s.edit == nil {
		s.log.Warn("no rule being edited")
	} else {
		r := s.edit.rule
		s.edit = nil
		if err := s.chain.Append(s.nextID(), r); err != nil {
			s.log.Error("cannot append `#%s': %v", r.Kind(), err)
			return
		}
		s.log.Debug("appended #%s as rule %d", r.Kind(), s.chain.Len())
	}
	s.heading("files will be renamed as follows when you type `rename'")
	s.preview(s.chain.Final())
}

func (s *Session) previewCmd(ctx context.Context, args []string) {
	if s.edit == nil {
		s.done(ctx, args)
		return
	}
	if s.refuseDirty() {
		return
	}
	s.describe(ctx, args)
	next, err := s.chain.Peek(s.edit.rule)
	if err != nil {
		s.log.Error("%v", err)
		return
	}
	s.heading("files will be renamed as follows when you type `done' and `rename'")
	s.preview(next)
}

func (s *Session) rules(context.Context, []string) {
	s.heading("rules are applied as follows")
	list := s.chain.Rules()
	if len(list) == 0 {
		s.log.Warn("no rule in rule chain")
		s.log.Out("")
		return
	}
	display.RuleList(s.log, list)
}

func (s *Session) move(ctx context.Context, args []string) {
	if s.refuseDirty() {
		return
	}
	from, err1 := strconv.Atoi(args[0])
	to, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		s.log.Error("invalid rule index")
		return
	}
	if !s.chainEdit(s.chain.Move(from, to)) {
		return
	}
	s.rules(ctx, nil)
}

func (s *Session) drop(ctx context.Context, args []string) {
	if s.refuseDirty() {
		return
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		s.log.Error("invalid rule index")
		return
	}
	if !s.chainEdit(s.chain.Drop(i)) {
		return
	}
	s.rules(ctx, nil)
}

// chainEdit reports the error of a chain mutation and whether it succeeded.
func (s *Session) chainEdit(err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, chain.ErrRange):
		s.log.Error("invalid rule index")
	default:
		s.log.Error("%v", err)
	}
	return false
}

// rename commits the chain's final batch.
func (s *Session) rename(ctx context.Context, _ []string) {
	if s.refuseDirty() {
		return
	}
	if s.edit != nil {
		s.log.Warn("you need to `done' or `cancel' the rule being edited")
		return
	}

	if s.dryRun {
		s.heading("files would be renamed as follows (dry run)")
	} else {
		s.heading("files are being renamed")
	}
	sum, err := pipeline.Commit(ctx, s.fs, s.v, s.chain.Initial(), s.chain.Final(), s.dryRun, s.log)
	if len(sum.Results) == 0 {
		s.log.Error("%v", err)
		return
	}
	display.Table(s.log, resultRows(sum.Results))

	switch {
	case s.dryRun:
		s.log.Success("%d files would be renamed", sum.Stats.Renamed)
		return
	case sum.Stats.Renamed > 0:
		s.log.Success("%d files successfully renamed", sum.Stats.Renamed)
	}
	if errors.Is(err, context.Canceled) {
		s.log.Warn("interrupted; the remaining files were not renamed")
	}
	s.dirty = true
	s.newSet = sum.NewSet()
	s.log.Warn("you need to `reset' file list and rules after `rename'")
}

func resultRows(results []pipeline.Result) []display.Row {
	rows := make([]display.Row, len(results))
	for i, r := range results {
		row := display.Row{From: r.From, To: r.To, Invalid: r.Report.Invalid, Conflict: r.Report.Conflict}
		switch r.Outcome {
		case pipeline.Renamed, pipeline.Unchanged:
			row.Status = display.StatusOK
		case pipeline.Skipped:
			row.Status = display.StatusSkipped
		case pipeline.Failed:
			row.Status, row.Err = display.StatusFailed, r.Err
		}
		rows[i] = row
	}
	return rows
}

// reset makes the names the last rename produced the new initial batch.
func (s *Session) reset(context.Context, []string) {
	if !s.dirty {
		s.log.Error("nothing to reset; `rename' first")
		return
	}
	batch, missing := pipeline.BuildBatch(s.fs, s.newSet)
	for _, m := range missing {
		s.log.Warn("`%s' no longer exists", m)
	}
	if err := s.chain.SetInitial(batch); err != nil {
		s.log.Error("cannot reset: %v", err)
		return
	}
	s.dirty, s.newSet = false, nil
	s.log.Success("file list and rules have been reset")
	s.log.Out("")
}
