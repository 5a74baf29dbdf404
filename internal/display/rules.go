package display

import (
	"strconv"

	"github.com/backmassage/batchren/internal/chain"
	"github.com/backmassage/batchren/internal/term"
)

// RuleList prints the rule chain as "N: #kind ( description )" with N
// right-aligned and kinds padded to the longest one.
func RuleList(p Printer, rules []chain.Summary) {
	digits := DigitWidth(len(rules))
	nameMax := 0
	for _, r := range rules {
		nameMax = max(nameMax, Width("#"+string(r.Kind)))
	}
	for _, r := range rules {
		n := strconv.Itoa(r.Index)
		name := "#" + string(r.Kind)
		p.Out("%s: %s ( %s )",
			PadLeft(term.Num.Render(n), len(n), digits),
			PadRight(term.Rule.Render(name), Width(name), nameMax),
			r.Description)
	}
	p.Out("")
}

// HelpEntry is one line of a help listing.
type HelpEntry struct {
	Name string
	Help string
}

// HelpList prints entries as an indented two-column list.
func HelpList(p Printer, title string, entries []HelpEntry) {
	col := 0
	for _, e := range entries {
		col = max(col, Width(e.Name))
	}
	col += 4
	p.Out("%s", term.OK.Render(title))
	for _, e := range entries {
		p.Out("  %s%s", PadRight(term.Cmd.Render(e.Name), Width(e.Name), col), e.Help)
	}
	p.Out("")
}
