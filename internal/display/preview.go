package display

import (
	"github.com/backmassage/batchren/internal/naming"
	"github.com/backmassage/batchren/internal/term"
)

// Status marks how a rename of one record ended.
type Status string

const (
	StatusNone    Status = ""
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Row is one line of an old | new table.
type Row struct {
	From, To naming.Record
	Invalid  *naming.Finding
	Conflict *naming.Finding
	Status   Status
	Err      error // Printed under the row when the rename failed.
}

// Rows pairs prev and next with their validation reports.
func Rows(prev, next naming.Batch, reports []naming.Report) []Row {
	rows := make([]Row, len(prev))
	for i := range prev {
		rows[i] = Row{From: prev[i], To: next[i]}
		if i < len(reports) {
			rows[i].Invalid, rows[i].Conflict = reports[i].Invalid, reports[i].Conflict
		}
	}
	return rows
}

const marker = "!!!"

// Table prints rows as "old | new" with both columns padded to their widest
// entry. A finding adds a [!!!] marker and its message under the row.
func Table(p Printer, rows []Row) {
	fromMax, toMax := 0, 0
	for _, r := range rows {
		fromMax = max(fromMax, r.From.Width())
		toMax = max(toMax, r.To.Width())
	}

	for _, r := range rows {
		line := PadRight(term.File.Render(r.From.Display()), r.From.Width(), fromMax) + " | "
		to := term.File.Render(r.To.Display())
		if r.Status != StatusNone {
			line += PadRight(to, r.To.Width(), toMax) + " " + statusMark(r.Status)
		} else {
			line += to
		}
		if r.Invalid != nil {
			style := term.Err
			if !r.Invalid.Blocks() {
				style = term.Warn
			}
			line += " [" + style.Render(marker) + "]"
		}
		if r.Conflict != nil {
			line += " [" + term.Err.Render(marker) + "]"
		}
		p.Out("%s", line)

		if f := r.Invalid; f != nil {
			if f.Blocks() {
				p.Error("%s", f.Message())
			} else {
				p.Warn("%s", f.Message())
			}
		}
		if f := r.Conflict; f != nil {
			p.Error("%s", f.Message())
		}
		if r.Err != nil {
			p.Error("%v", r.Err)
		}
	}
	p.Out("")
}

func statusMark(s Status) string {
	if s == StatusOK {
		return "[" + term.OK.Render(string(s)) + "]"
	}
	return "[" + term.Err.Render(string(s)) + "]"
}
