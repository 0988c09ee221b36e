package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/signadot/transcheck/linediff"
)

// DefaultColumn is the display width of each side when none is given.
const DefaultColumn = 60

// SideBySide writes d as two columns, original on the left. Each row is
//
//	<marker> <num> <original> │ <num> <translated>
//
// where the marker is ' ' for unchanged, '~' modified, '-' removed and
// '+' added. Padding rows have a blank number. Columns are truncated or
// padded to col display cells, counting wide characters twice.
func SideBySide(w io.Writer, d *linediff.Diff, col int, s *Styles) error {
	if s == nil {
		s = Plain()
	}
	if col < 8 {
		col = DefaultColumn
	}
	numW := len(fmt.Sprint(d.Len()))
	bw := bufio.NewWriter(w)
	for i := range d.Original {
		o, t := d.Original[i], d.Translated[i]
		oSpans, tSpans := d.Spans(i)
		fmt.Fprintf(bw, "%s %s %s %s %s %s\n",
			marker(o, t),
			s.LineNo(lineNo(o, numW)),
			cell(o, oSpans, col, s),
			s.Separator("│"),
			s.LineNo(lineNo(t, numW)),
			strings.TrimRight(cell(t, tSpans, col, s), " "))
	}
	st := d.Stats()
	fmt.Fprintf(bw, "%d unchanged, %d modified, %d added, %d removed\n",
		st.Unchanged, st.Modified, st.Added, st.Removed)
	return bw.Flush()
}

func marker(o, t linediff.Line) string {
	switch {
	case o.Type == linediff.Unchanged:
		return " "
	case o.Type == linediff.Modified:
		return "~"
	case o.IsPadding():
		return "+"
	case t.IsPadding():
		return "-"
	}
	return "?"
}

func lineNo(l linediff.Line, w int) string {
	if l.IsPadding() {
		return strings.Repeat(" ", w)
	}
	return fmt.Sprintf("%*d", w, l.Number)
}

// cell renders spans into exactly col display cells.
func cell(l linediff.Line, spans []linediff.Span, col int, s *Styles) string {
	var (
		buf  strings.Builder
		used int
	)
	for _, sp := range spans {
		text := sp.Text
		if tw := runewidth.StringWidth(text); used+tw > col {
			text = runewidth.Truncate(text, col-used, "…")
		}
		used += runewidth.StringWidth(text)
		buf.WriteString(paint(l, sp, text, s))
		if used >= col {
			break
		}
	}
	if used < col {
		buf.WriteString(strings.Repeat(" ", col-used))
	}
	return buf.String()
}

func paint(l linediff.Line, sp linediff.Span, text string, s *Styles) string {
	if !sp.Changed || text == "" {
		return text
	}
	switch l.Type {
	case linediff.Removed:
		return s.Removed(text)
	case linediff.Added:
		return s.Added(text)
	case linediff.Modified:
		return s.Changed(text)
	}
	return text
}
