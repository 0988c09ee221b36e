package linediff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Span is a run of characters in a line; Changed runs differ from the
// other side.
type Span struct {
	Text    string `json:"text"`
	Changed bool   `json:"changed"`
}

// Spans splits row i into character runs for highlighting. Modified rows
// are compared character by character; other rows are one run per side,
// changed unless Unchanged. Padding has no runs.
func (d *Diff) Spans(i int) (orig, trans []Span) {
	if i < 0 || i >= d.Len() {
		return nil, nil
	}
	o, t := d.Original[i], d.Translated[i]
	if o.Type != Modified || t.Type != Modified {
		return wholeSpan(o), wholeSpan(t)
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(o.Content, t.Content, false))
	for _, df := range diffs {
		switch df.Type {
		case diffpatch.DiffEqual:
			orig = appendSpan(orig, df.Text, false)
			trans = appendSpan(trans, df.Text, false)
		case diffpatch.DiffDelete:
			orig = appendSpan(orig, df.Text, true)
		case diffpatch.DiffInsert:
			trans = appendSpan(trans, df.Text, true)
		}
	}
	return orig, trans
}

func wholeSpan(l Line) []Span {
	if l.IsPadding() || l.Content == "" {
		return nil
	}
	return []Span{{Text: l.Content, Changed: l.Type != Unchanged}}
}

func appendSpan(spans []Span, text string, changed bool) []Span {
	if text == "" {
		return spans
	}
	if n := len(spans); n != 0 && spans[n-1].Changed == changed {
		spans[n-1].Text += text
		return spans
	}
	return append(spans, Span{Text: text, Changed: changed})
}
