// Package linediff classifies the lines of two texts for side by side
// display.
//
// The default classification is positional: line i of one side is only
// ever compared with line i of the other. A single inserted line therefore
// marks every following line Modified. Aligned offers a line alignment for
// callers that want one.
package linediff

import (
	"bytes"
	"strings"

	"github.com/signadot/transcheck/encode"
	"github.com/signadot/transcheck/ir"
)

type LineType int

const (
	Unchanged LineType = iota
	Added
	Removed
	Modified
)

func (t LineType) String() string {
	switch t {
	case Unchanged:
		return "unchanged"
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Modified:
		return "modified"
	default:
		return "<unknown line type>"
	}
}

func (t LineType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Line is one side of a row. Number is 1 based; padding lines, which stand
// in for a line the side does not have, have Number 0 and no content.
type Line struct {
	Number  int      `json:"number"`
	Content string   `json:"content"`
	Type    LineType `json:"type"`
}

func (l Line) IsPadding() bool {
	return l.Number == 0
}

// Diff holds two parallel sequences of lines: row i is Original[i] beside
// Translated[i].
type Diff struct {
	Original   []Line `json:"original"`
	Translated []Line `json:"translated"`
}

// Lines classifies orig and trans by position.
func Lines(orig, trans []string) *Diff {
	n := max(len(orig), len(trans))
	d := &Diff{
		Original:   make([]Line, n),
		Translated: make([]Line, n),
	}
	for i := range n {
		switch {
		case i >= len(orig):
			d.Original[i] = Line{Type: Removed}
			d.Translated[i] = Line{Number: i + 1, Content: trans[i], Type: Added}
		case i >= len(trans):
			d.Original[i] = Line{Number: i + 1, Content: orig[i], Type: Removed}
			d.Translated[i] = Line{Type: Added}
		case orig[i] == trans[i]:
			d.Original[i] = Line{Number: i + 1, Content: orig[i], Type: Unchanged}
			d.Translated[i] = Line{Number: i + 1, Content: trans[i], Type: Unchanged}
		default:
			d.Original[i] = Line{Number: i + 1, Content: orig[i], Type: Modified}
			d.Translated[i] = Line{Number: i + 1, Content: trans[i], Type: Modified}
		}
	}
	return d
}

// SplitLines splits text into lines. A final newline does not start
// another line and the empty text has no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// Texts is Lines over two texts.
func Texts(orig, trans string) *Diff {
	return Lines(SplitLines(orig), SplitLines(trans))
}

// Nodes serializes both documents as JSON with sorted keys and an indent of
// two, then compares the texts by position.
func Nodes(orig, trans *ir.Node) (*Diff, error) {
	a, err := NodeText(orig)
	if err != nil {
		return nil, err
	}
	b, err := NodeText(trans)
	if err != nil {
		return nil, err
	}
	return Texts(a, b), nil
}

// NodeText is the text Nodes compares for n.
func NodeText(n *ir.Node) (string, error) {
	buf := &bytes.Buffer{}
	if err := encode.Encode(n, buf, encode.SortKeys(true), encode.Indent(2)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (d *Diff) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Original)
}

// Changed reports whether any row is not Unchanged.
func (d *Diff) Changed() bool {
	if d == nil {
		return false
	}
	for _, l := range d.Original {
		if l.Type != Unchanged {
			return true
		}
	}
	return false
}

// Stats counts rows by the type of their original side; rows whose
// original side is Removed padding count as Added.
type Stats struct {
	Unchanged int `json:"unchanged"`
	Added     int `json:"added"`
	Removed   int `json:"removed"`
	Modified  int `json:"modified"`
}

func (d *Diff) Stats() Stats {
	var s Stats
	if d == nil {
		return s
	}
	for i, l := range d.Original {
		switch l.Type {
		case Unchanged:
			s.Unchanged++
		case Modified:
			s.Modified++
		case Removed:
			if l.IsPadding() && !d.Translated[i].IsPadding() {
				s.Added++
			} else {
				s.Removed++
			}
		case Added:
			s.Added++
		}
	}
	return s
}
