package linediff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Aligned classifies orig and trans after aligning equal lines with a
// line level diff. Runs of removed lines facing runs of added lines are
// paired as Modified rows; what remains of either run is Removed or Added
// beside padding, as in Lines.
func Aligned(orig, trans []string) *Diff {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(joinLines(orig), joinLines(trans))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	d := &Diff{}
	on, tn := 0, 0
	var dels, ins []string
	flush := func() {
		n := min(len(dels), len(ins))
		for i := range n {
			on++
			tn++
			d.add(Line{Number: on, Content: dels[i], Type: Modified}, Line{Number: tn, Content: ins[i], Type: Modified})
		}
		for _, l := range dels[n:] {
			on++
			d.add(Line{Number: on, Content: l, Type: Removed}, Line{Type: Added})
		}
		for _, l := range ins[n:] {
			tn++
			d.add(Line{Type: Removed}, Line{Number: tn, Content: l, Type: Added})
		}
		dels, ins = dels[:0], ins[:0]
	}
	for _, df := range diffs {
		ls := splitJoined(df.Text)
		switch df.Type {
		case diffpatch.DiffDelete:
			dels = append(dels, ls...)
		case diffpatch.DiffInsert:
			ins = append(ins, ls...)
		case diffpatch.DiffEqual:
			flush()
			for _, l := range ls {
				on++
				tn++
				d.add(Line{Number: on, Content: l, Type: Unchanged}, Line{Number: tn, Content: l, Type: Unchanged})
			}
		}
	}
	flush()
	return d
}

// AlignedTexts is Aligned over two texts.
func AlignedTexts(orig, trans string) *Diff {
	return Aligned(SplitLines(orig), SplitLines(trans))
}

func (d *Diff) add(o, t Line) {
	d.Original = append(d.Original, o)
	d.Translated = append(d.Translated, t)
}

// joinLines terminates every line so that each diff text holds whole lines.
func joinLines(ls []string) string {
	var b strings.Builder
	for _, l := range ls {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

func splitJoined(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
