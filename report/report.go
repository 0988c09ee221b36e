// Package report renders checker results for people and for tools.
//
// Diagnostic reports render as text lines, JSON or YAML; line diffs
// render side by side.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/transcheck/diag"
	"github.com/signadot/transcheck/encode"
	"github.com/signadot/transcheck/extract"
	"github.com/signadot/transcheck/format"
	"github.com/signadot/transcheck/ir"
)

var ErrBadOutput = errors.New("bad report output")

// Output is the rendering of a report.
type Output int

const (
	TextOutput Output = iota
	JSONOutput
	YAMLOutput
)

var outputNames = []string{"text", "json", "yaml"}

func ParseOutput(v string) (Output, error) {
	for i, n := range outputNames {
		if v == n {
			return Output(i), nil
		}
	}
	return TextOutput, fmt.Errorf("%w: %q (want one of %s)", ErrBadOutput, v, strings.Join(outputNames, ", "))
}

func (o Output) String() string {
	if o < 0 || int(o) >= len(outputNames) {
		return fmt.Sprintf("Output(%d)", int(o))
	}
	return outputNames[o]
}

func (o Output) MarshalText() ([]byte, error) {
	if o < 0 || int(o) >= len(outputNames) {
		return nil, fmt.Errorf("%w: %d", ErrBadOutput, int(o))
	}
	return []byte(outputNames[o]), nil
}

func (o *Output) UnmarshalText(d []byte) error {
	v, err := ParseOutput(string(d))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// Format gives the document format for structured outputs.
func (o Output) Format() (format.Format, bool) {
	switch o {
	case JSONOutput:
		return format.JSONFormat, true
	case YAMLOutput:
		return format.YAMLFormat, true
	}
	return 0, false
}

// Write renders r to w. Text output writes one line per diagnostic
// followed by a summary line; structured outputs encode r.Node() with
// opts.
func Write(w io.Writer, r *diag.Report, o Output, s *Styles, opts ...encode.EncodeOption) error {
	if f, ok := o.Format(); ok {
		return writeNode(w, r.Node(), f, opts)
	}
	if o != TextOutput {
		return fmt.Errorf("%w: %s", ErrBadOutput, o)
	}
	return WriteText(w, r, s)
}

// WriteText writes one line per diagnostic, prefixed "Error: " or
// "Warning: ", then a summary.
func WriteText(w io.Writer, r *diag.Report, s *Styles) error {
	if s == nil {
		s = Plain()
	}
	bw := bufio.NewWriter(w)
	for _, d := range r.Diagnostics {
		prefix := s.Error("Error:")
		if d.Severity() == diag.SeverityWarning {
			prefix = s.Warning("Warning:")
		}
		fmt.Fprintf(bw, "%s %s\n", prefix, d.MessageAt(s.Path(d.Path)))
	}
	fmt.Fprintln(bw, Summary(r))
	return bw.Flush()
}

// Summary gives a one line account of r, such as "2 errors, 1 warning".
func Summary(r *diag.Report) string {
	if r.Len() == 0 {
		return "no differences"
	}
	return plural(len(r.Errors()), "error") + ", " + plural(len(r.Warnings()), "warning")
}

func plural(n int, what string) string {
	if n == 1 {
		return "1 " + what
	}
	return fmt.Sprintf("%d %ss", n, what)
}

// WriteMap renders a translation map. Text output gives one
// "key: translation" line per entry in document order.
func WriteMap(w io.Writer, m *extract.Map, o Output, opts ...encode.EncodeOption) error {
	if f, ok := o.Format(); ok {
		return writeNode(w, m.Node(), f, opts)
	}
	bw := bufio.NewWriter(w)
	for k, v := range m.All() {
		fmt.Fprintf(bw, "%s: %s\n", k, v)
	}
	return bw.Flush()
}

// WriteEntries renders the full extraction records, source included.
func WriteEntries(w io.Writer, m *extract.Map, o Output, opts ...encode.EncodeOption) error {
	es := m.Entries()
	if f, ok := o.Format(); ok {
		nodes := make([]*ir.Node, len(es))
		for i, e := range es {
			nodes[i] = ir.FromKeyVals([]ir.KeyVal{
				{Key: "key", Val: ir.FromString(e.Key)},
				{Key: "source", Val: ir.FromString(e.Source)},
				{Key: "translation", Val: ir.FromString(e.Translation)},
			})
		}
		return writeNode(w, ir.FromSlice(nodes), f, opts)
	}
	bw := bufio.NewWriter(w)
	for _, e := range es {
		fmt.Fprintf(bw, "%s\t%s\t%s\n", e.Key, e.Source, e.Translation)
	}
	return bw.Flush()
}

func writeNode(w io.Writer, n *ir.Node, f format.Format, opts []encode.EncodeOption) error {
	opts = append(opts[:len(opts):len(opts)], encode.EncodeFormat(f))
	return encode.Encode(n, w, opts...)
}
