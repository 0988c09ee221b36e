// Package diag compares a translation against its source document.
//
// Two comparators are provided. Structural and StructuralMap compare the
// sets of string leaf paths and the kinds of the values found there.
// Strict compares every scalar leaf, including its normalized value.
// Both report their findings as a Report of Diagnostics; only exceeding
// the walk bound is an error.
package diag

import (
	"fmt"

	"github.com/signadot/transcheck/ir"
)

// Diagnostic is one difference between source and translation.
//
// Expected is the source value at Path and Actual the translation value;
// Missing has no Actual and Extra has no Expected.
type Diagnostic struct {
	Kind     Kind
	Path     string
	Expected *ir.Node
	Actual   *ir.Node
}

func (d Diagnostic) Severity() Severity {
	return d.Kind.Severity()
}

// Message describes d without its severity.
func (d Diagnostic) Message() string {
	return d.MessageAt(d.Path)
}

// MessageAt is Message with path written in place of d.Path, such as a
// coloured rendering of it.
func (d Diagnostic) MessageAt(path string) string {
	switch d.Kind {
	case Missing:
		return fmt.Sprintf("missing at %s: expected %s", path, d.Expected.JSONString())
	case Extra:
		return fmt.Sprintf("extra at %s: %s", path, d.Actual.JSONString())
	case TypeMismatch:
		return fmt.Sprintf("type mismatch at %s: expected %s, got %s", path, typeOf(d.Expected), typeOf(d.Actual))
	case ValueMismatch:
		return fmt.Sprintf("value mismatch at %s: expected %s, got %s", path, d.Expected.JSONString(), d.Actual.JSONString())
	default:
		return fmt.Sprintf("%s at %s", d.Kind, path)
	}
}

func (d Diagnostic) String() string {
	switch d.Severity() {
	case SeverityWarning:
		return "Warning: " + d.Message()
	default:
		return "Error: " + d.Message()
	}
}

func typeOf(n *ir.Node) string {
	if n == nil {
		return "absent"
	}
	return n.Type.String()
}

// Node renders d as an object with kind, severity, path and the values
// which are present.
func (d Diagnostic) Node() *ir.Node {
	kvs := []ir.KeyVal{
		{Key: "kind", Val: ir.FromString(d.Kind.String())},
		{Key: "severity", Val: ir.FromString(d.Severity().String())},
		{Key: "path", Val: ir.FromString(d.Path)},
	}
	if d.Expected != nil {
		kvs = append(kvs, ir.KeyVal{Key: "expected", Val: d.Expected})
	}
	if d.Actual != nil {
		kvs = append(kvs, ir.KeyVal{Key: "actual", Val: d.Actual})
	}
	return ir.FromKeyVals(kvs)
}

func (d Diagnostic) MarshalJSON() ([]byte, error) {
	return d.Node().MarshalJSON()
}

// Report holds diagnostics in the order they were found: source order for
// Missing, TypeMismatch and ValueMismatch, then translation order for Extra.
type Report struct {
	Diagnostics []Diagnostic
}

func (r *Report) add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
}

func (r *Report) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Diagnostics)
}

// Of returns the diagnostics of the given kind.
func (r *Report) Of(k Kind) []Diagnostic {
	return r.where(func(d Diagnostic) bool { return d.Kind == k })
}

func (r *Report) Errors() []Diagnostic {
	return r.where(func(d Diagnostic) bool { return d.Severity() == SeverityError })
}

func (r *Report) Warnings() []Diagnostic {
	return r.where(func(d Diagnostic) bool { return d.Severity() == SeverityWarning })
}

// Failed reports whether any diagnostic has error severity.
func (r *Report) Failed() bool {
	return len(r.Errors()) != 0
}

// Counts returns the number of diagnostics per kind. Every kind is
// present, possibly with count 0.
func (r *Report) Counts() map[Kind]int {
	res := make(map[Kind]int, len(kindNames))
	for _, k := range Kinds() {
		res[k] = 0
	}
	if r == nil {
		return res
	}
	for _, d := range r.Diagnostics {
		res[d.Kind]++
	}
	return res
}

func (r *Report) where(f func(Diagnostic) bool) []Diagnostic {
	if r == nil {
		return nil
	}
	var res []Diagnostic
	for _, d := range r.Diagnostics {
		if f(d) {
			res = append(res, d)
		}
	}
	return res
}

// Node renders the report as an object with a summary and the list of
// diagnostics.
func (r *Report) Node() *ir.Node {
	counts := r.Counts()
	sum := make([]ir.KeyVal, 0, len(counts))
	for _, k := range Kinds() {
		sum = append(sum, ir.KeyVal{Key: k.String(), Val: ir.FromInt(int64(counts[k]))})
	}
	var ds []*ir.Node
	if r != nil {
		ds = make([]*ir.Node, len(r.Diagnostics))
		for i, d := range r.Diagnostics {
			ds[i] = d.Node()
		}
	}
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "failed", Val: ir.FromBool(r.Failed())},
		{Key: "counts", Val: ir.FromKeyVals(sum)},
		{Key: "diagnostics", Val: ir.FromSlice(ds)},
	})
}

func (r *Report) MarshalJSON() ([]byte, error) {
	return r.Node().MarshalJSON()
}
