package diag

import (
	"github.com/signadot/transcheck/debug"
	"github.com/signadot/transcheck/extract"
	"github.com/signadot/transcheck/ir"
	"github.com/signadot/transcheck/walk"
)

// Structural compares the string leaves of src and tr.
//
// For every string leaf path of src, in walk order: when the path does not
// resolve in tr the leaf is Missing, and when it resolves to a value of
// another kind it is a TypeMismatch. Values are not compared. Then every
// string leaf path of tr which is not a string leaf path of src is Extra,
// in walk order of tr.
func Structural(src, tr *ir.Node, opts ...walk.Option) (*Report, error) {
	sLeaves, err := walk.Strings(src, opts...)
	if err != nil {
		return nil, err
	}
	tLeaves, err := walk.Strings(tr, opts...)
	if err != nil {
		return nil, err
	}
	r := &Report{}
	sKeys := make(map[string]bool, len(sLeaves))
	for _, l := range sLeaves {
		sKeys[l.Key] = true
		v, ok := tr.GetPath(l.Path)
		switch {
		case !ok:
			r.add(Diagnostic{Kind: Missing, Path: l.Key, Expected: l.Value})
		case v.Type != l.Value.Type:
			r.add(Diagnostic{Kind: TypeMismatch, Path: l.Key, Expected: l.Value, Actual: v})
		}
	}
	for _, l := range tLeaves {
		if !sKeys[l.Key] {
			r.add(Diagnostic{Kind: Extra, Path: l.Key, Actual: l.Value})
		}
	}
	trace("structural", r)
	return r, nil
}

// StructuralMap is Structural against a translation map: a source leaf is
// present when its key is in m, and present values are strings. Keys of m
// that are not source string leaves are Extra, in map order.
func StructuralMap(src *ir.Node, m *extract.Map, opts ...walk.Option) (*Report, error) {
	sLeaves, err := walk.Strings(src, opts...)
	if err != nil {
		return nil, err
	}
	r := &Report{}
	sKeys := make(map[string]bool, len(sLeaves))
	for _, l := range sLeaves {
		sKeys[l.Key] = true
		if !m.Has(l.Key) {
			r.add(Diagnostic{Kind: Missing, Path: l.Key, Expected: l.Value})
		}
	}
	for k, v := range m.All() {
		if !sKeys[k] {
			r.add(Diagnostic{Kind: Extra, Path: k, Actual: ir.FromString(v)})
		}
	}
	trace("structural map", r)
	return r, nil
}

func trace(what string, r *Report) {
	if !debug.Diag() {
		return
	}
	debug.Logf("diag: %s: %d diagnostics", what, r.Len())
	for _, d := range r.Diagnostics {
		debug.Logf("diag:   %s", d)
	}
}
