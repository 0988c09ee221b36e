package diag

import (
	"github.com/signadot/transcheck/ir"
	"github.com/signadot/transcheck/normalize"
	"github.com/signadot/transcheck/walk"
)

// Strict compares every scalar leaf of src against tr.
//
// For every scalar leaf path of src, in walk order: absent in tr is
// Missing; a value of another kind (arrays and objects being kinds of
// their own) is a TypeMismatch; otherwise differing values are a
// ValueMismatch. Strings are compared after normalizing both sides with
// n, the source string as well as the translation, so separators or Han
// text in the source are removed too. Numbers compare by value, booleans
// and nulls exactly. Scalar leaf paths of tr missing from src are Extra.
//
// A nil n uses normalize.Default.
func Strict(src, tr *ir.Node, n *normalize.Normalizer, opts ...walk.Option) (*Report, error) {
	if n == nil {
		n = normalize.Default()
	}
	sLeaves, err := walk.Scalars(src, opts...)
	if err != nil {
		return nil, err
	}
	tLeaves, err := walk.Scalars(tr, opts...)
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
		case !sameValue(n, l.Value, v):
			r.add(Diagnostic{Kind: ValueMismatch, Path: l.Key, Expected: l.Value, Actual: v})
		}
	}
	for _, l := range tLeaves {
		if !sKeys[l.Key] {
			r.add(Diagnostic{Kind: Extra, Path: l.Key, Actual: l.Value})
		}
	}
	trace("strict", r)
	return r, nil
}

// sameValue compares two scalars of the same type.
func sameValue(n *normalize.Normalizer, a, b *ir.Node) bool {
	switch a.Type {
	case ir.StringType:
		return n.String(a.String) == n.String(b.String)
	case ir.NumberType:
		if a.Number == b.Number {
			return true
		}
		af, aok := a.Float64()
		bf, bok := b.Float64()
		return aok && bok && af == bf
	case ir.BoolType:
		return a.Bool == b.Bool
	case ir.NullType:
		return true
	case ir.ArrayType, ir.ObjectType:
		return false
	}
	return false
}
