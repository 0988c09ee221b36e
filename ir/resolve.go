package ir

import "github.com/signadot/transcheck/ir/kpath"

// Resolve looks up the value at a canonical path key. The key is decoded
// permissively with kpath.Parse. The second result is false when any step
// does not exist; a present JSON null resolves to a null node and true.
func Resolve(root *Node, key string) (*Node, bool) {
	return root.GetPath(kpath.Parse(key))
}

// GetPath walks p from y. A key step requires an object holding the key and
// an index step requires an array with the index in bounds.
func (y *Node) GetPath(p kpath.Path) (*Node, bool) {
	if y == nil {
		return nil, false
	}
	x := y
	for _, seg := range p {
		switch seg.EntryKind() {
		case kpath.FieldEntry:
			f, _ := seg.Field()
			next, ok := x.Get(f)
			if !ok {
				return nil, false
			}
			x = next
		case kpath.ArrayEntry:
			i, _ := seg.Index()
			if x.Type != ArrayType || i < 0 || i >= len(x.Values) {
				return nil, false
			}
			x = x.Values[i]
		default:
			return nil, false
		}
	}
	return x, true
}
