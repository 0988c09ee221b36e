package ir

import (
	"slices"
	"strconv"
)

// Node is a parsed document value. It is a tagged union: which fields are
// meaningful depends on Type.
//
//   - ObjectType: Fields and Values are parallel, in document order
//   - ArrayType: Values
//   - StringType: String
//   - NumberType: Number holds the literal text of the number
//   - BoolType: Bool
type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String string
	Bool   bool
	Number string
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:   y.Type,
		String: y.String,
		Bool:   y.Bool,
		Number: y.Number,
	}
	if y.Fields != nil {
		res.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

// FromNumber makes a number node from its literal text.
func FromNumber(lit string) *Node {
	return &Node{Type: NumberType, Number: lit}
}

func FromInt(v int64) *Node {
	return FromNumber(strconv.FormatInt(v, 10))
}

func FromFloat(f float64) *Node {
	return FromNumber(strconv.FormatFloat(f, 'g', -1, 64))
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object keeping the order of kvs.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]string, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i, kv := range kvs {
		val := kv.Val
		if val == nil {
			val = Null()
		}
		res.Fields[i] = kv.Key
		res.Values[i] = val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(ySlice)),
	}
	for i, v := range ySlice {
		if v == nil {
			v = Null()
		}
		res.Values[i] = v
	}
	return res
}

// Get returns the value of field in an object node.
func (y *Node) Get(field string) (*Node, bool) {
	if y == nil || y.Type != ObjectType {
		return nil, false
	}
	for i, f := range y.Fields {
		if f == field {
			return y.Values[i], true
		}
	}
	return nil, false
}

// Len is the number of children of a container and 0 for leaves.
func (y *Node) Len() int {
	if y == nil {
		return 0
	}
	return len(y.Values)
}

// Float64 parses a number node.
func (y *Node) Float64() (float64, bool) {
	if y == nil || y.Type != NumberType {
		return 0, false
	}
	f, err := strconv.ParseFloat(y.Number, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ToAny converts to plain Go values (map[string]any, []any, string,
// float64, bool, nil). Object key order is lost.
func (y *Node) ToAny() any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f] = y.Values[i].ToAny()
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = v.ToAny()
		}
		return res
	case StringType:
		return y.String
	case NumberType:
		if f, ok := y.Float64(); ok {
			return f
		}
		return y.Number
	case BoolType:
		return y.Bool
	case NullType:
		return nil
	}
	return nil
}

// OrderLike reorders the object fields of y, recursively, to follow the
// field order of ref. Fields unknown to ref keep their relative order after
// the known ones.
func (y *Node) OrderLike(ref *Node) {
	if y == nil || ref == nil || y.Type != ref.Type {
		return
	}
	switch y.Type {
	case ArrayType:
		for i, v := range y.Values {
			if i < len(ref.Values) {
				v.OrderLike(ref.Values[i])
			}
		}
	case ObjectType:
		rank := make(map[string]int, len(ref.Fields))
		for i, f := range ref.Fields {
			if _, dup := rank[f]; !dup {
				rank[f] = i
			}
		}
		idx := make([]int, len(y.Fields))
		for i := range idx {
			idx[i] = i
		}
		pos := func(i int) int {
			if r, ok := rank[y.Fields[i]]; ok {
				return r
			}
			return len(ref.Fields)
		}
		slices.SortStableFunc(idx, func(a, b int) int {
			return pos(a) - pos(b)
		})
		fields := make([]string, len(idx))
		values := make([]*Node, len(idx))
		for i, j := range idx {
			fields[i] = y.Fields[j]
			values[i] = y.Values[j]
		}
		y.Fields, y.Values = fields, values
		for i, f := range y.Fields {
			if rv, ok := ref.Get(f); ok {
				y.Values[i].OrderLike(rv)
			}
		}
	}
}
