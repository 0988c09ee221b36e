// Package walk enumerates the leaves of a document without recursion.
package walk

import (
	"errors"
	"fmt"

	"github.com/signadot/transcheck/debug"
	"github.com/signadot/transcheck/ir"
	"github.com/signadot/transcheck/ir/kpath"
)

// DefaultMaxNodes bounds the number of nodes one walk may visit.
const DefaultMaxNodes = 1_000_000

var ErrResourceExceeded = errors.New("resource exceeded")

type walkOpts struct {
	maxNodes int
}

type Option func(*walkOpts)

// MaxNodes overrides DefaultMaxNodes. Values below 1 restore the default.
func MaxNodes(n int) Option {
	return func(o *walkOpts) {
		if n < 1 {
			n = DefaultMaxNodes
		}
		o.maxNodes = n
	}
}

// Leaf is a scalar found by a walk.
type Leaf struct {
	Path  kpath.Path
	Key   string
	Value *ir.Node
}

type frame struct {
	node *ir.Node
	path kpath.Path
}

// Visit calls f for every node under root, root included, depth first:
// array elements in index order and object values in document order. When
// f returns false the children of that node are skipped. Visiting more
// than the node bound stops the walk with an error wrapping
// ErrResourceExceeded.
func Visit(root *ir.Node, f func(p kpath.Path, n *ir.Node) bool, opts ...Option) error {
	o := &walkOpts{maxNodes: DefaultMaxNodes}
	for _, opt := range opts {
		opt(o)
	}
	if root == nil {
		return nil
	}
	stack := []frame{{node: root}}
	visited := 0
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited++
		if visited > o.maxNodes {
			return fmt.Errorf("%w: visited more than %d nodes", ErrResourceExceeded, o.maxNodes)
		}
		if !f(top.path, top.node) {
			continue
		}
		n := top.node
		switch n.Type {
		case ir.ArrayType:
			for i := len(n.Values) - 1; i >= 0; i-- {
				stack = append(stack, frame{node: n.Values[i], path: top.path.Append(kpath.Index(i))})
			}
		case ir.ObjectType:
			for i := len(n.Values) - 1; i >= 0; i-- {
				stack = append(stack, frame{node: n.Values[i], path: top.path.Append(kpath.Key(n.Fields[i]))})
			}
		case ir.NullType, ir.BoolType, ir.NumberType, ir.StringType:
		}
	}
	if debug.Walk() {
		debug.Logf("walk: visited %d nodes", visited)
	}
	return nil
}

// Strings returns the string leaves under root in walk order.
func Strings(root *ir.Node, opts ...Option) ([]Leaf, error) {
	return leaves(root, func(t ir.Type) bool { return t == ir.StringType }, opts)
}

// Scalars returns every null, boolean, number and string leaf under root
// in walk order. Empty arrays and objects produce nothing.
func Scalars(root *ir.Node, opts ...Option) ([]Leaf, error) {
	return leaves(root, ir.Type.IsLeaf, opts)
}

func leaves(root *ir.Node, keep func(ir.Type) bool, opts []Option) ([]Leaf, error) {
	var res []Leaf
	err := Visit(root, func(p kpath.Path, n *ir.Node) bool {
		if n.Type.IsLeaf() {
			if keep(n.Type) {
				res = append(res, Leaf{Path: p, Key: p.String(), Value: n})
			}
			return false
		}
		return true
	}, opts...)
	if err != nil {
		return nil, err
	}
	return res, nil
}
