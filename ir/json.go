package ir

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

type jsonFrame struct {
	node *Node
	key  string
	// object frames alternate between expecting a key and a value.
	wantKey bool
	index   map[string]int
}

// ParseJSON decodes a single JSON document, keeping object keys in
// document order and numbers as their literal text. When a key repeats
// within an object, the first position is kept and the last value wins.
func ParseJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var (
		stack []*jsonFrame
		root  *Node
	)
	// place puts n into the innermost container, or makes it the root.
	place := func(n *Node) {
		if len(stack) == 0 {
			root = n
			return
		}
		top := stack[len(stack)-1]
		switch top.node.Type {
		case ArrayType:
			top.node.Values = append(top.node.Values, n)
		case ObjectType:
			if i, dup := top.index[top.key]; dup {
				top.node.Values[i] = n
			} else {
				top.index[top.key] = len(top.node.Fields)
				top.node.Fields = append(top.node.Fields, top.key)
				top.node.Values = append(top.node.Values, n)
			}
			top.wantKey = true
		}
	}
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		if len(stack) != 0 {
			top := stack[len(stack)-1]
			if top.node.Type == ObjectType && top.wantKey {
				switch t := tok.(type) {
				case string:
					top.key = t
					top.wantKey = false
					continue
				case json.Delim:
					// closing '}' handled below
				default:
					return nil, fmt.Errorf("%w: unexpected object key %v", ErrParse, tok)
				}
			}
		}
		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{':
				n := &Node{Type: ObjectType}
				place(n)
				stack = append(stack, &jsonFrame{node: n, wantKey: true, index: map[string]int{}})
			case '[':
				n := &Node{Type: ArrayType}
				place(n)
				stack = append(stack, &jsonFrame{node: n})
			case '}', ']':
				stack = stack[:len(stack)-1]
			}
		case string:
			place(FromString(t))
		case json.Number:
			place(FromNumber(t.String()))
		case bool:
			place(FromBool(t))
		case nil:
			place(Null())
		default:
			return nil, fmt.Errorf("%w: unexpected token %T", ErrParse, tok)
		}
		if len(stack) == 0 && root != nil {
			break
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: empty document", ErrParse)
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("%w: %w", ErrParse, io.ErrUnexpectedEOF)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return nil, fmt.Errorf("%w: trailing data after document", ErrParse)
	}
	return root, nil
}

// MarshalJSON produces compact JSON with object keys in node order.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := writeJSON(buf, y); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, y *Node) error {
	if y == nil {
		buf.WriteString("null")
		return nil
	}
	switch y.Type {
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i != 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(Quote(f))
			buf.WriteByte(':')
			if err := writeJSON(buf, y.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i != 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case StringType:
		buf.WriteString(Quote(y.String))
	case NumberType:
		if !json.Valid([]byte(y.Number)) {
			return fmt.Errorf("invalid number literal %q", y.Number)
		}
		buf.WriteString(y.Number)
	case BoolType:
		if y.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case NullType:
		buf.WriteString("null")
	default:
		return fmt.Errorf("cannot marshal node of type %s", y.Type)
	}
	return nil
}

// Quote returns s as a JSON string literal without HTML escaping.
func Quote(s string) string {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// encoding a string cannot fail
	_ = enc.Encode(s)
	return string(bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}))
}

// JSONString is MarshalJSON for display purposes; it never fails.
func (y *Node) JSONString() string {
	d, err := y.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<%s>", err)
	}
	return string(d)
}
