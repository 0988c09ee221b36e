package encode

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/transcheck/format"
	"github.com/signadot/transcheck/ir"
)

type EncState struct {
	indent   int
	wire     bool
	sortKeys bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		buf := &bytes.Buffer{}
		if err := es.encodeJSON(buf, node, 0); err != nil {
			return err
		}
		buf.WriteByte('\n')
		_, err := w.Write(buf.Bytes())
		return err
	case format.YAMLFormat:
		v, err := es.yamlValue(node)
		if err != nil {
			return err
		}
		yOpts := []yaml.EncodeOption{yaml.Indent(max(es.indent, 1))}
		if es.wire {
			yOpts = append(yOpts, yaml.Flow(true))
		}
		d, err := yaml.MarshalWithOptions(v, yOpts...)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func (es *EncState) newline(buf *bytes.Buffer, depth int) {
	if es.wire {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", depth*es.indent))
}

func (es *EncState) order(node *ir.Node) []int {
	idx := make([]int, len(node.Fields))
	for i := range idx {
		idx[i] = i
	}
	if es.sortKeys {
		slices.SortStableFunc(idx, func(a, b int) int {
			return strings.Compare(node.Fields[a], node.Fields[b])
		})
	}
	return idx
}

func (es *EncState) encodeJSON(buf *bytes.Buffer, node *ir.Node, depth int) error {
	if node == nil {
		buf.WriteString(es.color(ir.NullType, ValueColor, "null"))
		return nil
	}
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			buf.WriteString(es.color(ir.ObjectType, SepColor, "{}"))
			return nil
		}
		buf.WriteString(es.color(ir.ObjectType, SepColor, "{"))
		for n, i := range es.order(node) {
			if n != 0 {
				buf.WriteString(es.color(ir.ObjectType, SepColor, ","))
			}
			es.newline(buf, depth+1)
			buf.WriteString(es.color(ir.ObjectType, FieldColor, ir.Quote(node.Fields[i])))
			buf.WriteString(es.color(ir.ObjectType, SepColor, ":"))
			if !es.wire {
				buf.WriteByte(' ')
			}
			if err := es.encodeJSON(buf, node.Values[i], depth+1); err != nil {
				return err
			}
		}
		es.newline(buf, depth)
		buf.WriteString(es.color(ir.ObjectType, SepColor, "}"))
	case ir.ArrayType:
		if len(node.Values) == 0 {
			buf.WriteString(es.color(ir.ArrayType, SepColor, "[]"))
			return nil
		}
		buf.WriteString(es.color(ir.ArrayType, SepColor, "["))
		for i, v := range node.Values {
			if i != 0 {
				buf.WriteString(es.color(ir.ArrayType, SepColor, ","))
			}
			es.newline(buf, depth+1)
			if err := es.encodeJSON(buf, v, depth+1); err != nil {
				return err
			}
		}
		es.newline(buf, depth)
		buf.WriteString(es.color(ir.ArrayType, SepColor, "]"))
	case ir.StringType, ir.NumberType, ir.BoolType, ir.NullType:
		d, err := node.MarshalJSON()
		if err != nil {
			return err
		}
		buf.WriteString(es.color(node.Type, ValueColor, string(d)))
	default:
		return fmt.Errorf("cannot encode node of type %s", node.Type)
	}
	return nil
}

// yamlValue converts node into values goccy/go-yaml encodes faithfully.
func (es *EncState) yamlValue(node *ir.Node) (any, error) {
	if node == nil {
		return nil, nil
	}
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, len(node.Fields))
		for _, i := range es.order(node) {
			v, err := es.yamlValue(node.Values[i])
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: node.Fields[i], Value: v})
		}
		return res, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, e := range node.Values {
			v, err := es.yamlValue(e)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ir.StringType:
		return node.String, nil
	case ir.NumberType:
		if i, err := strconv.ParseInt(node.Number, 10, 64); err == nil {
			return i, nil
		}
		if u, err := strconv.ParseUint(node.Number, 10, 64); err == nil {
			return u, nil
		}
		if f, ok := node.Float64(); ok {
			return f, nil
		}
		return nil, fmt.Errorf("invalid number literal %q", node.Number)
	case ir.BoolType:
		return node.Bool, nil
	case ir.NullType:
		return nil, nil
	default:
		return nil, fmt.Errorf("cannot encode node of type %s", node.Type)
	}
}
