package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"
)

// ParseYAML decodes the first YAML document in d. Mapping order is kept.
func ParseYAML(d []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return FromAny(v)
}

// FromAny converts decoded Go values into a Node. Plain maps come out with
// sorted keys; yaml.MapSlice keeps its order. Infinite and NaN floats,
// such as YAML .inf and .nan, have no JSON form and give ErrParse.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		return FromNumber(x.String()), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromNumber(strconv.FormatUint(uint64(x), 10)), nil
	case uint8:
		return FromNumber(strconv.FormatUint(uint64(x), 10)), nil
	case uint16:
		return FromNumber(strconv.FormatUint(uint64(x), 10)), nil
	case uint32:
		return FromNumber(strconv.FormatUint(uint64(x), 10)), nil
	case uint64:
		return FromNumber(strconv.FormatUint(x, 10)), nil
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case []any:
		vals := make([]*Node, len(x))
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return FromSlice(vals), nil
	case yaml.MapSlice:
		kvs := make([]KeyVal, 0, len(x))
		seen := make(map[string]int, len(x))
		for _, item := range x {
			n, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			k := keyString(item.Key)
			if i, dup := seen[k]; dup {
				kvs[i].Val = n
				continue
			}
			seen[k] = len(kvs)
			kvs = append(kvs, KeyVal{Key: k, Val: n})
		}
		return FromKeyVals(kvs), nil
	case map[string]any:
		kvs := make([]KeyVal, 0, len(x))
		for _, k := range slices.Sorted(maps.Keys(x)) {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, KeyVal{Key: k, Val: n})
		}
		return FromKeyVals(kvs), nil
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[keyString(k)] = e
		}
		return FromAny(m)
	default:
		return nil, fmt.Errorf("%w: unsupported value of type %T", ErrParse, v)
	}
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

func fromFloat(f float64) (*Node, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, fmt.Errorf("%w: non finite number %v", ErrParse, f)
	}
	return FromFloat(f), nil
}
