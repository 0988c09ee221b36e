package extract

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/transcheck/ir"
	"github.com/signadot/transcheck/walk"
)

type patchOp struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value string `json:"value"`
}

// CleanPatch returns the RFC 6902 patch which turns doc into its cleaned
// form: one replace operation per bilingual leaf, in discovery order.
func CleanPatch(doc *ir.Node, opts ...walk.Option) ([]byte, error) {
	m, err := BuildMap(doc, opts...)
	if err != nil {
		return nil, err
	}
	return patchFor(m)
}

func patchFor(m *Map) ([]byte, error) {
	ops := make([]patchOp, 0, m.Len())
	for _, e := range m.Entries() {
		ops = append(ops, patchOp{Op: "replace", Path: e.Path.Pointer(), Value: e.Translation})
	}
	return json.Marshal(ops)
}

// Clean returns a copy of doc in which every bilingual string is replaced
// by its translation. Object key order follows doc.
func Clean(doc *ir.Node, opts ...walk.Option) (*ir.Node, error) {
	if doc == nil {
		return nil, nil
	}
	if doc.Type == ir.StringType {
		if _, tr, ok := Split(doc.String); ok {
			return ir.FromString(tr), nil
		}
		return doc.Clone(), nil
	}
	m, err := BuildMap(doc, opts...)
	if err != nil {
		return nil, err
	}
	if m.Len() == 0 {
		return doc.Clone(), nil
	}
	pd, err := patchFor(m)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, fmt.Errorf("clean: %w", err)
	}
	src, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("clean: %w", err)
	}
	out, err := patch.Apply(src)
	if err != nil {
		return nil, fmt.Errorf("clean: %w", err)
	}
	res, err := ir.ParseJSON(out)
	if err != nil {
		return nil, fmt.Errorf("clean: %w", err)
	}
	res.OrderLike(doc)
	return res, nil
}
