// Package extract isolates the translated half of bilingual strings.
//
// A bilingual string carries the source text and its translation in one
// value, separated by '|':
//
//	"Verse | 主歌"
//
// BuildMap collects the translations of a document keyed by canonical
// path; Clean rewrites the document to hold only the translations.
package extract

import (
	"encoding/json"
	"iter"
	"strings"

	"github.com/signadot/transcheck/ir"
	"github.com/signadot/transcheck/ir/kpath"
	"github.com/signadot/transcheck/walk"
)

// Split separates a bilingual string. The translation is everything after
// the first '|', trimmed; any further '|' are kept. ok is false when s has
// no '|'.
func Split(s string) (src, tr string, ok bool) {
	parts := strings.Split(s, "|")
	if len(parts) < 2 {
		return s, "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(strings.Join(parts[1:], "|")), true
}

// Entry is one bilingual leaf.
type Entry struct {
	Key         string     `json:"key"`
	Path        kpath.Path `json:"-"`
	Source      string     `json:"source"`
	Translation string     `json:"translation"`
}

// Map holds translations by canonical path key in discovery order.
type Map struct {
	entries []Entry
	index   map[string]int
}

func newMap() *Map {
	return &Map{index: map[string]int{}}
}

func (m *Map) add(e Entry) {
	if i, ok := m.index[e.Key]; ok {
		m.entries[i] = e
		return
	}
	m.index[e.Key] = len(m.entries)
	m.entries = append(m.entries, e)
}

// BuildMap walks the string leaves of doc and records the translation of
// every bilingual one. Strings without '|' are skipped.
func BuildMap(doc *ir.Node, opts ...walk.Option) (*Map, error) {
	leaves, err := walk.Strings(doc, opts...)
	if err != nil {
		return nil, err
	}
	m := newMap()
	for _, l := range leaves {
		src, tr, ok := Split(l.Value.String)
		if !ok {
			continue
		}
		m.add(Entry{Key: l.Key, Path: l.Path, Source: src, Translation: tr})
	}
	return m, nil
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

func (m *Map) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	i, ok := m.index[key]
	if !ok {
		return "", false
	}
	return m.entries[i].Translation, true
}

func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Keys returns the keys in discovery order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	res := make([]string, len(m.entries))
	for i := range m.entries {
		res[i] = m.entries[i].Key
	}
	return res
}

// All iterates key, translation pairs in discovery order.
func (m *Map) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if m == nil {
			return
		}
		for _, e := range m.entries {
			if !yield(e.Key, e.Translation) {
				return
			}
		}
	}
}

func (m *Map) Entries() []Entry {
	if m == nil {
		return nil
	}
	res := make([]Entry, len(m.entries))
	copy(res, m.entries)
	return res
}

// Node renders the map as a flat object from key to translation.
func (m *Map) Node() *ir.Node {
	kvs := make([]ir.KeyVal, 0, m.Len())
	for k, v := range m.All() {
		kvs = append(kvs, ir.KeyVal{Key: k, Val: ir.FromString(v)})
	}
	return ir.FromKeyVals(kvs)
}

func (m *Map) MarshalJSON() ([]byte, error) {
	return m.Node().MarshalJSON()
}

var _ json.Marshaler = (*Map)(nil)
