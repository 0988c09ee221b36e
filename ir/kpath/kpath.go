package kpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/transcheck/debug"
)

var ErrBadPath = errors.New("bad path")

// Path is a sequence of segments from the document root. The empty path
// addresses the root.
type Path []Segment

// String encodes p as a canonical path key.
//
//	Path{Key("a"), Index(2), Key("b")} → "a[2].b"
//	Path{Index(0), Key("a")}           → "[0].a"
func (p Path) String() string {
	var buf strings.Builder
	for i, s := range p {
		if s.kind == FieldEntry && i > 0 {
			buf.WriteByte('.')
		}
		buf.WriteString(s.SegmentString())
	}
	return buf.String()
}

// Parse decodes a canonical path key. The key is split on '.' and each
// fragment must be a key name optionally followed by one or more "[n]"
// suffixes, or only such suffixes. Fragments that do not have this shape
// are dropped.
func Parse(key string) Path {
	var res Path
	for _, frag := range strings.Split(key, ".") {
		segs, err := parseFrag(frag)
		if err != nil {
			if debug.Path() {
				debug.Logf("kpath: dropping fragment %q of %q: %v", frag, key, err)
			}
			continue
		}
		res = append(res, segs...)
	}
	return res
}

// ParseStrict is like Parse but fails on the first fragment Parse would
// drop. The empty key is the root path.
func ParseStrict(key string) (Path, error) {
	if key == "" {
		return nil, nil
	}
	var res Path
	for _, frag := range strings.Split(key, ".") {
		segs, err := parseFrag(frag)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrBadPath, key, err)
		}
		res = append(res, segs...)
	}
	return res, nil
}

func parseFrag(frag string) (Path, error) {
	if frag == "" {
		return nil, errors.New("empty fragment")
	}
	name, rest := frag, ""
	if i := strings.IndexByte(frag, '['); i != -1 {
		name, rest = frag[:i], frag[i:]
	}
	if strings.IndexByte(name, ']') != -1 {
		return nil, fmt.Errorf("unexpected ']' in %q", name)
	}
	var res Path
	if name != "" {
		res = append(res, Key(name))
	}
	for rest != "" {
		if rest[0] != '[' {
			return nil, fmt.Errorf("expected '[' at %q", rest)
		}
		j := strings.IndexByte(rest, ']')
		if j == -1 {
			return nil, fmt.Errorf("unclosed '[' at %q", rest)
		}
		n, err := parseIndex(rest[1:j])
		if err != nil {
			return nil, err
		}
		res = append(res, Index(n))
		rest = rest[j+1:]
	}
	return res, nil
}

func parseIndex(is string) (int, error) {
	if is == "" {
		return 0, errors.New("empty index")
	}
	for _, c := range is {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid index %q", is)
		}
	}
	n, err := strconv.Atoi(is)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", is, err)
	}
	return n, nil
}

// Append returns a new path with segs added; p is not modified.
func (p Path) Append(segs ...Segment) Path {
	res := make(Path, len(p), len(p)+len(segs))
	copy(res, p)
	return append(res, segs...)
}

// Parent returns the path without its last segment, or nil for the root.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1:len(p)-1]
}

// Last returns the final segment.
func (p Path) Last() (Segment, bool) {
	if len(p) == 0 {
		return Segment{}, false
	}
	return p[len(p)-1], true
}

func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if !p[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// HasPrefix reports whether prefix is p or an ancestor of p.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	return p[:len(prefix)].Equal(prefix)
}

// Pointer renders p as an RFC 6901 JSON Pointer.
func (p Path) Pointer() string {
	var buf strings.Builder
	for _, s := range p {
		buf.WriteByte('/')
		switch s.kind {
		case ArrayEntry:
			buf.WriteString(strconv.Itoa(s.index))
		default:
			buf.WriteString(pointerEscaper.Replace(s.field))
		}
	}
	return buf.String()
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Path) UnmarshalText(d []byte) error {
	pp, err := ParseStrict(string(d))
	if err != nil {
		return err
	}
	*p = pp
	return nil
}
