// Package normalize reduces translated text to a comparable form.
//
// A Normalizer applies, in order: NFKC folding, removal of Han script
// characters, removal of separator glyphs together with any whitespace
// around them, and whitespace collapsing. Removal joins its neighbours
// ("hip-hop" becomes "hiphop"), which may expose a new separator or
// composition, so removal and NFKC repeat until nothing changes. The
// result is idempotent: normalizing twice equals normalizing once.
package normalize

import (
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/signadot/transcheck/debug"
	"github.com/signadot/transcheck/ir"
)

// DefaultSeparators are the delimiter glyphs stripped by Default.
var DefaultSeparators = []string{
	"|", "｜",
	"/", "／",
	"-", "—", "–",
	"·", "・", "、",
	":", "：",
	";", "；",
}

var ErrBadSeparator = errors.New("bad separator")

var hanRe = regexp.MustCompile(`\p{Han}+`)

// Normalizer is immutable after New and safe for concurrent use.
type Normalizer struct {
	seps  []string
	sepRe *regexp.Regexp
}

// New compiles a Normalizer for the given separators. Separators are
// folded with NFKC, so a fullwidth glyph and its ASCII form are the same
// separator. A separator may not contain whitespace. With no separators
// only Han removal and whitespace handling apply.
func New(separators ...string) (*Normalizer, error) {
	seen := make(map[string]bool, len(separators))
	var seps []string
	for _, s := range separators {
		f := norm.NFKC.String(s)
		if f == "" || strings.ContainsFunc(f, isSpace) {
			return nil, fmt.Errorf("%w: %q", ErrBadSeparator, s)
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		seps = append(seps, f)
	}
	res := &Normalizer{seps: seps}
	if len(seps) == 0 {
		return res, nil
	}
	// longest first so that multi glyph separators win over their parts
	alts := slices.Clone(seps)
	slices.SortStableFunc(alts, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})
	for i, a := range alts {
		alts[i] = regexp.QuoteMeta(a)
	}
	pat := `[\s\p{Z}]*(?:` + strings.Join(alts, "|") + `)[\s\p{Z}]*`
	re, err := regexp.Compile(pat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSeparator, err)
	}
	res.sepRe = re
	return res, nil
}

var defaultNormalizer = sync.OnceValue(func() *Normalizer {
	n, err := New(DefaultSeparators...)
	if err != nil {
		panic(err)
	}
	return n
})

// Default returns the process wide Normalizer for DefaultSeparators.
func Default() *Normalizer {
	return defaultNormalizer()
}

// Separators returns the folded separators in the order given to New.
func (n *Normalizer) Separators() []string {
	return slices.Clone(n.seps)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(unicode.Z, r)
}

func (n *Normalizer) String(s string) string {
	res := norm.NFKC.String(s)
	for {
		next := hanRe.ReplaceAllString(res, "")
		if n.sepRe != nil {
			next = n.sepRe.ReplaceAllString(next, "")
		}
		next = norm.NFKC.String(next)
		if next == res {
			break
		}
		res = next
	}
	res = strings.Join(strings.Fields(res), " ")
	if debug.Normalize() && res != s {
		debug.Logf("normalize: %q -> %q", s, res)
	}
	return res
}

// Node returns a normalized copy of a string node. Other nodes are
// returned as is.
func (n *Normalizer) Node(y *ir.Node) *ir.Node {
	if y == nil || y.Type != ir.StringType {
		return y
	}
	return ir.FromString(n.String(y.String))
}
