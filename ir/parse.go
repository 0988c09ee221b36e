package ir

import (
	"fmt"

	"github.com/signadot/transcheck/format"
)

// Parse decodes d according to f.
func Parse(d []byte, f format.Format) (*Node, error) {
	switch f {
	case format.JSONFormat:
		return ParseJSON(d)
	case format.YAMLFormat:
		return ParseYAML(d)
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
}
