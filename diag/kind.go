package diag

import "fmt"

type Kind int

const (
	Missing Kind = iota
	Extra
	TypeMismatch
	ValueMismatch
)

var kindNames = map[Kind]string{
	Missing:       "missing",
	Extra:         "extra",
	TypeMismatch:  "type mismatch",
	ValueMismatch: "value mismatch",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for kk, name := range kindNames {
		if name == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("unrecognized diagnostic kind %q", d)
}

func Kinds() []Kind {
	return []Kind{Missing, Extra, TypeMismatch, ValueMismatch}
}

// Severity says whether a diagnostic fails a comparison.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "<unknown severity>"
	}
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Severity of a kind: Extra is a warning, the rest are errors.
func (k Kind) Severity() Severity {
	if k == Extra {
		return SeverityWarning
	}
	return SeverityError
}
