package kpath

import (
	"strconv"
	"unicode"
)

type EntryKind int

const (
	FieldEntry EntryKind = iota
	ArrayEntry
)

func (k EntryKind) String() string {
	switch k {
	case FieldEntry:
		return "key"
	case ArrayEntry:
		return "index"
	default:
		return "<unknown entry kind>"
	}
}

// Segment is one step of a Path: an object key or an array index.
type Segment struct {
	kind  EntryKind
	field string
	index int
}

// Key makes an object key segment.
func Key(name string) Segment {
	return Segment{kind: FieldEntry, field: name}
}

// Index makes an array index segment.
func Index(n int) Segment {
	return Segment{kind: ArrayEntry, index: n}
}

func (s Segment) EntryKind() EntryKind { return s.kind }

// Field returns the key of a FieldEntry segment.
func (s Segment) Field() (string, bool) {
	if s.kind != FieldEntry {
		return "", false
	}
	return s.field, true
}

// Index returns the index of an ArrayEntry segment.
func (s Segment) Index() (int, bool) {
	if s.kind != ArrayEntry {
		return 0, false
	}
	return s.index, true
}

func (s Segment) Equal(o Segment) bool {
	if s.kind != o.kind {
		return false
	}
	if s.kind == FieldEntry {
		return s.field == o.field
	}
	return s.index == o.index
}

// SegmentString returns the canonical text of the segment alone.
func (s Segment) SegmentString() string {
	if s.kind == ArrayEntry {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return s.field
}

// ValidField reports whether name survives an encode/decode round trip.
func ValidField(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r == '.', r == '[', r == ']':
			return false
		case unicode.IsControl(r):
			return false
		}
	}
	return true
}
