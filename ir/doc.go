// Package ir provides the document model used by transcheck.
//
// # Overview
//
// A document, whether read from JSON or YAML, is a tree of *Node. The tree
// is a recursive tagged union: Type says which fields of a Node carry its
// value. Object nodes keep their keys in document order, and numbers keep
// their literal text so that "1.0" and "1" remain distinguishable when
// displayed.
//
// # Node Types
//
//   - NullType, BoolType, NumberType, StringType: leaves
//   - ArrayType: Values in index order
//   - ObjectType: parallel Fields and Values
//
// # Decoding
//
//	n, err := ir.ParseJSON(data)
//	n, err := ir.ParseYAML(data)
//	n, err := ir.Parse(data, format.YAMLFormat)
//
// # Lookup
//
// Resolve looks up a value by canonical path key (see package kpath). It
// distinguishes an absent value from a present null.
//
//	v, ok := ir.Resolve(n, "section_dimension[2].lyrics")
package ir
