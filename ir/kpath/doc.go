// Package kpath encodes and decodes paths into documents.
//
// A path is a sequence of segments, each either an object key or an array
// index. Its canonical string form joins keys with '.' and appends indices
// as "[n]" directly after the previous segment:
//
//	section_dimension[2].lyrics   // key, index, key
//	[0].title                     // a leading index has no prefix
//	a[1][0]                       // nested arrays
//
// # Usage
//
//	p := kpath.Path{kpath.Key("section_dimension"), kpath.Index(2), kpath.Key("lyrics")}
//	key := p.String()             // "section_dimension[2].lyrics"
//	back := kpath.Parse(key)      // equal to p
//
//	// user supplied keys should fail loudly
//	p, err := kpath.ParseStrict("a[x]") // err wraps ErrBadPath
//
// Parse is permissive: fragments it cannot read are dropped. Encoding and
// decoding are inverse for keys that are non-empty and free of control
// characters, '.', '[' and ']', and for non-negative indices.
package kpath
