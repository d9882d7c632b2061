// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jview

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/creachadair/jview/internal/escape"
	"go4.org/mem"
)

// Type is the type of a display token.
type Type byte

// Constants defining the valid Type values.
const (
	Invalid Type = iota // invalid type
	Array               // array bracket: "[" or "]"
	Object              // object brace: "{" or "}"
	String              // string value
	Number              // numeric value
	Boolean             // constant: true or false
	Null                // constant: null
)

var typeStr = [...]string{
	Invalid: "invalid",
	Array:   "array",
	Object:  "object",
	String:  "string",
	Number:  "number",
	Boolean: "boolean",
	Null:    "null",
}

func (t Type) String() string {
	v := int(t)
	if v >= len(typeStr) {
		return typeStr[Invalid]
	}
	return typeStr[v]
}

// IsTree reports whether t is one of the bracketed types, Array or Object.
func (t Type) IsTree() bool { return t == Array || t == Object }

// Role distinguishes the two tokens of a bracketed value.
type Role byte

// Constants defining the valid Role values.
const (
	None  Role = iota // scalar tokens have no role
	Open              // the opening bracket of an array or object
	Close             // the closing bracket of an array or object
)

func (r Role) String() string {
	switch r {
	case Open:
		return "open"
	case Close:
		return "close"
	default:
		return "none"
	}
}

// A Key identifies a value within its parent: an object member name or an
// array offset. The zero Key is the key of the root value.
type Key struct {
	name  string
	index int
	kind  byte // 0: none, 'n': name, 'i': index
}

// NameKey returns the key of an object member with the given name.
func NameKey(name string) Key { return Key{name: name, kind: 'n'} }

// IndexKey returns the key of the array element at offset i.
func IndexKey(i int) Key { return Key{index: i, kind: 'i'} }

// IsNone reports whether k is the key of a root value.
func (k Key) IsNone() bool { return k.kind == 0 }

// IsName reports whether k is an object member name.
func (k Key) IsName() bool { return k.kind == 'n' }

// IsIndex reports whether k is an array offset.
func (k Key) IsIndex() bool { return k.kind == 'i' }

// Name returns the member name of k, or "" if k is not a name.
func (k Key) Name() string { return k.name }

// Index returns the array offset of k, or -1 if k is not an index.
func (k Key) Index() int {
	if k.kind != 'i' {
		return -1
	}
	return k.index
}

// String renders k as it appears in a display row: names are quoted, indexes
// are decimal, and the root key is empty.
func (k Key) String() string {
	switch k.kind {
	case 'n':
		return string(escape.Quote(mem.S(k.name)))
	case 'i':
		return strconv.Itoa(k.index)
	default:
		return ""
	}
}

// A Token is a single row of a flattened JSON value: either a scalar, or one
// side of an array or object.
//
// Tokens are stored in a slice that serves as an arena. Parent and Sibling
// are offsets into that slice, not pointers.
type Token struct {
	Type  Type
	Role  Role // Open or Close for tree types, None otherwise
	Value any  // the scalar value, or the bracket string for tree types
	Key   Key
	Depth int    // nesting depth; the root is 0
	Path  string // access path of the value, e.g. .items[2].name

	Index    int  // offset in the flattened sequence
	Parent   int  // offset of the enclosing open token, or -1 for the root
	Sibling  int  // offset of the paired bracket token, or -1 for scalars
	Children int  // number of direct children (tree types only)
	HasNext  bool // whether a sibling follows under the same parent

	Collapsed bool // children are hidden (tree types only)
	Visible   bool // the token should be displayed
	Hover     bool // set by the host; the tokenizer never touches it
}

// IsOpen reports whether t is the opening token of an array or object.
func (t *Token) IsOpen() bool { return t.Role == Open }

// IsClose reports whether t is the closing token of an array or object.
func (t *Token) IsClose() bool { return t.Role == Close }

// Text returns the display text of the value carried by t. Strings are
// quoted, numbers are formatted in their shortest form, and tree tokens
// report their bracket.
func (t *Token) Text() string {
	switch v := t.Value.(type) {
	case nil:
		return "null"
	case string:
		if t.Type == String {
			return string(escape.Quote(mem.S(v)))
		}
		return v
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

func (t *Token) String() string {
	if t.Type.IsTree() {
		return fmt.Sprintf("%s(%s, index=%d, sibling=%d)", t.Type, t.Role, t.Index, t.Sibling)
	}
	return fmt.Sprintf("%s(%s, index=%d)", t.Type, t.Text(), t.Index)
}
