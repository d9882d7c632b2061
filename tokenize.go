// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jview

import (
	"encoding/json"
	"slices"
	"strings"
)

// Options control the behaviour of Tokenize. A nil *Options is ready for
// use and is equivalent to {MaxDepth: -1}.
type Options struct {
	// MaxDepth, if non-negative, is the deepest level whose contents are
	// shown. Arrays and objects at this depth or deeper start collapsed, and
	// values below it start hidden. A value of -1 disables collapsing.
	//
	// Note that the zero value collapses the root.
	MaxDepth int

	// Path is the access path of the root value. The paths of all other
	// tokens extend it.
	Path string

	// Name, if set, prefixes error messages reported by the tokenizer.
	Name string
}

func (o *Options) maxDepth() int {
	if o == nil || o.MaxDepth < 0 {
		return -1
	}
	return o.MaxDepth
}

func (o *Options) path() string {
	if o == nil {
		return ""
	}
	return o.Path
}

func (o *Options) name() string {
	if o == nil {
		return ""
	}
	return o.Name
}

// Tokenize flattens v into a sequence of display tokens in pre-order, with
// the closing token of each array or object immediately following its last
// descendant. The index of each token equals its offset in the result.
//
// The value v must be composed of nil, bool, string, json.Number, Go integer
// and floating-point values, []any, Members, and map[string]any. Members of
// a map are ordered by key. If any other value is found, Tokenize reports an
// error of concrete type *TypeError and no tokens.
func Tokenize(v any, opts *Options) ([]Token, error) {
	t := &tokenizer{maxDepth: opts.maxDepth(), name: opts.name()}
	if err := t.flatten(v, Key{}, opts.path(), 0, -1, false); err != nil {
		return nil, err
	}
	return t.out, nil
}

// MustTokenize is as Tokenize, but panics if v cannot be tokenized.
// It is intended for values constructed by the program itself.
func MustTokenize(v any, opts *Options) []Token {
	toks, err := Tokenize(v, opts)
	if err != nil {
		panic(err)
	}
	return toks
}

type tokenizer struct {
	maxDepth int
	name     string
	out      []Token
}

// hidden reports whether a token at depth lies beyond the depth cutoff.
func (t *tokenizer) hidden(depth int) bool { return t.maxDepth >= 0 && depth > t.maxDepth }

// collapsed reports whether a tree node at depth starts collapsed.
func (t *tokenizer) collapsed(depth int) bool { return t.maxDepth >= 0 && depth >= t.maxDepth }

func (t *tokenizer) flatten(v any, key Key, path string, depth, parent int, hasNext bool) error {
	tok := Token{
		Value:   v,
		Key:     key,
		Depth:   depth,
		Path:    path,
		Index:   len(t.out),
		Parent:  parent,
		Sibling: -1,
		HasNext: hasNext,
		Visible: !t.hidden(depth),
	}

	switch x := v.(type) {
	case nil:
		tok.Type = Null
	case bool:
		tok.Type = Boolean
	case string:
		tok.Type = String
	case json.Number, float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		tok.Type = Number

	case []any:
		tok.Type = Array
		return t.flattenTree(tok, len(x), func(i int) error {
			return t.flatten(x[i], IndexKey(i), elementPath(path, i), depth+1, tok.Index, i+1 < len(x))
		})

	case Members:
		return t.flattenObject(tok, x)

	case map[string]any:
		ms := make(Members, 0, len(x))
		for k, v := range x {
			ms = append(ms, Member{Key: k, Value: v})
		}
		slices.SortFunc(ms, func(a, b Member) int { return strings.Compare(a.Key, b.Key) })
		return t.flattenObject(tok, ms)

	default:
		return &TypeError{Name: t.name, Path: path, Value: v}
	}

	t.out = append(t.out, tok)
	return nil
}

func (t *tokenizer) flattenObject(tok Token, ms Members) error {
	tok.Type = Object
	return t.flattenTree(tok, len(ms), func(i int) error {
		m := ms[i]
		return t.flatten(m.Value, NameKey(m.Key), memberPath(tok.Path, m.Key), tok.Depth+1, tok.Index, i+1 < len(ms))
	})
}

// flattenTree emits the open token described by tok, calls child for each
// of its n children in order, and then emits the matching close token.
func (t *tokenizer) flattenTree(tok Token, n int, child func(int) error) error {
	openText, closeText := "[", "]"
	if tok.Type == Object {
		openText, closeText = "{", "}"
	}
	tok.Role = Open
	tok.Value = openText
	tok.Children = n
	tok.Collapsed = t.collapsed(tok.Depth)
	t.out = append(t.out, tok)

	for i := range n {
		if err := child(i); err != nil {
			return err
		}
	}

	// The open token's sibling is only known once its children are done.
	open := tok.Index
	end := len(t.out)
	t.out[open].Sibling = end

	tok.Role = Close
	tok.Value = closeText
	tok.Index = end
	tok.Sibling = open
	tok.Visible = tok.Visible && !tok.Collapsed
	t.out = append(t.out, tok)
	return nil
}
