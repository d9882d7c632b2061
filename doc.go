// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jview flattens JSON values into sequences of display tokens for
// rendering as a collapsible, line-numbered tree.
//
// # Tokens
//
// Tokenize walks a decoded JSON value in pre-order and emits one Token per
// display row. A scalar value is one token; an array or object is an open
// token, the tokens of its children, and a close token:
//
//	toks, err := jview.Tokenize(v, &jview.Options{MaxDepth: 2})
//	if err != nil {
//	   log.Fatalf("Tokenize: %v", err)
//	}
//
// For the value {"a": 1, "b": [2, 3]} the tokens are:
//
//	Index | Type   | Role  | Depth | Sibling | Text
//	----- | ------ | ----- | ----- | ------- | ----
//	0     | object | open  | 0     | 6       | {
//	1     | number | none  | 1     | -1      | 1
//	2     | array  | open  | 1     | 5       | [
//	3     | number | none  | 2     | -1      | 2
//	4     | number | none  | 2     | -1      | 3
//	5     | array  | close | 1     | 2       | ]
//	6     | object | close | 0     | 0       | }
//
// Tokens are kept in a slice that serves as an arena: Parent and Sibling are
// offsets into the same slice, and the tokens strictly between an open token
// and its sibling are exactly the descendants of that node.
//
// If the input contains a value that has no JSON representation, such as a
// function or a channel, Tokenize reports an error of concrete type
// *TypeError and no tokens.
//
// # Collapsing
//
// When Options.MaxDepth is non-negative, every array and object at that
// depth or deeper starts collapsed. A collapsed node is displayed as its open
// token alone; its descendants and its close token are not Visible.
//
// A Tree holds a token sequence and its display state. Use Toggle to flip
// the collapse state of a node; it recomputes the visibility of the affected
// range in one pass and reports which tokens changed:
//
//	changed, err := tree.Toggle(i)
//
// The Visible method returns the tokens currently displayed, which is the
// input to the windowing engine in package window.
//
// # Decoding
//
// Go maps do not preserve key order. Decode and DecodeHuJSON read JSON text
// into a value tree whose objects are Members, so that the display order of
// object members matches the input.
package jview
