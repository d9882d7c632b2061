// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jview

import (
	"strconv"

	"github.com/creachadair/jview/internal/escape"
	"go4.org/mem"
)

// memberPath extends base with an object member key. Keys that are not
// plain names are written as quoted subscripts.
func memberPath(base, key string) string {
	if escape.IsIdent(mem.S(key)) {
		return base + "." + key
	}
	return base + "[" + string(escape.Quote(mem.S(key))) + "]"
}

// elementPath extends base with an array offset.
func elementPath(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}
