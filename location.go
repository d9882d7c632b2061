// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jview

import (
	"bytes"
	"fmt"
)

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// locate returns the line and column of the byte at offset in src.
// Offsets past the end of src are clamped to the end.
func locate(src []byte, offset int64) LineCol {
	pre := src[:min(max(offset, 0), int64(len(src)))]
	line := bytes.Count(pre, []byte("\n"))
	col := len(pre) - (bytes.LastIndexByte(pre, '\n') + 1)
	return LineCol{Line: line + 1, Column: col}
}

// offsetOf returns the byte offset in src of the location lc, clamped to the
// end of src.
func offsetOf(src []byte, lc LineCol) int64 {
	off := 0
	for range lc.Line - 1 {
		i := bytes.IndexByte(src[off:], '\n')
		if i < 0 {
			return int64(len(src))
		}
		off += i + 1
	}
	return int64(min(off+max(lc.Column, 0), len(src)))
}
