// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jview

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tailscale/hujson"
)

// ErrExtraInput is reported by Decode when the input contains data after
// the first complete value.
var ErrExtraInput = errors.New("extra input after value")

// Decode reads all of r as a single JSON value and returns it as a value
// tree suitable for Tokenize. Objects are returned as Members, preserving
// the order of their keys, arrays as []any, numbers as json.Number, and the
// remaining values as string, bool, or nil.
//
// If the input is not valid JSON, including input that ends inside a value,
// Decode reports an error of concrete type *SyntaxError. If the input has
// data after a complete value, Decode returns that value along with a
// *SyntaxError wrapping ErrExtraInput.
func Decode(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decode(data, true)
}

// DecodeHuJSON is as Decode, but data may be written in HuJSON (JSON with
// comments and trailing commas).
func DecodeHuJSON(data []byte) (any, error) { return decode(data, false) }

func decode(data []byte, strict bool) (any, error) {
	d := &decoder{src: data, strict: strict}
	root, err := hujson.Parse(data)
	if err == nil {
		return d.value(&root)
	}

	serr := d.parseError(err)
	if root.Value == nil || root.EndOffset == 0 {
		return nil, serr
	}

	// The top-level value is complete; the error concerns what follows it.
	serr.err = fmt.Errorf("%w: %w", ErrExtraInput, serr.err)
	root.AfterExtra = nil
	v, verr := d.value(&root)
	if verr != nil {
		return nil, verr
	}
	return v, serr
}

// A decoder converts the syntax tree of a HuJSON value into a value tree.
// In strict mode it rejects comments and trailing commas.
type decoder struct {
	src    []byte
	strict bool
}

func (d *decoder) errorAt(offset int, err error) *SyntaxError {
	off := int64(offset)
	return &SyntaxError{Offset: off, Location: locate(d.src, off), err: err}
}

// parseError converts an error from hujson.Parse into a *SyntaxError.
// The parser reports a 1-based line and column in its message.
func (d *decoder) parseError(err error) *SyntaxError {
	var line, col int
	if _, serr := fmt.Sscanf(err.Error(), "hujson: line %d, column %d:", &line, &col); serr != nil {
		return d.errorAt(len(d.src), err)
	}
	if inner := errors.Unwrap(err); inner != nil {
		err = inner // the location is reported by the SyntaxError
	}
	lc := LineCol{Line: line, Column: col - 1}
	return &SyntaxError{Offset: offsetOf(d.src, lc), Location: lc, err: err}
}

// extra checks the whitespace and comments in b, which begin at offset.
func (d *decoder) extra(b hujson.Extra, offset int) error {
	if !d.strict || b.IsStandard() {
		return nil
	}
	i := bytes.IndexFunc(b, func(r rune) bool {
		return r != ' ' && r != '\t' && r != '\r' && r != '\n'
	})
	return d.errorAt(offset+i, errors.New("comments are not allowed"))
}

func (d *decoder) value(v *hujson.Value) (any, error) {
	if err := d.extra(v.BeforeExtra, v.StartOffset-len(v.BeforeExtra)); err != nil {
		return nil, err
	}
	var out any
	switch t := v.Value.(type) {
	case hujson.Literal:
		switch t.Kind() {
		case 'n':
			out = nil
		case 't', 'f':
			out = t.Bool()
		case '"':
			out = t.String()
		case '0':
			out = json.Number(string(t))
		default:
			return nil, d.errorAt(v.StartOffset, fmt.Errorf("invalid literal %q", t))
		}

	case *hujson.Object:
		ms := make(Members, 0, len(t.Members))
		for i := range t.Members {
			m := &t.Members[i]
			name, err := d.value(&m.Name)
			if err != nil {
				return nil, err
			}
			val, err := d.value(&m.Value)
			if err != nil {
				return nil, err
			}
			ms = append(ms, Member{Key: name.(string), Value: val})
		}
		var last *hujson.Value
		if n := len(t.Members); n > 0 {
			last = &t.Members[n-1].Value
		}
		if err := d.closing(v, last, t.AfterExtra); err != nil {
			return nil, err
		}
		out = ms

	case *hujson.Array:
		arr := make([]any, 0, len(t.Elements))
		for i := range t.Elements {
			elt, err := d.value(&t.Elements[i])
			if err != nil {
				return nil, err
			}
			arr = append(arr, elt)
		}
		var last *hujson.Value
		if n := len(t.Elements); n > 0 {
			last = &t.Elements[n-1]
		}
		if err := d.closing(v, last, t.AfterExtra); err != nil {
			return nil, err
		}
		out = arr

	default:
		return nil, d.errorAt(v.StartOffset, fmt.Errorf("unexpected value %T", v.Value))
	}
	if err := d.extra(v.AfterExtra, v.EndOffset); err != nil {
		return nil, err
	}
	return out, nil
}

// closing checks the end of the array or object v, whose last member or
// element is last (nil if empty) and whose closing bracket is preceded by
// the extra text after.
func (d *decoder) closing(v, last *hujson.Value, after hujson.Extra) error {
	if !d.strict {
		return nil
	}
	// The parser marks a trailing comma by a non-nil AfterExtra on the last
	// value, holding the text between the value and the comma.
	if last != nil && last.AfterExtra != nil {
		return d.errorAt(last.EndOffset+len(last.AfterExtra), errors.New("trailing comma is not allowed"))
	}
	return d.extra(after, v.EndOffset-1-len(after))
}
