// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jview

// Members is an object value whose members are kept in insertion order.
// Tokenize accepts it wherever an object is expected, and Decode produces it
// for every object in its input.
//
// Key uniqueness is not checked; duplicate keys are displayed as written.
type Members []Member

// A Member is a single key-value pair belonging to a Members object.
type Member struct {
	Key   string
	Value any
}

// Field constructs an object member with the given key and value.
func Field(key string, value any) Member { return Member{Key: key, Value: value} }
