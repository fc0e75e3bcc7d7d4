// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import "fmt"

// ByteList is a bounded, mutable byte buffer. Appending past its capacity
// fails rather than growing or truncating silently; that contract is what
// lets Stream.output and the small per-scheme scratch lists share the same
// overflow discipline.
type ByteList struct {
	b   []byte
	cap int
}

// NewByteList creates an empty ByteList with room for up to capacity bytes.
func NewByteList(capacity int) *ByteList {
	return &ByteList{b: make([]byte, 0, capacity), cap: capacity}
}

// Len returns the number of bytes currently held.
func (l *ByteList) Len() int { return len(l.b) }

// Cap returns the maximum number of bytes this list can hold.
func (l *ByteList) Cap() int { return l.cap }

// HasCapacity reports whether at least one more byte can be pushed.
func (l *ByteList) HasCapacity() bool { return len(l.b) < l.cap }

// Push appends v, failing if the list is already at capacity.
func (l *ByteList) Push(v byte) error {
	if len(l.b) >= l.cap {
		return fmt.Errorf("datamatrix/encoder: byte list overflow (capacity %d)", l.cap)
	}
	l.b = append(l.b, v)
	return nil
}

// RemoveLast pops and returns the final byte, failing on an empty list.
func (l *ByteList) RemoveLast() (byte, error) {
	if len(l.b) == 0 {
		return 0, fmt.Errorf("datamatrix/encoder: byte list underflow")
	}
	v := l.b[len(l.b)-1]
	l.b = l.b[:len(l.b)-1]
	return v, nil
}

// RemoveFirstN drops the first n bytes, shifting the remainder down.
func (l *ByteList) RemoveFirstN(n int) error {
	if n < 0 || n > len(l.b) {
		return fmt.Errorf("datamatrix/encoder: byte list remove-first out of range")
	}
	l.b = append(l.b[:0], l.b[n:]...)
	return nil
}

// Get returns the byte at index i.
func (l *ByteList) Get(i int) byte { return l.b[i] }

// Set overwrites the byte at index i.
func (l *ByteList) Set(i int, v byte) error {
	if i < 0 || i >= len(l.b) {
		return fmt.Errorf("datamatrix/encoder: byte list index %d out of range", i)
	}
	l.b[i] = v
	return nil
}

// InsertAt inserts v at index i, shifting everything at and after i right by
// one. Used only for Base 256 header growth, which always inserts a second
// header byte immediately after the first.
func (l *ByteList) InsertAt(i int, v byte) error {
	if i < 0 || i > len(l.b) {
		return fmt.Errorf("datamatrix/encoder: byte list insert index %d out of range", i)
	}
	if len(l.b) >= l.cap {
		return fmt.Errorf("datamatrix/encoder: byte list overflow (capacity %d)", l.cap)
	}
	l.b = append(l.b, 0)
	copy(l.b[i+1:], l.b[i:len(l.b)-1])
	l.b[i] = v
	return nil
}

// RemoveAt deletes the byte at index i, shifting everything after it left by
// one. Used only for Base 256 header shrinkage.
func (l *ByteList) RemoveAt(i int) error {
	if i < 0 || i >= len(l.b) {
		return fmt.Errorf("datamatrix/encoder: byte list remove index %d out of range", i)
	}
	l.b = append(l.b[:i], l.b[i+1:]...)
	return nil
}

// Bytes returns the underlying slice. Callers must not retain it across
// further mutation of the list.
func (l *ByteList) Bytes() []byte { return l.b }
