// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from libdmtx's dmtxencodescheme.c encoding core.

package encoder

import "fmt"

// Scheme identifies one of the six Data Matrix encodation schemes.
type Scheme int

const (
	SchemeASCII Scheme = iota
	SchemeC40
	SchemeText
	SchemeX12
	SchemeEDIFACT
	SchemeBase256
)

func (s Scheme) String() string {
	switch s {
	case SchemeASCII:
		return "ASCII"
	case SchemeC40:
		return "C40"
	case SchemeText:
		return "Text"
	case SchemeX12:
		return "X12"
	case SchemeEDIFACT:
		return "EDIFACT"
	case SchemeBase256:
		return "Base256"
	default:
		return "Unknown"
	}
}

// Status is the state of an encode Stream. Encoding is the only
// non-terminal value; once a Stream reaches any other status it is frozen
// and no further chunks may be encoded.
type Status int

const (
	StatusEncoding Status = iota
	StatusComplete
	StatusInvalid
	StatusFatal
)

func (s Status) String() string {
	switch s {
	case StatusEncoding:
		return "Encoding"
	case StatusComplete:
		return "Complete"
	case StatusInvalid:
		return "Invalid"
	case StatusFatal:
		return "Fatal"
	default:
		return "Unknown"
	}
}

// Reason is a diagnostic code attached to a non-Encoding Status.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonUnsupportedChar
	ReasonNotOnByteBoundary
	ReasonWrongScheme
	ReasonOverflow
	ReasonHeaderArithmetic
	ReasonSizeUndefined
	ReasonIncomplete
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonUnsupportedChar:
		return "unsupported character for scheme"
	case ReasonNotOnByteBoundary:
		return "not on a clean byte boundary"
	case ReasonWrongScheme:
		return "wrong scheme for operation"
	case ReasonOverflow:
		return "output buffer overflow"
	case ReasonHeaderArithmetic:
		return "impossible Base 256 header state"
	case ReasonSizeUndefined:
		return "no symbol size fits the encoded length"
	case ReasonIncomplete:
		return "encoding finished without consuming all input"
	default:
		return "unknown"
	}
}

// Error reports a terminal Invalid or Fatal condition raised while
// encoding. Invalid means the input cannot be represented in the requested
// scheme; the caller may retry with a different scheme. Fatal means an
// internal contract was violated and is always a programmer bug.
type Error struct {
	Status Status
	Reason Reason
}

func (e *Error) Error() string {
	return fmt.Sprintf("datamatrix/encoder: %s: %s", e.Status, e.Reason)
}

// Stream carries the encoding state described in spec §3: an input cursor,
// an appendable output chain, the current scheme, per-scheme chain
// counters, and a terminal status. It is a plain value; all mutation goes
// through its methods so the invariants in the package doc stay enforced.
type Stream struct {
	input []byte
	next  int

	output *ByteList
	scheme Scheme

	chainWords  int // codeword bytes appended since entering scheme
	chainValues int // scheme-level values appended since entering scheme

	status  Status
	sizeIdx int
	reason  Reason
	lastErr error
}

// NewStream creates a Stream ready to encode input, starting in ASCII as
// required by spec §3.
func NewStream(input []byte) *Stream {
	return &Stream{
		input:   input,
		output:  NewByteList(maxDataCapacity),
		scheme:  SchemeASCII,
		status:  StatusEncoding,
		sizeIdx: SizeAuto,
	}
}

// Scheme returns the stream's current encodation scheme.
func (s *Stream) Scheme() Scheme { return s.scheme }

// Status returns the stream's current status.
func (s *Stream) Status() Status { return s.status }

// SizeIdx returns the resolved symbol size index. Only meaningful once
// Status is StatusComplete.
func (s *Stream) SizeIdx() int { return s.sizeIdx }

// Output returns the codewords written so far.
func (s *Stream) Output() []byte { return s.output.Bytes() }

// inputHasNext reports whether unconsumed input remains.
func (s *Stream) inputHasNext() bool { return s.next < len(s.input) }

// inputAdvanceNext consumes and returns the next input byte.
func (s *Stream) inputAdvanceNext() (byte, error) {
	if !s.inputHasNext() {
		return 0, s.markFatal(ReasonIncomplete)
	}
	v := s.input[s.next]
	s.next++
	return v, nil
}

// inputPeekNext returns the next input byte without consuming it.
func (s *Stream) inputPeekNext() (byte, error) {
	if !s.inputHasNext() {
		return 0, s.markFatal(ReasonIncomplete)
	}
	return s.input[s.next], nil
}

// inputAdvancePrev rolls the cursor back by one, undoing a previous
// consumption. Used only by the CTX partial-completion rollback.
func (s *Stream) inputAdvancePrev() {
	s.next--
}

// outputChainAppend appends a codeword byte to the output chain.
func (s *Stream) outputChainAppend(v byte) error {
	if err := s.output.Push(v); err != nil {
		return s.markFatal(ReasonOverflow)
	}
	s.chainWords++
	return nil
}

// outputChainRemoveLast pops the most recently appended codeword byte.
func (s *Stream) outputChainRemoveLast() (byte, error) {
	v, err := s.output.RemoveLast()
	if err != nil {
		return 0, s.markFatal(ReasonOverflow)
	}
	s.chainWords--
	return v, nil
}

// outputSet overwrites the codeword byte at absolute index i.
func (s *Stream) outputSet(i int, v byte) error {
	if err := s.output.Set(i, v); err != nil {
		return s.markFatal(ReasonHeaderArithmetic)
	}
	return nil
}

// outputChainInsert inserts a header byte at absolute index i without
// counting it as a scheme value.
func (s *Stream) outputChainInsert(i int, v byte) error {
	if err := s.output.InsertAt(i, v); err != nil {
		return s.markFatal(ReasonOverflow)
	}
	s.chainWords++
	return nil
}

// outputChainRemove deletes the header byte at absolute index i.
func (s *Stream) outputChainRemove(i int) error {
	if err := s.output.RemoveAt(i); err != nil {
		return s.markFatal(ReasonHeaderArithmetic)
	}
	s.chainWords--
	return nil
}

// resetChain zeroes both chain counters, as required whenever the current
// scheme changes (spec invariant 4).
func (s *Stream) resetChain() {
	s.chainWords = 0
	s.chainValues = 0
}

// markInvalid freezes the stream as Invalid: the input cannot be
// represented in the current scheme. The caller may retry with a
// different target scheme.
func (s *Stream) markInvalid(reason Reason) error {
	s.status = StatusInvalid
	s.reason = reason
	err := &Error{Status: StatusInvalid, Reason: reason}
	s.lastErr = err
	return err
}

// markFatal freezes the stream as Fatal: an internal contract was
// violated. Always a programmer bug, never user-driven.
func (s *Stream) markFatal(reason Reason) error {
	s.status = StatusFatal
	s.reason = reason
	err := &Error{Status: StatusFatal, Reason: reason}
	s.lastErr = err
	return err
}

// markComplete freezes the stream as Complete with the given resolved
// symbol size.
func (s *Stream) markComplete(sizeIdx int) {
	s.status = StatusComplete
	s.sizeIdx = sizeIdx
}

// checkScheme returns a Fatal error if the stream isn't in want; every
// scheme-specific encode function must only ever run while its scheme is
// current.
func (s *Stream) checkScheme(want Scheme) error {
	if s.scheme != want {
		return s.markFatal(ReasonWrongScheme)
	}
	return nil
}
