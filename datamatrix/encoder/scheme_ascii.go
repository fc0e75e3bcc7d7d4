// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// encodeValueASCII appends a single ASCII codeword value.
func encodeValueASCII(s *Stream, value byte) error {
	if err := s.checkScheme(SchemeASCII); err != nil {
		return err
	}
	if err := s.outputChainAppend(value); err != nil {
		return err
	}
	s.chainValues++
	return nil
}

// encodeNextChunkASCII consumes one input chunk in ASCII: either a digit
// pair (2 chars -> 1 codeword), a plain char (<128, 1:1), or an extended
// char (>=128, upper-shift + data).
func encodeNextChunkASCII(s *Stream) error {
	if !s.inputHasNext() {
		return nil
	}

	v0, err := s.inputAdvanceNext()
	if err != nil {
		return err
	}

	var v1 byte
	v1set := false
	if s.inputHasNext() {
		v1, err = s.inputPeekNext()
		if err != nil {
			return err
		}
		v1set = true
	}

	if isDigit(v0) && v1set && isDigit(v1) {
		if _, err := s.inputAdvanceNext(); err != nil {
			return err
		}
		return encodeValueASCII(s, 10*(v0-'0')+(v1-'0')+valueASCIIDigitOffset)
	}

	if v0 < 128 {
		return encodeValueASCII(s, v0+1)
	}

	if err := encodeValueASCII(s, valueASCIIUpperShift); err != nil {
		return err
	}
	return encodeValueASCII(s, v0-127)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// completeIfDoneASCII closes the symbol out once the input is exhausted.
func completeIfDoneASCII(s *Stream, requestedSizeIdx int) error {
	if s.inputHasNext() {
		return nil
	}
	sizeIdx, ok := findSymbolSize(len(s.output.Bytes()), requestedSizeIdx)
	if !ok {
		return s.markInvalid(ReasonSizeUndefined)
	}
	if err := padRemainingInASCII(s, sizeIdx); err != nil {
		return err
	}
	s.markComplete(sizeIdx)
	return nil
}

// padRemainingInASCII fills the rest of the symbol with pad codewords. The
// first pad byte is literal 129; every subsequent one is randomized by
// position so that two symbols differing only in padding length still
// differ in content.
func padRemainingInASCII(s *Stream, sizeIdx int) error {
	if err := s.checkScheme(SchemeASCII); err != nil {
		return err
	}

	remaining := remainingSymbolCapacity(len(s.output.Bytes()), sizeIdx)

	if remaining > 0 {
		if err := s.outputChainAppend(valueASCIIPad); err != nil {
			return err
		}
		remaining--
	}

	for remaining > 0 {
		padValue := randomize253(valueASCIIPad, len(s.output.Bytes())+1)
		if err := s.outputChainAppend(padValue); err != nil {
			return err
		}
		remaining--
	}
	return nil
}

// encodeTmpRemainingInASCII speculatively finishes the remaining input in
// ASCII against a scratch buffer, without touching s. Used by the CTX and
// EDIFACT schemes to test end-of-symbol conditions that require knowing how
// many ASCII codewords the leftover input would need.
func encodeTmpRemainingInASCII(s *Stream, capacity int) ([]byte, bool) {
	tmp := &Stream{
		input:   s.input,
		next:    s.next,
		output:  NewByteList(capacity),
		scheme:  SchemeASCII,
		status:  StatusEncoding,
		sizeIdx: SizeAuto,
	}

	for tmp.output.HasCapacity() {
		if !tmp.inputHasNext() {
			break
		}
		if err := encodeNextChunkASCII(tmp); err != nil {
			return nil, false
		}
	}

	return tmp.output.Bytes(), tmp.status == StatusEncoding
}
