// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// updateBase256ChainHeader keeps the Base 256 chain's one- or two-byte
// length header in sync with however many payload bytes have been written
// so far. The header grows to two bytes once the payload passes 249 bytes,
// and may shrink back to one if perfectSizeIdx shows the chain lands
// exactly on the symbol's last data word. Header bytes are not counted as
// scheme values, so inserting or removing one never touches chainValues.
func updateBase256ChainHeader(s *Stream, perfectSizeIdx int) error {
	headerIndex := len(s.output.Bytes()) - s.chainWords
	outputLength := s.chainValues
	headerByteCount := s.chainWords - s.chainValues

	switch {
	case headerByteCount == 0 && s.chainWords == 0:
		if err := s.outputChainInsert(headerIndex, 0); err != nil {
			return err
		}
		headerByteCount++
	case headerByteCount == 1 && outputLength > 249:
		if err := s.outputChainInsert(headerIndex, 0); err != nil {
			return err
		}
		headerByteCount++
	case headerByteCount == 2 && perfectSizeIdx != SizeAuto:
		if err := s.outputChainRemove(headerIndex); err != nil {
			return err
		}
		headerByteCount--
	}

	switch {
	case headerByteCount == 1 && perfectSizeIdx != SizeAuto:
		si := &symbols[perfectSizeIdx]
		if si.DataCapacity != len(s.output.Bytes()) {
			return s.markFatal(ReasonHeaderArithmetic)
		}
		headerValue0 := randomize255(0, headerIndex+1)
		return s.outputSet(headerIndex, headerValue0)
	case headerByteCount == 1 && perfectSizeIdx == SizeAuto:
		headerValue0 := randomize255(byte(outputLength), headerIndex+1)
		return s.outputSet(headerIndex, headerValue0)
	case headerByteCount == 2 && perfectSizeIdx == SizeAuto:
		headerValue0 := randomize255(byte(outputLength/250+249), headerIndex+1)
		if err := s.outputSet(headerIndex, headerValue0); err != nil {
			return err
		}
		headerValue1 := randomize255(byte(outputLength%250), headerIndex+2)
		return s.outputSet(headerIndex+1, headerValue1)
	default:
		return s.markFatal(ReasonHeaderArithmetic)
	}
}

// encodeValueBase256 appends one randomized payload byte and refreshes the
// length header to match.
func encodeValueBase256(s *Stream, value byte) error {
	if err := s.checkScheme(SchemeBase256); err != nil {
		return err
	}
	if err := s.outputChainAppend(randomize255(value, len(s.output.Bytes())+1)); err != nil {
		return err
	}
	s.chainValues++
	return updateBase256ChainHeader(s, SizeAuto)
}

func encodeNextChunkBase256(s *Stream) error {
	if !s.inputHasNext() {
		return nil
	}
	value, err := s.inputAdvanceNext()
	if err != nil {
		return err
	}
	return encodeValueBase256(s, value)
}

// completeIfDoneBase256 closes the symbol once input is exhausted,
// preferring the one-byte-header "encode to end of symbol" form when the
// chain happens to land exactly on the last data word.
func completeIfDoneBase256(s *Stream, requestedSizeIdx int) error {
	if s.inputHasNext() {
		return nil
	}

	headerByteCount := s.chainWords - s.chainValues
	if headerByteCount != 1 && headerByteCount != 2 {
		return s.markFatal(ReasonHeaderArithmetic)
	}

	if headerByteCount == 2 {
		outputLength := len(s.output.Bytes()) - 1
		if sizeIdx, ok := findSymbolSize(outputLength, requestedSizeIdx); ok {
			if remainingSymbolCapacity(outputLength, sizeIdx) == 0 {
				if err := updateBase256ChainHeader(s, sizeIdx); err != nil {
					return err
				}
				s.markComplete(sizeIdx)
				return nil
			}
		}
	}

	sizeIdx, ok := findSymbolSize(len(s.output.Bytes()), requestedSizeIdx)
	if !ok {
		return s.markInvalid(ReasonSizeUndefined)
	}
	if err := changeScheme(s, SchemeASCII, UnlatchImplicit); err != nil {
		return err
	}
	if err := padRemainingInASCII(s, sizeIdx); err != nil {
		return err
	}
	s.markComplete(sizeIdx)
	return nil
}
