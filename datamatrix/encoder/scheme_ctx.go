// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// pushCTXValues expands one input byte into its C40/Text/X12 values,
// appending them to list. Extended ASCII (>127) is represented as an
// upper-shift (Shift2, 30) followed by the base value's own expansion.
func pushCTXValues(list *ByteList, inputValue int, scheme Scheme) error {
	if inputValue > 127 {
		if scheme == SchemeX12 {
			return &Error{Status: StatusInvalid, Reason: ReasonUnsupportedChar}
		}
		if err := list.Push(ctxShift2); err != nil {
			return err
		}
		if err := list.Push(30); err != nil {
			return err
		}
		inputValue -= 128
	}

	push2 := func(v byte) error { return list.Push(v) }
	pushShift := func(shift, v byte) error {
		if err := push2(shift); err != nil {
			return err
		}
		return push2(v)
	}

	v := inputValue

	if scheme == SchemeX12 {
		switch {
		case v == 13:
			return push2(0)
		case v == 42:
			return push2(1)
		case v == 62:
			return push2(2)
		case v == 32:
			return push2(3)
		case v >= 48 && v <= 57:
			return push2(byte(v - 44))
		case v >= 65 && v <= 90:
			return push2(byte(v - 51))
		default:
			return &Error{Status: StatusInvalid, Reason: ReasonUnsupportedChar}
		}
	}

	// C40 or Text
	switch {
	case v <= 31:
		return pushShift(ctxShift1, byte(v))
	case v == 32:
		return push2(3)
	case v <= 47:
		return pushShift(ctxShift2, byte(v-33))
	case v <= 57:
		return push2(byte(v - 44))
	case v <= 64:
		return pushShift(ctxShift2, byte(v-43))
	case v <= 90 && scheme == SchemeC40:
		return push2(byte(v - 51))
	case v <= 90 && scheme == SchemeText:
		return pushShift(ctxShift3, byte(v-64))
	case v <= 95:
		return pushShift(ctxShift2, byte(v-69))
	case v == 96 && scheme == SchemeText:
		return pushShift(ctxShift3, 0)
	case v <= 122 && scheme == SchemeText:
		return push2(byte(v - 83))
	case v <= 127:
		return pushShift(ctxShift3, byte(v-96))
	default:
		return &Error{Status: StatusInvalid, Reason: ReasonUnsupportedChar}
	}
}

// encodeValuesCTX packs exactly 3 pending values into 2 codewords.
func encodeValuesCTX(s *Stream, values *ByteList) error {
	switch s.scheme {
	case SchemeC40, SchemeText, SchemeX12:
	default:
		return s.markFatal(ReasonWrongScheme)
	}
	if values.Len() != 3 {
		return s.markFatal(ReasonOverflow)
	}

	pairValue := 1600*int(values.Get(0)) + 40*int(values.Get(1)) + int(values.Get(2)) + 1
	cw0 := byte(pairValue / 256)
	cw1 := byte(pairValue % 256)

	if err := s.outputChainAppend(cw0); err != nil {
		return err
	}
	if err := s.outputChainAppend(cw1); err != nil {
		return err
	}
	s.chainValues += 3
	return nil
}

// encodeUnlatchCTX writes the single-codeword unlatch back to ASCII.
func encodeUnlatchCTX(s *Stream) error {
	switch s.scheme {
	case SchemeC40, SchemeText, SchemeX12:
	default:
		return s.markFatal(ReasonWrongScheme)
	}
	if s.chainValues%3 != 0 {
		return s.markInvalid(ReasonNotOnByteBoundary)
	}
	if err := s.outputChainAppend(unlatchCTX); err != nil {
		return err
	}
	s.chainValues++
	return nil
}

// encodeNextChunkCTX consumes input bytes, expanding each into its
// scheme values, and flushes complete triplets as it goes. If input runs
// out with 1 or 2 leftover values it hands off to the end-of-symbol
// resolver instead of blocking on a full triplet forever.
func encodeNextChunkCTX(s *Stream, requestedSizeIdx int) error {
	values := NewByteList(4)

	for s.inputHasNext() {
		inputValue, err := s.inputAdvanceNext()
		if err != nil {
			return err
		}
		if err := pushCTXValues(values, int(inputValue), s.scheme); err != nil {
			if dmtxErr, ok := err.(*Error); ok {
				return s.markInvalid(dmtxErr.Reason)
			}
			return err
		}

		for values.Len() >= 3 {
			triplet := NewByteList(3)
			for i := 0; i < 3; i++ {
				if err := triplet.Push(values.Get(i)); err != nil {
					return err
				}
			}
			if err := encodeValuesCTX(s, triplet); err != nil {
				return err
			}
			if err := values.RemoveFirstN(3); err != nil {
				return err
			}
		}

		if values.Len() == 0 {
			break
		}
	}

	if !s.inputHasNext() && values.Len() > 0 {
		return completeIfDonePartialCTX(s, values, requestedSizeIdx)
	}
	return nil
}

// completeIfDoneCTX closes the symbol once it lands on a clean triplet
// boundary with no input left: directly on a perfect fit, otherwise by
// unlatching to ASCII and padding the rest of the symbol.
func completeIfDoneCTX(s *Stream, requestedSizeIdx int) error {
	sizeIdx, ok := findSymbolSize(len(s.output.Bytes()), requestedSizeIdx)
	if !ok {
		return s.markInvalid(ReasonSizeUndefined)
	}
	remaining := remainingSymbolCapacity(len(s.output.Bytes()), sizeIdx)

	if !s.inputHasNext() {
		if remaining == 0 {
			s.markComplete(sizeIdx)
		} else {
			if err := changeScheme(s, SchemeASCII, UnlatchExplicit); err != nil {
				return err
			}
			sizeIdx, ok = findSymbolSize(len(s.output.Bytes()), requestedSizeIdx)
			if !ok {
				return s.markInvalid(ReasonSizeUndefined)
			}
			if err := padRemainingInASCII(s, sizeIdx); err != nil {
				return err
			}
			s.markComplete(sizeIdx)
		}
	}
	return nil
}

// completeIfDonePartialCTX resolves the three possible states of 1 or 2
// leftover C40/Text/X12 values once input is exhausted:
//
//	(a) 1 value  left  -> 1 data value.  Handled by the unlatch+pad path below.
//	(b) 2 values left, symbol has room for exactly 2 more -> pad with Shift1
//	    and encode the final triplet directly (no ASCII fallback needed).
//	(c)/(d) 2 values left but no exact fit -> roll back and finish in ASCII.
//
// Disambiguating the rollback in (c)/(d) requires knowing whether the
// leftover values came from one shift-expanded input byte or two plain
// ones: re-expanding the single most recently consumed byte in isolation
// reproduces exactly that byte's value count, so comparing it against 1
// tells them apart without needing to touch the scheme's packed output.
//
// Once the rollback amount is settled, this function never hands control
// back to the driver still StatusEncoding: the caller (encodeSingleScheme)
// always re-requests the original target scheme, so any return here that
// leaves the stream mid-chunk with the input cursor back where it already
// was just repeats this same call forever. Every path below finishes the
// symbol itself, in ASCII, before returning.
func completeIfDonePartialCTX(s *Stream, values *ByteList, requestedSizeIdx int) error {
	switch s.scheme {
	case SchemeC40, SchemeText, SchemeX12:
	default:
		return s.markFatal(ReasonWrongScheme)
	}
	if values.Len() != 1 && values.Len() != 2 {
		return s.markFatal(ReasonOverflow)
	}

	sizeIdx, ok := findSymbolSize(len(s.output.Bytes()), requestedSizeIdx)
	if !ok {
		return s.markInvalid(ReasonSizeUndefined)
	}
	remaining := remainingSymbolCapacity(len(s.output.Bytes()), sizeIdx)

	if values.Len() == 2 && remaining == 2 {
		// Condition (b): pad the final value with Shift1 and write it out.
		// Both leftover values are still pending (neither packed into a
		// codeword yet), so this never strands a shift in prior output.
		if err := values.Push(ctxShift1); err != nil {
			return err
		}
		if err := encodeValuesCTX(s, values); err != nil {
			return err
		}
		s.markComplete(sizeIdx)
		return nil
	}

	// Conditions (c)/(d): roll back the consumed input byte(s) and finish
	// in ASCII. Start by rolling back one byte and re-expanding it alone to
	// see how many values it produced.
	s.inputAdvancePrev()
	lastByte, err := s.inputPeekNext()
	if err != nil {
		return err
	}
	scratch := NewByteList(4)
	if err := pushCTXValues(scratch, int(lastByte), s.scheme); err != nil {
		if dmtxErr, ok := err.(*Error); ok {
			return s.markInvalid(dmtxErr.Reason)
		}
		return err
	}

	// A single leftover value whose byte expanded to more than one value
	// (a shift pair, or an upper-shift escape) means the shift half of that
	// pair already went out as the last value of the previous triplet. That
	// committed shift has no following CTX value anymore, so it must not be
	// left for an implicit unlatch to paper over: force an explicit unlatch
	// below rather than taking condition (d).
	strandedShift := values.Len() == 1 && scratch.Len() != 1

	if values.Len() == 2 && scratch.Len() <= 1 {
		// The 2 leftover values came from two distinct plain-value bytes;
		// roll back the second one too.
		s.inputAdvancePrev()
	}

	asciiTmp, _ := encodeTmpRemainingInASCII(s, 8)

	if !strandedShift && len(asciiTmp) == 1 && remaining == 1 {
		// Condition (d): implicit unlatch, single trailing ASCII value.
		if err := changeScheme(s, SchemeASCII, UnlatchImplicit); err != nil {
			return err
		}
	} else {
		// Condition (c): explicit unlatch, continue encoding in ASCII.
		if err := changeScheme(s, SchemeASCII, UnlatchExplicit); err != nil {
			return err
		}
	}

	for _, v := range asciiTmp {
		if err := encodeValueASCII(s, v); err != nil {
			return err
		}
	}
	s.next = len(s.input)

	// Re-resolve the symbol size over the real final length rather than the
	// one computed before the unlatch and ASCII tail were written: with
	// requestedSizeIdx == SizeAuto this grows into a larger symbol if the
	// tail didn't fit the original candidate; with a size pinned by the
	// shape search this correctly fails as SizeUndefined instead of looping.
	sizeIdx, ok = findSymbolSize(len(s.output.Bytes()), requestedSizeIdx)
	if !ok {
		return s.markInvalid(ReasonSizeUndefined)
	}
	if err := padRemainingInASCII(s, sizeIdx); err != nil {
		return err
	}
	s.markComplete(sizeIdx)
	return nil
}
