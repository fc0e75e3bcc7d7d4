// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// encodeValueEdifact packs one 6-bit EDIFACT value into the output chain.
// Four values fill three codeword bytes; the packing straddles byte
// boundaries, so every value after the first in a group of four rewrites
// the previously appended byte before appending a new one.
func encodeValueEdifact(s *Stream, value byte) error {
	if err := s.checkScheme(SchemeEDIFACT); err != nil {
		return err
	}
	if value < 31 || value > 94 {
		return s.markInvalid(ReasonUnsupportedChar)
	}

	edifactValue := (value & 0x3f) << 2

	switch s.chainValues % 4 {
	case 0:
		if err := s.outputChainAppend(edifactValue); err != nil {
			return err
		}
	case 1:
		prev, err := s.outputChainRemoveLast()
		if err != nil {
			return err
		}
		if err := s.outputChainAppend(prev | (edifactValue >> 6)); err != nil {
			return err
		}
		if err := s.outputChainAppend(edifactValue << 2); err != nil {
			return err
		}
	case 2:
		prev, err := s.outputChainRemoveLast()
		if err != nil {
			return err
		}
		if err := s.outputChainAppend(prev | (edifactValue >> 4)); err != nil {
			return err
		}
		if err := s.outputChainAppend(edifactValue << 4); err != nil {
			return err
		}
	case 3:
		prev, err := s.outputChainRemoveLast()
		if err != nil {
			return err
		}
		if err := s.outputChainAppend(prev | (edifactValue >> 2)); err != nil {
			return err
		}
	}

	s.chainValues++
	return nil
}

func encodeNextChunkEdifact(s *Stream) error {
	if !s.inputHasNext() {
		return nil
	}
	value, err := s.inputAdvanceNext()
	if err != nil {
		return err
	}
	return encodeValueEdifact(s, value)
}

// completeIfDoneEdifact handles the six published end-of-symbol conditions
// for EDIFACT: with no input left it either finishes exactly on a byte
// boundary or unlatches and pads in ASCII; with input remaining it probes
// whether the tail fits in 1-2 trailing ASCII codewords without an
// explicit unlatch.
func completeIfDoneEdifact(s *Stream, requestedSizeIdx int) error {
	cleanBoundary := s.chainValues%4 == 0

	sizeIdx, ok := findSymbolSize(len(s.output.Bytes()), requestedSizeIdx)
	if !ok {
		return s.markInvalid(ReasonSizeUndefined)
	}
	remaining := remainingSymbolCapacity(len(s.output.Bytes()), sizeIdx)

	if !s.inputHasNext() {
		if !cleanBoundary || remaining > 0 {
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
		}
		s.markComplete(sizeIdx)
		return nil
	}

	asciiTmp, fits := encodeTmpRemainingInASCII(s, 3)
	if !fits || len(asciiTmp) > remaining {
		return nil
	}

	if cleanBoundary && (len(asciiTmp) == 1 || len(asciiTmp) == 2) {
		if err := changeScheme(s, SchemeASCII, UnlatchImplicit); err != nil {
			return err
		}
		for _, v := range asciiTmp {
			if err := encodeValueASCII(s, v); err != nil {
				return err
			}
		}
		s.next = len(s.input)

		sizeIdx, ok = findSymbolSize(len(s.output.Bytes()), requestedSizeIdx)
		if !ok {
			return s.markInvalid(ReasonSizeUndefined)
		}
		if err := padRemainingInASCII(s, sizeIdx); err != nil {
			return err
		}
		s.markComplete(sizeIdx)
	}
	return nil
}
