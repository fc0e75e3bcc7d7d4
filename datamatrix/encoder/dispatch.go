// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// findSymbolSize resolves outputLength codewords to a symbol size index.
// If requestedSizeIdx is not SizeAuto, that exact size is used (and
// rejected if it's too small); otherwise the smallest symbol of either
// shape that can hold outputLength is chosen. Shape preference is handled
// by the caller retrying with different requestedSizeIdx values, not here.
func findSymbolSize(outputLength, requestedSizeIdx int) (int, bool) {
	if requestedSizeIdx != SizeAuto {
		if requestedSizeIdx < 0 || requestedSizeIdx >= len(symbols) {
			return 0, false
		}
		if symbols[requestedSizeIdx].DataCapacity < outputLength {
			return 0, false
		}
		return requestedSizeIdx, true
	}

	best := -1
	for i := range symbols {
		if symbols[i].DataCapacity < outputLength {
			continue
		}
		if best == -1 || symbols[i].DataCapacity < symbols[best].DataCapacity {
			best = i
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// remainingSymbolCapacity returns how many more data codewords sizeIdx has
// room for beyond outputLength.
func remainingSymbolCapacity(outputLength, sizeIdx int) int {
	return symbols[sizeIdx].DataCapacity - outputLength
}

// encodeNextChunk switches the stream into targetScheme if necessary, then
// delegates to that scheme's chunk encoder and, while the stream is still
// encoding, to that scheme's end-of-symbol check, which may pad and complete
// the symbol.
func encodeNextChunk(s *Stream, targetScheme Scheme, requestedSizeIdx int) error {
	if s.scheme != targetScheme {
		if err := changeScheme(s, targetScheme, UnlatchExplicit); err != nil {
			return err
		}
		if err := s.checkScheme(targetScheme); err != nil {
			return err
		}
	}

	switch s.scheme {
	case SchemeASCII:
		if err := encodeNextChunkASCII(s); err != nil {
			return err
		}
		if s.status != StatusEncoding {
			return nil
		}
		return completeIfDoneASCII(s, requestedSizeIdx)
	case SchemeC40, SchemeText, SchemeX12:
		if err := encodeNextChunkCTX(s, requestedSizeIdx); err != nil {
			return err
		}
		if s.status != StatusEncoding {
			return nil
		}
		return completeIfDoneCTX(s, requestedSizeIdx)
	case SchemeEDIFACT:
		if err := encodeNextChunkEdifact(s); err != nil {
			return err
		}
		if s.status != StatusEncoding {
			return nil
		}
		return completeIfDoneEdifact(s, requestedSizeIdx)
	case SchemeBase256:
		if err := encodeNextChunkBase256(s); err != nil {
			return err
		}
		if s.status != StatusEncoding {
			return nil
		}
		return completeIfDoneBase256(s, requestedSizeIdx)
	default:
		return s.markFatal(ReasonWrongScheme)
	}
}

// encodeSingleScheme drives a Stream to completion entirely in one target
// scheme (switching to it immediately, then staying unless an end-of-symbol
// condition forces an ASCII tail). s must start fresh, in ASCII.
func encodeSingleScheme(s *Stream, targetScheme Scheme, requestedSizeIdx int) error {
	if s.scheme != SchemeASCII {
		return s.markFatal(ReasonWrongScheme)
	}

	for s.status == StatusEncoding {
		if err := encodeNextChunk(s, targetScheme, requestedSizeIdx); err != nil {
			return err
		}
	}

	if s.status != StatusComplete || s.inputHasNext() {
		if s.lastErr != nil {
			return s.lastErr
		}
		return s.markInvalid(ReasonIncomplete)
	}
	return nil
}
