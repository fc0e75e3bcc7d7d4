// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// candidateSchemes lists the six encodation schemes in the order the
// automatic picker tries them. ASCII is always a valid fallback, so it's
// listed first; C40 is tried before Text/X12 since text alternating case
// is more common in barcode payloads than pure upper/numeric runs.
var candidateSchemes = []Scheme{
	SchemeASCII,
	SchemeC40,
	SchemeText,
	SchemeX12,
	SchemeEDIFACT,
	SchemeBase256,
}

// EncodeSingleScheme runs the pull encoder against input committed to a
// single target scheme for its whole length (falling back to ASCII only at
// the mandatory end-of-symbol conditions each scheme defines). It returns
// the finished codeword sequence and the resolved symbol size index.
func EncodeSingleScheme(input []byte, targetScheme Scheme, requestedSizeIdx int) ([]byte, int, error) {
	s := NewStream(input)
	if err := encodeSingleScheme(s, targetScheme, requestedSizeIdx); err != nil {
		return nil, 0, err
	}
	return s.Output(), s.SizeIdx(), nil
}

// EncodeAuto tries every encodation scheme against input and returns the
// shortest valid result. This best-of-scheme search sits outside the
// encoding core by design: the core only knows how to run a single
// committed scheme to completion, so picking among them is the caller's
// job, not the state machine's.
func EncodeAuto(input []byte, requestedSizeIdx int) ([]byte, int, error) {
	if len(input) == 0 {
		return nil, 0, &Error{Status: StatusInvalid, Reason: ReasonIncomplete}
	}

	var bestOutput []byte
	var bestSizeIdx int
	var lastErr error
	found := false

	for _, scheme := range candidateSchemes {
		if scheme == SchemeX12 && !isX12Representable(input) {
			continue
		}
		if scheme == SchemeEDIFACT && !isEDIFACTRepresentable(input) {
			continue
		}

		output, sizeIdx, err := EncodeSingleScheme(input, scheme, requestedSizeIdx)
		if err != nil {
			lastErr = err
			continue
		}
		if !found || len(output) < len(bestOutput) {
			bestOutput = output
			bestSizeIdx = sizeIdx
			found = true
		}
	}

	if !found {
		if lastErr != nil {
			return nil, 0, lastErr
		}
		return nil, 0, &Error{Status: StatusInvalid, Reason: ReasonUnsupportedChar}
	}
	return bestOutput, bestSizeIdx, nil
}

// candidateSizeIndices returns the indices into symbols matching shape,
// ascending by data capacity. findSymbolSize itself stays shape-agnostic
// per the core's contract; shape preference is applied here by trying each
// allowed size explicitly, smallest first, until one fits.
func candidateSizeIndices(shape SymbolShapeHint) []int {
	type sized struct {
		idx      int
		capacity int
	}
	var sizedList []sized
	for i := range symbols {
		if shape == ShapeHintForceSquare && symbols[i].Rectangular {
			continue
		}
		if shape == ShapeHintForceRectangle && !symbols[i].Rectangular {
			continue
		}
		sizedList = append(sizedList, sized{i, symbols[i].DataCapacity})
	}
	for i := 1; i < len(sizedList); i++ {
		for j := i; j > 0 && sizedList[j].capacity < sizedList[j-1].capacity; j-- {
			sizedList[j], sizedList[j-1] = sizedList[j-1], sizedList[j]
		}
	}
	indices := make([]int, len(sizedList))
	for i, sz := range sizedList {
		indices[i] = sz.idx
	}
	return indices
}

// encodeAutoWithShape runs EncodeAuto against each shape-allowed size in
// ascending capacity order and returns the first that fits the input.
// requestedSizeIdx pins EncodeAuto to one explicit candidate at a time so
// shape preference never needs to reach inside the core.
func encodeAutoWithShape(input []byte, shape SymbolShapeHint) ([]byte, int, error) {
	var lastErr error
	for _, sizeIdx := range candidateSizeIndices(shape) {
		output, resolvedSizeIdx, err := EncodeAuto(input, sizeIdx)
		if err != nil {
			lastErr = err
			continue
		}
		return output, resolvedSizeIdx, nil
	}
	if lastErr != nil {
		return nil, 0, lastErr
	}
	return nil, 0, &Error{Status: StatusInvalid, Reason: ReasonSizeUndefined}
}

// isX12Representable reports whether every byte in input has an X12
// mapping. X12 has no upper-shift escape, so a single byte above 127
// disqualifies the whole message from this scheme.
func isX12Representable(input []byte) bool {
	for _, b := range input {
		if b > 127 {
			return false
		}
		switch {
		case b == 13, b == 42, b == 62, b == 32:
		case b >= 48 && b <= 57:
		case b >= 65 && b <= 90:
		default:
			return false
		}
	}
	return true
}

// isEDIFACTRepresentable reports whether every byte in input falls in
// EDIFACT's supported range of 31-94.
func isEDIFACTRepresentable(input []byte) bool {
	for _, b := range input {
		if b < 31 || b > 94 {
			return false
		}
	}
	return true
}
