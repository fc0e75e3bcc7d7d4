// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSingleSchemeASCIIDigitPairs(t *testing.T) {
	output, sizeIdx, err := EncodeSingleScheme([]byte("123456"), SchemeASCII, SizeAuto)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(output), 3)
	assert.Equal(t, []byte{142, 164, 186}, output[:3])
	assert.Equal(t, symbols[sizeIdx].DataCapacity, len(output))
}

func TestEncodeSingleSchemeASCIISingleChar(t *testing.T) {
	output, _, err := EncodeSingleScheme([]byte("A"), SchemeASCII, SizeAuto)
	require.NoError(t, err)
	require.NotEmpty(t, output)
	assert.Equal(t, byte(66), output[0])
}

func TestEncodeSingleSchemeASCIIExtended(t *testing.T) {
	output, _, err := EncodeSingleScheme([]byte{0xC1}, SchemeASCII, SizeAuto)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(output), 2)
	assert.Equal(t, []byte{valueASCIIUpperShift, 0xC1 - 127}, output[:2])
}

func TestEncodeSingleSchemeC40Triplet(t *testing.T) {
	output, _, err := EncodeSingleScheme([]byte("AIMAIM"), SchemeC40, SizeAuto)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(output), 5)
	assert.Equal(t, byte(latchC40), output[0])
	assert.Equal(t, []byte{91, 11, 91, 11}, output[1:5])
}

func TestEncodeSingleSchemeEDIFACTRejectsOutOfRangeChar(t *testing.T) {
	// byte value 30 is below EDIFACT's supported range of [31,94].
	_, _, err := EncodeSingleScheme([]byte{30, 'Q'}, SchemeEDIFACT, SizeAuto)
	require.Error(t, err)
	dmtxErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, StatusInvalid, dmtxErr.Status)
	assert.Equal(t, ReasonUnsupportedChar, dmtxErr.Reason)
}

func TestEncodeSingleSchemeEDIFACTPacksSixBitValues(t *testing.T) {
	// '0'=48, 'Q'=81, 'A'=65, all within [31,94]. Their 6-bit values 48, 17
	// and 1, followed by the unlatch value 31, pack into 0xC1 0x10 0x5F.
	output, _, err := EncodeSingleScheme([]byte("0QA"), SchemeEDIFACT, SizeAuto)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(output), 4)
	assert.Equal(t, byte(latchEDIFACT), output[0])
	assert.Equal(t, []byte{0xC1, 0x10, 0x5F}, output[1:4])
}

func TestEncodeSingleSchemeBase256(t *testing.T) {
	output, sizeIdx, err := EncodeSingleScheme([]byte{0x00, 0x01, 0x02}, SchemeBase256, SizeAuto)
	require.NoError(t, err)
	require.NotEmpty(t, output)
	assert.Equal(t, byte(latchBase256), output[0])
	assert.Equal(t, symbols[sizeIdx].DataCapacity, len(output))
}

func TestEncodeSingleSchemeX12RejectsExtendedASCII(t *testing.T) {
	_, _, err := EncodeSingleScheme([]byte{0xC1}, SchemeX12, SizeAuto)
	require.Error(t, err)
	dmtxErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, StatusInvalid, dmtxErr.Status)
	assert.Equal(t, ReasonUnsupportedChar, dmtxErr.Reason)
}

func TestEncodeAutoPicksShortestEncoding(t *testing.T) {
	output, _, err := EncodeAuto([]byte("AIMAIM"), SizeAuto)
	require.NoError(t, err)
	require.NotEmpty(t, output)

	asciiOutput, _, err := EncodeSingleScheme([]byte("AIMAIM"), SchemeASCII, SizeAuto)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(output), len(asciiOutput))
}

func TestEncodeAutoRejectsEmptyInput(t *testing.T) {
	_, _, err := EncodeAuto(nil, SizeAuto)
	require.Error(t, err)
}

func TestFindSymbolSizeRespectsExplicitRequest(t *testing.T) {
	sizeIdx, ok := findSymbolSize(3, 0)
	require.True(t, ok)
	assert.Equal(t, 0, sizeIdx)

	_, ok = findSymbolSize(10, 0)
	assert.False(t, ok)
}

func TestFindSymbolSizeAutoPicksSmallest(t *testing.T) {
	sizeIdx, ok := findSymbolSize(4, SizeAuto)
	require.True(t, ok)
	assert.GreaterOrEqual(t, symbols[sizeIdx].DataCapacity, 4)
	for i := range symbols {
		if symbols[i].DataCapacity >= 4 {
			assert.LessOrEqual(t, symbols[sizeIdx].DataCapacity, symbols[i].DataCapacity)
		}
	}
}
