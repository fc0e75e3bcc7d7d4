// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// Codeword values fixed by ISO/IEC 16022. These must match bit-for-bit;
// any conforming decoder relies on them.
const (
	valueASCIIDigitOffset = 130 // digit-pair codeword = 10*(v0-'0') + (v1-'0') + this
	valueASCIIUpperShift  = 235
	valueASCIIPad         = 129

	latchC40     = 230
	latchBase256 = 231
	latchX12     = 238
	latchText    = 239
	latchEDIFACT = 240

	unlatchCTX     = 254
	unlatchEDIFACT = 0x1F // raw 6-bit value, written through the normal packer

	ctxShift1 = 0
	ctxShift2 = 1
	ctxShift3 = 2
)

// SizeAuto requests that the encoder pick the smallest symbol size that
// fits, rather than a caller-specified one.
const SizeAuto = -1

// maxDataCapacity bounds the largest possible output chain: the data
// capacity of the biggest ECC-200 symbol (144x144, two RS block sizes).
const maxDataCapacity = 1558
