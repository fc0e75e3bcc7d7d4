// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"testing"

	"pgregory.net/rapid"
)

// TestRandomize253StaysInRange checks the invariant the ASCII padder
// depends on: randomize253 never produces 0, and never exceeds 254,
// regardless of codeword value or position.
func TestRandomize253StaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := byte(rapid.IntRange(0, 255).Draw(t, "value"))
		position := rapid.IntRange(0, 10000).Draw(t, "position")

		got := randomize253(value, position)
		if got < 1 || got > 254 {
			t.Fatalf("randomize253(%d, %d) = %d, want in [1,254]", value, position, got)
		}
	})
}

// TestRandomize255StaysInRange is the Base 256 analogue of the above.
// randomize255 covers the whole byte range 0..255 (value 255 at position 0
// gives 0), so the check pins the result to the one value in that range
// that un-randomizes back to the input.
func TestRandomize255StaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := byte(rapid.IntRange(0, 255).Draw(t, "value"))
		position := rapid.IntRange(0, 10000).Draw(t, "position")

		got := randomize255(value, position)
		pseudoRandom := ((149 * position) % 255) + 1
		if back := (int(got) - pseudoRandom + 256) % 256; back != int(value) {
			t.Fatalf("randomize255(%d, %d) = %d, un-randomizes to %d, want %d", value, position, got, back, value)
		}
	})
}

// TestRandomizeIsDeterministic requires both randomizers to be pure
// functions of their inputs, which every scheme's header/padding logic
// relies on to recompute the same header bytes on every pass.
func TestRandomizeIsDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := byte(rapid.IntRange(0, 255).Draw(t, "value"))
		position := rapid.IntRange(0, 10000).Draw(t, "position")

		if randomize253(value, position) != randomize253(value, position) {
			t.Fatal("randomize253 is not deterministic")
		}
		if randomize255(value, position) != randomize255(value, position) {
			t.Fatal("randomize255 is not deterministic")
		}
	})
}

// asciiPrintableString draws a non-empty run of printable ASCII bytes,
// which every encodation scheme accepts.
func asciiPrintableString(t *rapid.T) []byte {
	n := rapid.IntRange(1, 40).Draw(t, "len")
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rapid.IntRange(32, 126).Draw(t, "byte"))
	}
	return b
}

// TestEncodeSingleSchemeASCIIFillsSymbolExactly checks the padding-fills-
// capacity property: ASCII encoding of any printable input always finishes with
// output length exactly equal to the resolved symbol's data capacity, no
// matter how many pad codewords that requires.
func TestEncodeSingleSchemeASCIIFillsSymbolExactly(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := asciiPrintableString(t)

		output, sizeIdx, err := EncodeSingleScheme(input, SchemeASCII, SizeAuto)
		if err != nil {
			t.Fatalf("encode %q: %v", input, err)
		}
		if len(output) != symbols[sizeIdx].DataCapacity {
			t.Fatalf("output length %d != symbol capacity %d", len(output), symbols[sizeIdx].DataCapacity)
		}
	})
}

// TestEncodeAutoNeverExceedsASCII is a length sanity property: the
// best-of-scheme search must never produce a longer result than plain
// ASCII, since ASCII is always a valid fallback candidate.
func TestEncodeAutoNeverExceedsASCII(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := asciiPrintableString(t)

		autoOutput, _, err := EncodeAuto(input, SizeAuto)
		if err != nil {
			t.Fatalf("EncodeAuto(%q): %v", input, err)
		}

		asciiOutput, _, err := EncodeSingleScheme(input, SchemeASCII, SizeAuto)
		if err != nil {
			t.Fatalf("EncodeSingleScheme(%q, ASCII): %v", input, err)
		}

		if len(autoOutput) > len(asciiOutput) {
			t.Fatalf("EncodeAuto produced %d codewords, longer than ASCII's %d", len(autoOutput), len(asciiOutput))
		}
	})
}
