// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package datamatrix

import (
	"testing"

	"pgregory.net/rapid"

	zxinggo "github.com/go-dmtx/dmtx"
	"github.com/go-dmtx/dmtx/binarizer"
)

// TestRoundTripPreservesContents is the round-trip property from the
// encoding core's design: any printable-ASCII message, after being encoded
// into a symbol and decoded back, must produce exactly the original text.
func TestRoundTripPreservesContents(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 30).Draw(t, "len")
		b := make([]byte, n)
		for i := range b {
			b[i] = byte(rapid.IntRange(32, 126).Draw(t, "byte"))
		}
		contents := string(b)

		writer := NewWriter()
		matrix, err := writer.Encode(contents, zxinggo.FormatDataMatrix, 0, 0, nil)
		if err != nil {
			t.Fatalf("encode %q: %v", contents, err)
		}

		source := newBitMatrixLuminanceSource(matrix)
		bitmap := zxinggo.NewBinaryBitmap(binarizer.NewGlobalHistogram(source))

		reader := NewReader()
		result, err := reader.Decode(bitmap, &zxinggo.DecodeOptions{PureBarcode: true})
		if err != nil {
			t.Fatalf("decode %q: %v", contents, err)
		}

		if result.Text != contents {
			t.Fatalf("round-trip mismatch: got %q, want %q", result.Text, contents)
		}
	})
}
