// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package datamatrix

import (
	"fmt"

	zxinggo "github.com/go-dmtx/dmtx"
	"github.com/go-dmtx/dmtx/bitutil"
	"github.com/go-dmtx/dmtx/datamatrix/encoder"
)

const defaultQuietZoneSize = 1

// Writer encodes Data Matrix symbols.
type Writer struct{}

// NewWriter creates a new Data Matrix Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Encode encodes the given contents into a Data Matrix ECC-200 BitMatrix.
// width and height, when positive, pad or reject the result to fit the
// requested dimensions; pass 0, 0 to take the symbol's natural size.
func (w *Writer) Encode(contents string, format zxinggo.Format, width, height int, opts *zxinggo.EncodeOptions) (*bitutil.BitMatrix, error) {
	if contents == "" {
		return nil, fmt.Errorf("datamatrix: found empty contents")
	}
	if format != zxinggo.FormatDataMatrix {
		return nil, fmt.Errorf("datamatrix: can only encode DATA_MATRIX, but got %s", format)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("datamatrix: requested dimensions are too small: %dx%d", width, height)
	}

	shape := encoder.ShapeHintForceNone
	quietZone := defaultQuietZoneSize
	if opts != nil {
		if opts.Margin != nil {
			quietZone = *opts.Margin
		}
		switch opts.DataMatrixShape {
		case "":
		case "square":
			shape = encoder.ShapeHintForceSquare
		case "rect":
			shape = encoder.ShapeHintForceRectangle
		default:
			return nil, fmt.Errorf("datamatrix: unknown shape hint: %s", opts.DataMatrixShape)
		}
	}

	symbol, err := encoder.EncodeWithShape(contents, shape)
	if err != nil {
		return nil, fmt.Errorf("datamatrix: %w", err)
	}

	return renderWithQuietZone(symbol, quietZone, width, height)
}

// renderWithQuietZone pads symbol with a uniform quiet zone and, if width
// and height are both positive, scales the result to exactly fit them.
func renderWithQuietZone(symbol *bitutil.BitMatrix, quietZone, width, height int) (*bitutil.BitMatrix, error) {
	symWidth := symbol.Width()
	symHeight := symbol.Height()

	paddedWidth := symWidth + 2*quietZone
	paddedHeight := symHeight + 2*quietZone

	outWidth, outHeight := paddedWidth, paddedHeight
	scaleX, scaleY := 1, 1
	if width > 0 && height > 0 {
		if width < paddedWidth || height < paddedHeight {
			scaleX = 1
			scaleY = 1
		} else {
			scaleX = width / paddedWidth
			scaleY = height / paddedHeight
			if scaleX < 1 {
				scaleX = 1
			}
			if scaleY < 1 {
				scaleY = 1
			}
		}
		outWidth = paddedWidth * scaleX
		outHeight = paddedHeight * scaleY
	}

	out := bitutil.NewBitMatrixWithSize(outWidth, outHeight)
	for y := 0; y < symHeight; y++ {
		for x := 0; x < symWidth; x++ {
			if !symbol.Get(x, y) {
				continue
			}
			for sy := 0; sy < scaleY; sy++ {
				for sx := 0; sx < scaleX; sx++ {
					out.Set((x+quietZone)*scaleX+sx, (y+quietZone)*scaleY+sy)
				}
			}
		}
	}
	return out, nil
}
