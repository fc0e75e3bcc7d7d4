package zxinggo

import "github.com/go-dmtx/dmtx/bitutil"

// EncodeOptions configures barcode encoding behavior.
type EncodeOptions struct {
	// ErrorCorrection specifies the error correction level (format-specific;
	// Data Matrix ignores it since ECC-200's level is fixed by symbol size).
	ErrorCorrection string

	// CharacterSet specifies the character set to use when encoding.
	CharacterSet string

	// Margin specifies the margin (quiet zone) in modules around the barcode.
	Margin *int

	// GS1Format encodes in GS1 format.
	GS1Format bool

	// DataMatrixShape constrains Data Matrix symbols to "square" or "rect".
	// Empty means either shape is acceptable.
	DataMatrixShape string
}

// Writer encodes data into a barcode.
type Writer interface {
	// Encode encodes the given contents into a barcode.
	Encode(contents string, format Format, width, height int, opts *EncodeOptions) (*bitutil.BitMatrix, error)
}
