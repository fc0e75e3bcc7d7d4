package datamatrix

import zxinggo "github.com/go-dmtx/dmtx"

func init() {
	zxinggo.RegisterReader(zxinggo.FormatDataMatrix, func(opts *zxinggo.DecodeOptions) zxinggo.Reader {
		return NewReader()
	})
	zxinggo.RegisterWriter(zxinggo.FormatDataMatrix, func() zxinggo.Writer {
		return NewWriter()
	})
}
