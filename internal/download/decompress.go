package download

import (
	"bytes"
	"fmt"

	"github.com/aryankumar/blox/internal/util"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// maxDecompressedSize bounds how far a compressed asset may expand
const maxDecompressedSize = 1 << 30

// zstdDecoder is reused across calls; zstd.Decoder is safe for concurrent use
var zstdDecoder *zstd.Decoder

func init() {
	var err error
	zstdDecoder, err = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxDecompressedSize))
	if err != nil {
		panic("download: zstd decoder initialization failed: " + err.Error())
	}
}

// decompress expands gzip or zstd content according to t
func decompress(data []byte, t FileType) ([]byte, error) {
	switch t {
	case typeGzip:
		return gunzip(data, maxDecompressedSize)

	case typeZstd:
		out, err := zstdDecoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return out, nil

	default:
		return data, nil
	}
}

// gunzip expands data, refusing output larger than limit
func gunzip(data []byte, limit int64) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	defer reader.Close()

	out, err := util.ReadAllLimit(reader, limit)
	if err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	return out, nil
}
