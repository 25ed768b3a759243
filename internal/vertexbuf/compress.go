package vertexbuf

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Compress returns buf as a single zstd frame.
func Compress(buf []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("vertexbuf: zstd: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(buf, make([]byte, 0, len(buf)/2)), nil
}

// Decompress reverses Compress.
func Decompress(buf []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("vertexbuf: zstd: %w", err)
	}
	defer dec.Close()
	out, err := dec.DecodeAll(buf, nil)
	if err != nil {
		return nil, fmt.Errorf("vertexbuf: zstd: %w", err)
	}
	return out, nil
}
