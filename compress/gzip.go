package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"
)

// gzipReaderPool pools gzip readers; Reset rearms a reader on new input without reallocating
// its inflate window.
var gzipReaderPool sync.Pool

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

// GzipCompressor handles gzip archives, the historical default of repo-add.
type GzipCompressor struct{}

var _ Codec = (*GzipCompressor)(nil)

// NewGzipCompressor creates a new gzip codec.
func NewGzipCompressor() GzipCompressor {
	return GzipCompressor{}
}

// Compress compresses the input data as a single gzip member.
func (c GzipCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, _ := gzipWriterPool.Get().(*gzip.Writer)
	defer gzipWriterPool.Put(w)
	w.Reset(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

func getGzipReader(src io.Reader) (*gzip.Reader, error) {
	if pooled, ok := gzipReaderPool.Get().(*gzip.Reader); ok {
		if err := pooled.Reset(src); err != nil {
			gzipReaderPool.Put(pooled)
			return nil, err
		}

		return pooled, nil
	}

	return gzip.NewReader(src)
}

// Decompress decompresses gzip data, including multi-member streams.
func (c GzipCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r, err := getGzipReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}
	defer gzipReaderPool.Put(r)

	out := bytes.NewBuffer(make([]byte, 0, len(data)*4))
	if _, err := io.Copy(out, r); err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}

	return out.Bytes(), nil
}

// NewReader returns a pooled gzip stream over r.
func (c GzipCompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	zr, err := getGzipReader(r)
	if err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}

	return &releaseReader{Reader: zr, release: func() { gzipReaderPool.Put(zr) }}, nil
}
