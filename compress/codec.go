package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arloliu/pkgtext/errs"
	"github.com/arloliu/pkgtext/format"
)

// Compressor compresses a whole archive in one call.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a whole archive in one call.
//
// Package databases are read into a single buffer so every record can borrow from it;
// decompressing in one call keeps that buffer contiguous.
//
// Thread Safety: implementations in this package are safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Error conditions:
	//   - Returns error if input data is corrupted or truncated
	//   - Returns error if data was compressed with another algorithm
	Decompress(data []byte) ([]byte, error)
}

// StreamDecompressor decompresses an archive incrementally.
//
// Callers that must bound the decompressed size read from the returned stream through a
// limit instead of decompressing the whole archive first.
type StreamDecompressor interface {
	// NewReader returns a stream of the decompressed content of r. Close releases pooled
	// state; it does not close r.
	NewReader(r io.Reader) (io.ReadCloser, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
	StreamDecompressor
}

// releaseReader is a decompressed stream whose Close hands pooled state back.
type releaseReader struct {
	io.Reader
	release func()
}

func (r *releaseReader) Close() error {
	if r.release != nil {
		r.release()
		r.release = nil
	}

	return nil
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Gzip, Zstd or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: ErrUnsupportedCompression for an unknown type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionGzip:
		return NewGzipCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: invalid %s compression: %s", errs.ErrUnsupportedCompression, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionGzip: NewGzipCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
	bzipMagic = []byte{'B', 'Z', 'h'}
)

// Detect identifies the compression of data from its leading magic bytes.
//
// Data without a known magic is reported as CompressionNone. xz and bzip2 archives, which
// pacman can produce but this package cannot read, return ErrUnsupportedCompression.
func Detect(data []byte) (format.CompressionType, error) {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return format.CompressionGzip, nil
	case bytes.HasPrefix(data, zstdMagic):
		return format.CompressionZstd, nil
	case bytes.HasPrefix(data, lz4Magic):
		return format.CompressionLZ4, nil
	case bytes.HasPrefix(data, xzMagic):
		return 0, fmt.Errorf("%w: xz", errs.ErrUnsupportedCompression)
	case bytes.HasPrefix(data, bzipMagic):
		return 0, fmt.Errorf("%w: bzip2", errs.ErrUnsupportedCompression)
	default:
		return format.CompressionNone, nil
	}
}

// DecompressAuto detects the compression of data and decompresses it.
//
// Returns:
//   - []byte: Decompressed data, data itself when it is not compressed
//   - format.CompressionType: The detected compression
//   - error: Detection or decompression error
func DecompressAuto(data []byte) ([]byte, format.CompressionType, error) {
	typ, err := Detect(data)
	if err != nil {
		return nil, 0, err
	}

	codec, err := GetCodec(typ)
	if err != nil {
		return nil, 0, err
	}

	out, err := codec.Decompress(data)
	if err != nil {
		return nil, typ, err
	}

	return out, typ, nil
}
