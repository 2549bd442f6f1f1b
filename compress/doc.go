// Package compress provides the codecs used to read package sync database archives.
//
// A sync database (core.db, extra.db, ...) is a tar archive compressed with whatever
// repo-add was configured to use. This package decodes the formats a Go program can read
// without external tools:
//   - None: plain tar, passed through without copying
//   - Gzip: klauspost/compress/gzip
//   - Zstd: klauspost/compress/zstd, or libzstd through valyala/gozstd when built with
//     cgo and the gozstd tag
//   - LZ4: pierrec/lz4 frame format
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Whole-buffer decompression is deliberate: records parsed from the archive borrow
// substrings of one decompressed buffer.
//
// # Detection
//
// Detect inspects the leading magic bytes:
//
//	typ, err := compress.Detect(data)
//	codec, err := compress.GetCodec(typ)
//	tarball, err := codec.Decompress(data)
//
// DecompressAuto does the three steps at once. xz and bzip2 archives are recognized and
// rejected with errs.ErrUnsupportedCompression.
//
// # Thread Safety
//
// All codecs are stateless values backed by sync.Pool and safe for concurrent use.
package compress
