package compress

// ZstdCompressor handles Zstandard archives, the default of current repo-add.
//
// Pure Go builds use klauspost/compress/zstd. Building with cgo and the gozstd tag switches
// to the libzstd binding from valyala/gozstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
