package format

type (
	RecordFormat    uint8
	CompressionType uint8
)

const (
	FormatDesc    RecordFormat = 0x1 // FormatDesc represents a flat %NAME% record.
	FormatSrcinfo RecordFormat = 0x2 // FormatSrcinfo represents a sectioned .SRCINFO record.

	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed archive.
	CompressionGzip CompressionType = 0x2 // CompressionGzip represents gzip compression.
	CompressionZstd CompressionType = 0x3 // CompressionZstd represents Zstandard compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 frame compression.
)

func (f RecordFormat) String() string {
	switch f {
	case FormatDesc:
		return "desc"
	case FormatSrcinfo:
		return "srcinfo"
	default:
		return "unknown"
	}
}

// ParseRecordFormat returns the format named s, or false when s is not a known name.
func ParseRecordFormat(s string) (RecordFormat, bool) {
	switch s {
	case "desc":
		return FormatDesc, true
	case "srcinfo", ".SRCINFO":
		return FormatSrcinfo, true
	default:
		return 0, false
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// ParseCompressionType returns the compression named s, or false when s is not a known name.
func ParseCompressionType(s string) (CompressionType, bool) {
	for _, c := range []CompressionType{CompressionNone, CompressionGzip, CompressionZstd, CompressionLZ4} {
		if c.String() == s {
			return c, true
		}
	}

	return 0, false
}
