package repodb

import (
	"fmt"
	"runtime"

	"github.com/arloliu/pkgtext/compress"
	"github.com/arloliu/pkgtext/errs"
	"github.com/arloliu/pkgtext/format"
	"github.com/arloliu/pkgtext/internal/options"
)

const (
	// DefaultMaxEntrySize bounds a single desc record.
	DefaultMaxEntrySize = 1024 * 1024 // 1MiB
	// DefaultMaxArchiveSize bounds the compressed archive read by Load.
	DefaultMaxArchiveSize = 1024 * 1024 * 512 // 512MiB
	// DefaultMaxUnpackedSize bounds the decompressed tar stream.
	DefaultMaxUnpackedSize = 1024 * 1024 * 1024 * 2 // 2GiB
)

// Config holds the settings of a database load.
type Config struct {
	compression    format.CompressionType // zero means detect
	maxEntrySize   int64
	maxArchiveSize int
	maxUnpacked    int64
	workers        int
}

func newConfig() *Config {
	return &Config{
		maxEntrySize:   DefaultMaxEntrySize,
		maxArchiveSize: DefaultMaxArchiveSize,
		maxUnpacked:    DefaultMaxUnpackedSize,
		workers:        runtime.GOMAXPROCS(0),
	}
}

// Option configures Load and LoadBytes.
type Option = options.Option[*Config]

// WithCompression forces the archive codec instead of detecting it from magic bytes.
func WithCompression(typ format.CompressionType) Option {
	return options.New(func(c *Config) error {
		if _, err := compress.GetCodec(typ); err != nil {
			return fmt.Errorf("%w: %w", errs.ErrInvalidOption, err)
		}
		c.compression = typ

		return nil
	})
}

// WithMaxEntrySize sets the largest desc record accepted, in bytes.
func WithMaxEntrySize(n int64) Option {
	return options.New(func(c *Config) error {
		if n <= 0 {
			return fmt.Errorf("%w: max entry size must be positive, got %d", errs.ErrInvalidOption, n)
		}
		c.maxEntrySize = n

		return nil
	})
}

// WithMaxArchiveSize sets the largest compressed archive Load and LoadBytes accept, in bytes.
// The decompressed size is bounded separately by WithMaxUnpackedSize.
func WithMaxArchiveSize(n int) Option {
	return options.New(func(c *Config) error {
		if n <= 0 {
			return fmt.Errorf("%w: max archive size must be positive, got %d", errs.ErrInvalidOption, n)
		}
		c.maxArchiveSize = n

		return nil
	})
}

// WithMaxUnpackedSize sets the largest decompressed tar stream accepted, in bytes.
// Decompression stops with ErrArchiveTooLarge as soon as the limit is crossed.
func WithMaxUnpackedSize(n int64) Option {
	return options.New(func(c *Config) error {
		if n <= 0 {
			return fmt.Errorf("%w: max unpacked size must be positive, got %d", errs.ErrInvalidOption, n)
		}
		c.maxUnpacked = n

		return nil
	})
}

// WithWorkers sets how many records ParseAll parses at once. The default is GOMAXPROCS.
func WithWorkers(n int) Option {
	return options.New(func(c *Config) error {
		if n <= 0 {
			return fmt.Errorf("%w: workers must be positive, got %d", errs.ErrInvalidOption, n)
		}
		c.workers = n

		return nil
	})
}
