package repodb

import (
	"archive/tar"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"path"
	"strings"

	"github.com/arloliu/pkgtext/compress"
	"github.com/arloliu/pkgtext/desc"
	"github.com/arloliu/pkgtext/errs"
	"github.com/arloliu/pkgtext/format"
	"github.com/arloliu/pkgtext/internal/collision"
	"github.com/arloliu/pkgtext/internal/hash"
	"github.com/arloliu/pkgtext/internal/options"
	"github.com/arloliu/pkgtext/internal/pool"
	"github.com/arloliu/pkgtext/value"
	"golang.org/x/sync/errgroup"
)

const descEntryName = "desc"

// Entry is one package of a sync database.
type Entry struct {
	// Dir is the archive directory of the package, usually "name-version".
	Dir string
	// Name is the %NAME% of the record.
	Name value.Name
	// Desc is the desc record text, a substring of the database's shared text.
	Desc string
}

// Memo returns a lazily scanning querier over the record.
func (e Entry) Memo() *desc.Memo {
	return desc.NewMemo(e.Desc)
}

// Parse parses the record eagerly with the default issue handler.
func (e Entry) Parse() (*desc.Parsed, error) {
	return desc.Parse(e.Desc)
}

// DB is a loaded sync database. It is immutable and safe for concurrent use.
type DB struct {
	text        string
	entries     []Entry
	index       *collision.Tracker
	compression format.CompressionType
	workers     int
}

// Load reads a sync database archive from r.
//
// Parameters:
//   - r: Archive stream, compressed or plain tar
//   - opts: Load options
//
// Returns:
//   - *DB: The loaded database
//   - error: Read, decompression, archive or index error
func Load(r io.Reader, opts ...Option) (*DB, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	buf := pool.GetArchiveBuffer()
	defer pool.PutArchiveBuffer(buf)

	if _, err := buf.Fill(r, cfg.maxArchiveSize); err != nil {
		if errors.Is(err, pool.ErrTooLarge) {
			return nil, fmt.Errorf("%w: more than %d bytes", errs.ErrArchiveTooLarge, cfg.maxArchiveSize)
		}

		return nil, fmt.Errorf("read database: %w", err)
	}

	return load(buf.Bytes(), cfg)
}

// LoadBytes reads a sync database archive held in memory.
//
// The returned DB does not reference data.
func LoadBytes(data []byte, opts ...Option) (*DB, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if len(data) > cfg.maxArchiveSize {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrArchiveTooLarge, len(data))
	}

	return load(data, cfg)
}

type span struct {
	dir        string
	start, end int
}

func load(data []byte, cfg *Config) (*DB, error) {
	typ := cfg.compression
	if typ == 0 {
		detected, err := compress.Detect(data)
		if err != nil {
			return nil, err
		}
		typ = detected
	}

	codec, err := compress.GetCodec(typ)
	if err != nil {
		return nil, err
	}

	stream, err := codec.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decompress %s database: %w", errs.ErrInvalidArchive, typ, err)
	}
	defer stream.Close()

	// records are copied into one builder while the tar streams past, so the decompressed
	// archive is never held in memory
	var sb strings.Builder
	sb.Grow(len(data))

	var spans []span
	tr := tar.NewReader(&limitedReader{r: stream, n: cfg.maxUnpacked})
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, archiveError(typ, err)
		}

		if !hdr.FileInfo().Mode().IsRegular() || path.Base(hdr.Name) != descEntryName {
			continue
		}
		dir := path.Base(path.Dir(path.Clean(hdr.Name)))
		if dir == "." || dir == "/" {
			continue
		}
		if hdr.Size > cfg.maxEntrySize {
			return nil, fmt.Errorf("%w: %s is %d bytes", errs.ErrEntryTooLarge, hdr.Name, hdr.Size)
		}

		start := sb.Len()
		if _, err := io.CopyN(&sb, tr, hdr.Size); err != nil {
			return nil, fmt.Errorf("read %s: %w", hdr.Name, archiveError(typ, err))
		}
		spans = append(spans, span{dir: dir, start: start, end: sb.Len()})
	}

	db := &DB{
		text:        sb.String(),
		entries:     make([]Entry, 0, len(spans)),
		index:       collision.NewTracker(len(spans)),
		compression: typ,
		workers:     cfg.workers,
	}

	for _, s := range spans {
		text := db.text[s.start:s.end]
		name, _ := desc.NewForgetful(text).Lookup(desc.Name)
		if err := db.index.Track(name, hash.ID(name), len(db.entries)); err != nil {
			return nil, fmt.Errorf("index %s: %w", s.dir, err)
		}
		db.entries = append(db.entries, Entry{Dir: s.dir, Name: value.Name(name), Desc: text})
	}

	return db, nil
}

// archiveError classifies a failure of the tar walk. Size limit errors pass through; the
// rest are corrupt input, either in the tar layout or in the compressed stream under it.
func archiveError(typ format.CompressionType, err error) error {
	if errors.Is(err, errs.ErrArchiveTooLarge) {
		return err
	}

	return fmt.Errorf("%w: %s database: %w", errs.ErrInvalidArchive, typ, err)
}

// limitedReader is io.LimitReader that fails instead of reporting EOF when the source has
// more than n bytes.
type limitedReader struct {
	r io.Reader
	n int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.n <= 0 {
		var probe [1]byte
		n, err := l.r.Read(probe[:])
		if n > 0 {
			return 0, fmt.Errorf("%w: decompressed size exceeds limit", errs.ErrArchiveTooLarge)
		}

		return 0, err
	}

	if int64(len(p)) > l.n {
		p = p[:l.n]
	}
	n, err := l.r.Read(p)
	l.n -= int64(n)

	return n, err
}

// Len returns the number of packages.
func (db *DB) Len() int {
	return len(db.entries)
}

// Compression returns the codec the archive was read with.
func (db *DB) Compression() format.CompressionType {
	return db.compression
}

// HasCollision reports whether two package names share an index hash.
func (db *DB) HasCollision() bool {
	return db.index.HasCollision()
}

// Entries yields the packages in archive order.
func (db *DB) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range db.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Lookup returns the package with the given name.
func (db *DB) Lookup(name string) (Entry, bool) {
	pos, ok := db.index.Lookup(name, hash.ID(name))
	if !ok {
		return Entry{}, false
	}

	return db.entries[pos], true
}

// Text returns the shared text every record borrows from.
func (db *DB) Text() string {
	return db.text
}

// ParseAll parses every record eagerly, at most the configured number of workers at once.
//
// Parameters:
//   - ctx: Cancels the remaining work
//
// Returns:
//   - []*desc.Parsed: One result per entry in archive order; nil for records not reached
//   - error: The first parse error, wrapped with the entry directory, or the context error
func (db *DB) ParseAll(ctx context.Context) ([]*desc.Parsed, error) {
	out := make([]*desc.Parsed, len(db.entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(db.workers)

	for i, e := range db.entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			parsed, err := e.Parse()
			out[i] = parsed
			if err != nil {
				return fmt.Errorf("parse %s: %w", e.Dir, err)
			}

			return nil
		})
	}

	return out, g.Wait()
}
