// Package repodb reads pacman sync databases (core.db, extra.db, ...).
//
// A sync database is a compressed tar archive holding one directory per package, each with a
// flat "desc" record. Load decompresses the archive, copies every desc record into one shared
// string and exposes the records as substrings of it, so parsing them later allocates nothing
// per value.
//
//	db, err := repodb.Load(f)
//	if err != nil {
//	    return err
//	}
//	entry, ok := db.Lookup("zstd")
//	version, _ := desc.Access(entry.Memo()).Version()
//
// Lookup is backed by an xxHash64 index that falls back to comparing names when two package
// names share a hash. ParseAll parses every record eagerly on a bounded worker pool.
package repodb
