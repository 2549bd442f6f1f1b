package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arloliu/pkgtext/desc"
	"github.com/arloliu/pkgtext/format"
	"github.com/arloliu/pkgtext/repodb"
)

type dbOptions struct {
	Package     string
	Fields      []string
	Compression string `validate:"oneof=auto none gzip zstd lz4"`
	Workers     int    `validate:"gte=0"`
	Check       bool
}

// dbPackage is the summary line of one database entry.
type dbPackage struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
	Size    uint64 `json:"compressed_size" yaml:"compressed_size"`
}

func newDBCommand(root *rootOptions) *cobra.Command {
	opts := &dbOptions{}

	cmd := &cobra.Command{
		Use:   "db ARCHIVE",
		Short: "List or inspect the packages of a sync database",
		Long: `Read a pacman sync database archive (core.db, extra.db, ...) and list its
packages, or print the desc fields of one package with --package.

The compression is detected from the archive unless --compression is given.
--check parses every record and fails on the first broken one.`,
		Example: `  # List every package
  pkgtext db /var/lib/pacman/sync/core.db

  # Print the version and dependencies of one package
  pkgtext db --package zstd --field VERSION --field DEPENDS /var/lib/pacman/sync/core.db

  # Parse every record with 8 workers
  pkgtext db --check --workers 8 extra.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Struct(opts); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}

			fields, err := parseDescFields(opts.Fields)
			if err != nil {
				return err
			}

			db, err := loadDB(args[0], opts)
			if err != nil {
				return err
			}
			log.Debug().
				Str("archive", args[0]).
				Str("compression", db.Compression().String()).
				Int("packages", db.Len()).
				Msg("Loaded database")

			if opts.Check {
				if _, err := db.ParseAll(cmd.Context()); err != nil {
					return err
				}
			}

			if opts.Package != "" {
				entry, ok := db.Lookup(opts.Package)
				if !ok {
					return fmt.Errorf("package %q not found in %s", opts.Package, args[0])
				}

				q, err := queryDesc(entry.Desc, "eager", root.Strict, entry.Dir)
				if err != nil {
					return err
				}
				out := collectDesc(q, fields)

				return render(cmd.OutOrStdout(), root.Output, out, func(w io.Writer) error {
					return writeDescText(w, out)
				})
			}

			out := listPackages(db)

			return render(cmd.OutOrStdout(), root.Output, out, func(w io.Writer) error {
				for _, p := range out {
					if _, err := fmt.Fprintf(w, "%-40s %-28s %s\n", p.Name, p.Version, humanize.Bytes(p.Size)); err != nil {
						return err
					}
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Package, "package", "p", "", "package to print")
	cmd.Flags().StringSliceVarP(&opts.Fields, "field", "f", nil, "desc field to print with --package (repeatable)")
	cmd.Flags().StringVar(&opts.Compression, "compression", "auto", "archive compression: auto, none, gzip, zstd or lz4")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "parallel parsers for --check, 0 for one per CPU")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "parse every record")

	return cmd
}

func loadDB(path string, opts *dbOptions) (*repodb.DB, error) {
	var loadOpts []repodb.Option
	if opts.Compression != "auto" {
		typ, _ := format.ParseCompressionType(opts.Compression)
		loadOpts = append(loadOpts, repodb.WithCompression(typ))
	}
	if opts.Workers > 0 {
		loadOpts = append(loadOpts, repodb.WithWorkers(opts.Workers))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	db, err := repodb.Load(f, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return db, nil
}

func listPackages(db *repodb.DB) []dbPackage {
	out := make([]dbPackage, 0, db.Len())
	for e := range db.Entries() {
		a := desc.Access(e.Memo())
		version, _ := a.Version()
		p := dbPackage{Name: string(e.Name), Version: string(version)}
		if csize, ok := a.CompressedSize(); ok {
			p.Size, _ = csize.Parse()
		}
		out = append(out, p)
	}

	return out
}
