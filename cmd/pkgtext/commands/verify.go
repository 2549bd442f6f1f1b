package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arloliu/pkgtext/errs"
	"github.com/arloliu/pkgtext/srcinfo"
)

type verifyOptions struct {
	Dir  string `validate:"required,dir"`
	Arch string `validate:"omitempty,printascii"`
}

// verifyResult is the outcome of checking one source file against one checksum.
type verifyResult struct {
	Source string `json:"source" yaml:"source"`
	File   string `json:"file" yaml:"file"`
	Type   string `json:"type" yaml:"type"`
	Status string `json:"status" yaml:"status"`
}

const (
	statusOK       = "ok"
	statusSkipped  = "skipped"
	statusMissing  = "missing"
	statusMismatch = "mismatch"
	statusInvalid  = "invalid"
)

func newVerifyCommand(root *rootOptions) *cobra.Command {
	opts := &verifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify FILE",
		Short: "Verify local source files against the checksums of a .SRCINFO record",
		Long: `Verify the source files found in a directory against every checksum the
.SRCINFO record declares for them, like makepkg --verifysource does after downloading.

Sources qualified with another architecture than --arch are ignored. SKIP checksums
always pass. The command fails when a file is missing or a digest does not match.`,
		Example: `  # Verify the sources next to the recipe for x86_64
  pkgtext verify --dir . --arch x86_64 .SRCINFO`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Struct(opts); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}

			text, err := readInput(args[0])
			if err != nil {
				return err
			}

			q, err := querySrcinfo(text, "eager", root.Strict, args[0])
			if err != nil {
				return err
			}

			results, failed := verifySources(q, opts.Dir, opts.Arch)

			err = render(cmd.OutOrStdout(), root.Output, results, func(w io.Writer) error {
				for _, r := range results {
					if _, err := fmt.Fprintf(w, "%-8s %-8s %s\n", r.Status, r.Type, r.File); err != nil {
						return err
					}
				}

				return nil
			})
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d checks failed", errs.ErrChecksumMismatch, failed, len(results))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Dir, "dir", "d", ".", "directory holding the source files")
	cmd.Flags().StringVarP(&opts.Arch, "arch", "a", "", "target architecture, empty to check unqualified sources only")

	return cmd
}

func verifySources(q srcinfo.Querier, dir, arch string) ([]verifyResult, int) {
	var results []verifyResult
	failed := 0

	for _, section := range srcinfo.Sections(q) {
		for typ := range srcinfo.ChecksumTypes() {
			for pair := range srcinfo.SourceChecksums(q, section, typ) {
				if a := string(pair.Source.Architecture); a != "" && a != arch {
					continue
				}

				file := pair.Source.Value.LocalName()
				r := verifyResult{Source: string(pair.Source.Value), File: file, Type: typ.String()}
				if filepath.IsLocal(file) {
					r.Status = verifyOne(pair.Checksum, filepath.Join(dir, file))
				} else {
					log.Warn().Str("file", file).Msg("Source name escapes the source directory")
					r.Status = statusInvalid
				}
				if r.Status != statusOK && r.Status != statusSkipped {
					failed++
				}
				log.Debug().Str("file", file).Str("type", r.Type).Str("status", r.Status).Msg("Verified source")

				results = append(results, r)
			}
		}
	}

	return results, failed
}

func verifyOne(item srcinfo.ChecksumItem, path string) string {
	sum, err := item.Decode()
	if err != nil {
		log.Warn().Str("file", path).Err(err).Msg("Invalid checksum")
		return statusInvalid
	}
	if sum.IsSkip() {
		return statusSkipped
	}

	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Str("file", path).Err(err).Msg("Cannot open source")
		}

		return statusMissing
	}
	defer f.Close()

	if err := sum.Verify(f); err != nil {
		if !errors.Is(err, errs.ErrChecksumMismatch) {
			log.Warn().Str("file", path).Err(err).Msg("Cannot read source")
		}

		return statusMismatch
	}

	return statusOK
}
