package commands

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arloliu/pkgtext/srcinfo"
)

// sourceSum is one source entry with its digest of one algorithm.
type sourceSum struct {
	Section      string `json:"section" yaml:"section"`
	Source       string `json:"source" yaml:"source"`
	Architecture string `json:"architecture,omitempty" yaml:"architecture,omitempty"`
	Type         string `json:"type" yaml:"type"`
	Checksum     string `json:"checksum" yaml:"checksum"`
	Valid        bool   `json:"valid" yaml:"valid"`
}

func newChecksumsCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checksums FILE",
		Short: "List the source checksums of a .SRCINFO record",
		Long: `List every source of a .SRCINFO record next to its checksum for each algorithm
the record declares. Checksums are matched to sources by architecture and position.

Malformed digests are reported as invalid; with --strict they fail the command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args[0])
			if err != nil {
				return err
			}

			q, err := querySrcinfo(text, "eager", root.Strict, args[0])
			if err != nil {
				return err
			}

			out, err := collectSourceSums(q, root.Strict)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), root.Output, out, func(w io.Writer) error {
				for _, s := range out {
					state := ""
					if !s.Valid {
						state = " (invalid)"
					}
					if _, err := fmt.Fprintf(w, "%-8s %s  %s%s\n", s.Type, s.Checksum, s.Source, state); err != nil {
						return err
					}
				}

				return nil
			})
		},
	}

	return cmd
}

func collectSourceSums(q srcinfo.Querier, strict bool) ([]sourceSum, error) {
	var out []sourceSum
	for _, section := range srcinfo.Sections(q) {
		for typ := range srcinfo.ChecksumTypes() {
			for pair := range srcinfo.SourceChecksums(q, section, typ) {
				_, err := pair.Checksum.Decode()
				if err != nil {
					if strict {
						return nil, fmt.Errorf("%s: %w", pair.Source.Value, err)
					}
					log.Warn().Str("source", string(pair.Source.Value)).Err(err).Msg("Invalid checksum")
				}

				out = append(out, sourceSum{
					Section:      section.String(),
					Source:       string(pair.Source.Value),
					Architecture: string(pair.Source.Architecture),
					Type:         typ.String(),
					Checksum:     string(pair.Checksum.Value),
					Valid:        err == nil,
				})
			}
		}
	}

	return out, nil
}
