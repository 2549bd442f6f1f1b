package commands

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/arloliu/pkgtext"
	"github.com/arloliu/pkgtext/desc"
	"github.com/arloliu/pkgtext/value"
)

type descOptions struct {
	Fields   []string
	Strategy string `validate:"oneof=eager forgetful memo sync-memo"`
}

// fieldValues is one desc field with its value lines.
type fieldValues struct {
	Field  string   `json:"field" yaml:"field"`
	Values []string `json:"values" yaml:"values"`
}

func newDescCommand(root *rootOptions) *cobra.Command {
	opts := &descOptions{}

	cmd := &cobra.Command{
		Use:   "desc FILE",
		Short: "Print the fields of a desc record",
		Long: `Print the fields of a desc record, as found in sync databases
(<repo>.db/<pkg>/desc) and the local database (/var/lib/pacman/local/<pkg>/desc).

Use "-" to read from stdin.`,
		Example: `  # Print every field
  pkgtext desc /var/lib/pacman/local/zstd-1.5.7-1/desc

  # Print a few fields as JSON with the lazy strategy
  pkgtext desc --field NAME --field VERSION --strategy memo -o json desc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Struct(opts); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}

			fields, err := parseDescFields(opts.Fields)
			if err != nil {
				return err
			}

			text, err := readInput(args[0])
			if err != nil {
				return err
			}

			q, err := queryDesc(text, opts.Strategy, root.Strict, args[0])
			if err != nil {
				return err
			}

			out := collectDesc(q, fields)

			return render(cmd.OutOrStdout(), root.Output, out, func(w io.Writer) error {
				return writeDescText(w, out)
			})
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Fields, "field", "f", nil, "field to print, without % signs (repeatable)")
	cmd.Flags().StringVar(&opts.Strategy, "strategy", "eager", "query strategy: eager, forgetful, memo or sync-memo")

	return cmd
}

func parseDescFields(names []string) ([]desc.FieldName, error) {
	if len(names) == 0 {
		return slices.Collect(desc.FieldNames()), nil
	}

	fields := make([]desc.FieldName, 0, len(names))
	for _, name := range names {
		f, ok := desc.ParseFieldName(strings.Trim(strings.ToUpper(name), "%"))
		if !ok {
			return nil, fmt.Errorf("unknown desc field %q", name)
		}
		fields = append(fields, f)
	}

	return fields, nil
}

func queryDesc(text, strategy string, strict bool, path string) (desc.Querier, error) {
	s, err := pkgtext.ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}
	if s != pkgtext.StrategyEager {
		return pkgtext.QueryDesc(text, s)
	}

	parsed, err := desc.ParseWithIssues(text, issueHandler[desc.Issue](strict, path))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return parsed, nil
}

func collectDesc(q desc.Querier, fields []desc.FieldName) []fieldValues {
	out := make([]fieldValues, 0, len(fields))
	for _, f := range fields {
		raw, ok := q.Lookup(f)
		if !ok {
			continue
		}
		out = append(out, fieldValues{
			Field:  f.String(),
			Values: slices.Collect(value.List[string](raw).All()),
		})
	}

	return out
}

func writeDescText(w io.Writer, fields []fieldValues) error {
	for _, fv := range fields {
		for i, v := range fv.Values {
			label := ""
			if i == 0 {
				label = fv.Field
			}
			if _, err := fmt.Fprintf(w, "%-14s %s\n", label, describeValue(fv.Field, v)); err != nil {
				return err
			}
		}
	}

	return nil
}

// describeValue adds a human-readable rendering to sizes and dates.
func describeValue(field, raw string) string {
	switch field {
	case desc.CompressedSize.String(), desc.InstalledSize.String():
		if n, err := value.Size(raw).Parse(); err == nil {
			return fmt.Sprintf("%s (%s)", humanize.Bytes(n), raw)
		}
	case desc.BuildDate.String():
		if t, err := value.Timestamp(raw).Time(); err == nil {
			return fmt.Sprintf("%s (%s)", t.Format(time.RFC3339), raw)
		}
	}

	return raw
}
