package commands

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/arloliu/pkgtext"
	"github.com/arloliu/pkgtext/srcinfo"
)

type srcinfoOptions struct {
	Fields   []string
	Section  string
	Strategy string `validate:"oneof=eager forgetful memo sync-memo"`
}

// srcinfoValue is one value of a .SRCINFO field with its origin.
type srcinfoValue struct {
	Field        string `json:"field" yaml:"field"`
	Value        string `json:"value" yaml:"value"`
	Section      string `json:"section" yaml:"section"`
	Architecture string `json:"architecture,omitempty" yaml:"architecture,omitempty"`
	Inherited    bool   `json:"inherited,omitempty" yaml:"inherited,omitempty"`
}

func newSrcinfoCommand(root *rootOptions) *cobra.Command {
	opts := &srcinfoOptions{}

	cmd := &cobra.Command{
		Use:   "srcinfo FILE",
		Short: "Print the values of a .SRCINFO record",
		Long: `Print the values of a .SRCINFO record in source order.

Without --section every value of the whole record is printed with the section it was
declared in. With --section the record is read from that package's point of view:
single-valued fields fall back to the pkgbase value when the package does not set its own.`,
		Example: `  # Every dependency of every package
  pkgtext srcinfo --field depends .SRCINFO

  # The effective description and dependencies of one split package
  pkgtext srcinfo --section foo-bin --field pkgdesc --field depends .SRCINFO`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Struct(opts); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}

			fields, err := parseSrcinfoFields(opts.Fields)
			if err != nil {
				return err
			}

			text, err := readInput(args[0])
			if err != nil {
				return err
			}

			q, err := querySrcinfo(text, opts.Strategy, root.Strict, args[0])
			if err != nil {
				return err
			}

			var out []srcinfoValue
			if cmd.Flags().Changed("section") {
				out = collectSection(q, fields, sectionNamed(opts.Section))
			} else {
				out = collectSrcinfo(q, fields)
			}

			return render(cmd.OutOrStdout(), root.Output, out, func(w io.Writer) error {
				return writeSrcinfoText(w, out)
			})
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Fields, "field", "f", nil, "field to print (repeatable)")
	cmd.Flags().StringVarP(&opts.Section, "section", "s", "", "package name to read from, empty for pkgbase")
	cmd.Flags().StringVar(&opts.Strategy, "strategy", "eager", "query strategy: eager, forgetful, memo or sync-memo")

	return cmd
}

func sectionNamed(name string) srcinfo.Section {
	if name == "" {
		return srcinfo.BaseSection
	}

	return srcinfo.Derivative(name)
}

func parseSrcinfoFields(names []string) ([]srcinfo.FieldName, error) {
	if len(names) == 0 {
		return slices.Collect(srcinfo.FieldNames()), nil
	}

	fields := make([]srcinfo.FieldName, 0, len(names))
	for _, name := range names {
		f, ok := srcinfo.ParseFieldName(name)
		if !ok {
			return nil, fmt.Errorf("unknown .SRCINFO field %q", name)
		}
		fields = append(fields, f)
	}

	return fields, nil
}

func querySrcinfo(text, strategy string, strict bool, path string) (srcinfo.Querier, error) {
	s, err := pkgtext.ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}
	if s != pkgtext.StrategyEager {
		return pkgtext.QuerySrcinfo(text, s)
	}

	parsed, err := srcinfo.ParseWithIssues(text, issueHandler[srcinfo.Issue](strict, path))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return parsed, nil
}

func toValue(f srcinfo.FieldName, item srcinfo.RawItem) srcinfoValue {
	return srcinfoValue{
		Field:        f.String(),
		Value:        item.Value,
		Section:      item.Section.String(),
		Architecture: string(item.Architecture),
	}
}

func collectSrcinfo(q srcinfo.Querier, fields []srcinfo.FieldName) []srcinfoValue {
	var out []srcinfoValue
	for _, f := range fields {
		for item := range q.Query(f) {
			out = append(out, toValue(f, item))
		}
	}

	return out
}

func collectSection(q srcinfo.Querier, fields []srcinfo.FieldName, s srcinfo.Section) []srcinfoValue {
	view := srcinfo.Access(q).Section(s)

	var out []srcinfoValue
	for _, f := range fields {
		if f.Class().IsSingle() {
			if item, ok := view.Single(f); ok {
				v := toValue(f, item)
				v.Inherited = item.Section != s
				out = append(out, v)
			}

			continue
		}

		for item := range view.Values(f) {
			out = append(out, toValue(f, item))
		}
	}

	return out
}

func writeSrcinfoText(w io.Writer, values []srcinfoValue) error {
	for _, v := range values {
		key := v.Field
		if v.Architecture != "" {
			key += "_" + v.Architecture
		}
		suffix := ""
		if v.Inherited {
			suffix = " (inherited)"
		}
		if _, err := fmt.Fprintf(w, "%-24s %-20s %s%s\n", v.Section, key, v.Value, suffix); err != nil {
			return err
		}
	}

	return nil
}
