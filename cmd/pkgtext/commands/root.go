package commands

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

// rootOptions holds the flags shared by every command.
type rootOptions struct {
	Strict bool
	Output string `validate:"oneof=text json yaml"`
}

var validate = validator.New()

// Execute runs the root command
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "pkgtext",
		Short: "Inspect Arch package metadata records",
		Long: `pkgtext reads the plain-text metadata of Arch-style packages:

  - desc records from sync and local package databases
  - .SRCINFO records generated from PKGBUILDs
  - whole sync database archives (gzip, zstd, lz4 or plain tar)

Values are read in place from the input text; nothing is copied per field.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Struct(opts); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}

			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.Strict, "strict", false, "treat every parse issue as an error")
	rootCmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", "text", "output format: text, json or yaml")

	rootCmd.AddCommand(newDescCommand(opts))
	rootCmd.AddCommand(newSrcinfoCommand(opts))
	rootCmd.AddCommand(newChecksumsCommand(opts))
	rootCmd.AddCommand(newVerifyCommand(opts))
	rootCmd.AddCommand(newVercmpCommand())
	rootCmd.AddCommand(newDBCommand(opts))

	return rootCmd
}
