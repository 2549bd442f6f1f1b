package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/pkgtext"
)

func newVercmpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vercmp A B",
		Short: "Compare two package versions",
		Long: `Compare two full package versions of the form [epoch:]pkgver-pkgrel and print
-1 if A is older than B, 0 if they are equal and 1 if A is newer.`,
		Example: `  pkgtext vercmp 1:1.0-1 2.0-1    # prints 1
  pkgtext vercmp 1.2.3-1 1_2_3-1  # prints 0`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := pkgtext.CompareVersions(args[0], args[1])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)

			return err
		},
	}

	return cmd
}
