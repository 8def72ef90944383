package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thebtf/gormguide/internal/guide"
)

func newTOCCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toc <file>",
		Short: "Print the regenerated table of contents for a guide file",
		Long:  "Parse a guide file and print the table-of-contents bullet list its body sections call for. Paste the output over the stale TOC to fix toc-* violations.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open guide: %w", err)
			}
			defer f.Close()

			doc, err := guide.Parse(args[0], f)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), guide.GenerateTOC(doc))
			return nil
		},
	}
}
