package cli

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/thebtf/gormguide/internal/config"
	"github.com/thebtf/gormguide/internal/guide"
)

func newCheckCmd() *cobra.Command {
	var (
		jsonOutput bool
		ciMode     bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Lint guide files against the editorial contract",
		Long:  "Parse each guide file and report sections with missing recommendations, wrong code-block counts, and table-of-contents drift. Files default to the configured guide paths.",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, rules, err := resolveTargets(configPath, args)
			if err != nil {
				return err
			}

			report, err := guide.LintFiles(cmd.Context(), paths, rules)
			if err != nil {
				return fmt.Errorf("lint: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return fmt.Errorf("encode report: %w", err)
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), RenderReport(report))
			}

			if ciMode && !report.Clean() {
				return fmt.Errorf("%w: %d", ErrViolationsFound, len(report.Violations))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if any violations are found")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to .guidelint.yaml")

	return cmd
}

// resolveTargets merges config with positional file arguments; explicit
// arguments win over configured paths.
func resolveTargets(configPath string, args []string) ([]string, guide.Rules, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, guide.Rules{}, fmt.Errorf("load config: %w", err)
	}
	paths := cfg.Files
	if len(args) > 0 {
		paths = args
	}
	return paths, cfg.Rules(), nil
}
