package main

import (
	"github.com/spf13/cobra"
	"github.com/xcscan/xcscan/pkg/scanner"
)

func createUnusedCmd() *cobra.Command {
	unusedCmd := &cobra.Command{
		Use:   "unused",
		Short: "Detect resources no source file references",
		Long: `Run the full pipeline: collect files, extract declared types, catalog
resources, and cross-reference every cataloged resource name against the
collected file contents. Writes all four result files, ending with
unused_assets.json.

With --cached, the file list is reloaded from a previous scan's
filtered_files.json instead of walking the tree again.

Examples:
  xcscan unused
  xcscan unused -p ./MyApp -o ./analysis
  xcscan unused --cached`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newScanner(loadConfig(cmd))
			if err != nil {
				return err
			}
			cached, _ := cmd.Flags().GetBool("cached")
			return s.Run(scanner.RunOpts{Cached: cached, Resources: true, Unused: true})
		},
	}

	unusedCmd.Flags().BoolP("cached", "t", false, "Reuse the file list from a previous scan")
	unusedCmd.Flags().BoolP("gitignore", "g", true, "Exclude files matched by gitignore rules")
	unusedCmd.Flags().String("catalog", "", "Asset catalog to enumerate instead of discovering *.xcassets")
	unusedCmd.Flags().StringArrayP("folder", "R", nil, "Extra resource folder to catalog (path or label=path, repeatable)")

	return unusedCmd
}
