package main

import (
	"github.com/spf13/cobra"
	"github.com/xcscan/xcscan/pkg/scanner"
)

func createScanCmd() *cobra.Command {
	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "Collect project files and extract declared types",
		Long: `Walk the project tree, collect the analyzable source and Interface Builder
files, extract the declared Objective-C and Swift types, and write
filtered_files.json and filtered_objects.json to the output directory.

Examples:
  xcscan scan
  xcscan scan -p ./MyApp -o ./analysis
  xcscan scan --gitignore=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newScanner(loadConfig(cmd))
			if err != nil {
				return err
			}
			return s.Run(scanner.RunOpts{})
		},
	}

	scanCmd.Flags().BoolP("gitignore", "g", true, "Exclude files matched by gitignore rules")

	return scanCmd
}
