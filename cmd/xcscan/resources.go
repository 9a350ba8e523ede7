package main

import (
	"github.com/spf13/cobra"
	"github.com/xcscan/xcscan/pkg/scanner"
)

func createResourcesCmd() *cobra.Command {
	resourcesCmd := &cobra.Command{
		Use:   "resources",
		Short: "Catalog the project's resources",
		Long: `Enumerate the image sets of the project's asset catalogs and the contents of
any configured extra resource folders, and write filtered_resources.json to
the output directory.

Examples:
  xcscan resources
  xcscan resources --catalog MyApp/Assets.xcassets
  xcscan resources -R Sounds -R fonts=Resources/Fonts`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newScanner(loadConfig(cmd))
			if err != nil {
				return err
			}
			return s.Run(scanner.RunOpts{Resources: true})
		},
	}

	resourcesCmd.Flags().String("catalog", "", "Asset catalog to enumerate instead of discovering *.xcassets")
	resourcesCmd.Flags().StringArrayP("folder", "R", nil, "Extra resource folder to catalog (path or label=path, repeatable)")

	return resourcesCmd
}
