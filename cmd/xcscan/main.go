// Package main provides the command-line interface for the xcscan application.
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xcscan/xcscan/pkg/config"
	"github.com/xcscan/xcscan/pkg/dependencies"
	"github.com/xcscan/xcscan/pkg/logger"
	"github.com/xcscan/xcscan/pkg/scanner"
)

const defaultConfigFile = "xcscan.yaml"

var (
	quiet       bool
	verbose     bool
	configPath  string
	projectRoot string
	outputDir   string
)

// loadConfig resolves the run configuration: the config file first, then any
// command-line overrides on top.
func loadConfig(cmd *cobra.Command) config.Config {
	var cfg config.Config
	var err error

	if configPath != "" {
		// An explicit config path must exist and parse.
		cfg, err = config.NewManager(configPath).GetConfig()
		if err != nil {
			log.Fatalf("Failed to load configuration from %s: %v", configPath, err)
		}
	} else {
		cfg, err = config.NewManager(defaultConfigFile).GetConfigWithFallback()
		if err != nil {
			log.Fatalf("Failed to load configuration from %s: %v", defaultConfigFile, err)
		}
	}

	if projectRoot != "" {
		cfg.ProjectRoot = projectRoot
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if cmd.Flags().Changed("gitignore") {
		cfg.GitignoreFilter, _ = cmd.Flags().GetBool("gitignore")
	}
	if cmd.Flags().Changed("catalog") {
		cfg.AssetCatalog, _ = cmd.Flags().GetString("catalog")
	}
	if cmd.Flags().Changed("folder") {
		specs, _ := cmd.Flags().GetStringArray("folder")
		folders, err := parseFolderSpecs(specs)
		if err != nil {
			log.Fatal(err)
		}
		cfg.ResourceFolders = append(cfg.ResourceFolders, folders...)
	}

	return cfg
}

// parseFolderSpecs parses --folder values of the form "path" or "label=path".
func parseFolderSpecs(specs []string) ([]config.ResourceFolder, error) {
	folders := make([]config.ResourceFolder, 0, len(specs))
	for _, spec := range specs {
		var folder config.ResourceFolder
		if label, path, ok := strings.Cut(spec, "="); ok {
			if label == "" || path == "" {
				return nil, fmt.Errorf("invalid folder specification %q: expected path or label=path", spec)
			}
			folder = config.ResourceFolder{Path: path, Label: label}
		} else {
			if spec == "" {
				return nil, fmt.Errorf("invalid folder specification %q: expected path or label=path", spec)
			}
			folder = config.ResourceFolder{Path: spec}
		}
		folders = append(folders, folder)
	}
	return folders, nil
}

// newScanner builds a Scanner for the resolved configuration, with the logger
// selected by the quiet/verbose flags.
func newScanner(cfg config.Config) (scanner.Scanner, error) {
	deps := dependencies.New().WithConfig(config.NewStaticManager(cfg))

	switch {
	case quiet:
		deps.WithLogger(logger.NewNoopLogger())
	case verbose:
		deps.WithLogger(logger.NewColoredLogger())
	}

	return scanner.NewScanner(scanner.NewScannerParams{Dependencies: deps})
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "xcscan",
		Short: "xcscan - Xcode project analyzer",
		Long: `A CLI tool that inventories an Xcode project's source files, declared types ` +
			`and resources, and detects resources no source file references.`,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")
	rootCmd.PersistentFlags().StringVarP(&projectRoot, "project", "p", "", "Project root directory to analyze")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "Directory to write result files to")

	rootCmd.AddCommand(createScanCmd(), createResourcesCmd(), createUnusedCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
