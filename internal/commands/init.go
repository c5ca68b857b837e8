package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tallybridge/tallybridge/internal/config"
)

func newInitCommand() *cobra.Command {
	var company string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a migration workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, company)
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "target company name (required)")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}

func runInit(dir, company string) error {
	cfg := config.Default(company)

	dirs := []string{cfg.Dirs.Source, cfg.Dirs.Output, "logs"}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	configPath := filepath.Join(dir, "migration.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists", configPath)
	}
	if err := config.Save(configPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Initialized migration workspace at %s\n", dir)
	fmt.Printf("Drop the Zoho Books export files into %s and run: tallybridge migrate\n",
		filepath.Join(dir, cfg.Dirs.Source))
	return nil
}
