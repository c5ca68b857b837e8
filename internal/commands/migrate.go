package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tallybridge/tallybridge/internal/config"
	"github.com/tallybridge/tallybridge/internal/migrate"
)

func newMigrateCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "migrate [directory]",
		Short: "Run the migration and write the Tally import files",
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

			return runMigrate(absDir, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every diagnostic as it is raised")

	return cmd
}

func runMigrate(dir string, verbose bool) error {
	cfg, err := config.Load(filepath.Join(dir, "migration.yaml"))
	if err != nil {
		return fmt.Errorf("loading config (run 'tallybridge init' first?): %w", err)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	stats, err := migrate.NewRunner(dir, cfg, logger).Run()
	if err != nil {
		return err
	}

	fmt.Printf("Masters: %d groups, %d ledgers (%d accounts, %d parties from source)\n",
		stats.Groups, stats.Ledgers, stats.Accounts, stats.Parties)
	for _, vc := range stats.Vouchers {
		fmt.Printf("%s vouchers: %d\n", vc.Type, vc.Count)
	}
	if stats.Imbalances > 0 {
		fmt.Printf("Imbalanced vouchers: %d (see logs/migration-log.csv)\n", stats.Imbalances)
	}
	if stats.Warnings > 0 {
		fmt.Printf("Warnings: %d (see logs/migration-log.csv)\n", stats.Warnings)
	}
	for _, f := range stats.Files {
		fmt.Printf("Wrote %s\n", f)
	}
	return nil
}
