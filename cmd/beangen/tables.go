package main

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shrek82/beangen/dialect"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the tables beangen would generate for",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Connection.DSN == "" {
			return fmt.Errorf("--dsn or a config file is required")
		}

		d, ok := dialect.Get(cfg.Connection.Driver)
		if !ok {
			return fmt.Errorf("unsupported driver: %s", cfg.Connection.Driver)
		}

		db, err := sql.Open(cfg.Connection.Driver, cfg.Connection.DSN)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		names, err := d.Tables(db)
		if err != nil {
			return fmt.Errorf("listing tables: %w", err)
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}
