package main

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shrek82/beangen/dialect"
	"github.com/shrek82/beangen/gen"
	"github.com/shrek82/beangen/schema"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate bean files for the configured tables",
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

		names := cfg.Tables
		if len(names) == 0 {
			names, err = d.Tables(db)
			if err != nil {
				return fmt.Errorf("listing tables: %w", err)
			}
		}

		var tables []*schema.Table
		for _, name := range names {
			t, err := d.Table(db, name)
			if err != nil {
				return fmt.Errorf("reading table %s: %w", name, err)
			}
			tables = append(tables, t)
		}

		g := gen.New(cfg.Output.Package, cfg.Output.Dir)
		g.Overwrite = cfg.Output.Overwrite
		g.Log = log

		if err := g.Run(tables); err != nil {
			return fmt.Errorf("generation finished with errors")
		}
		log.Info("generated %d table(s)", len(tables))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(genCmd)
}
