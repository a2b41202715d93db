package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shrek82/beangen/config"
	"github.com/shrek82/beangen/logger"
)

var (
	cfgPath string
	cfg     *config.Config

	flagDriver    string
	flagDSN       string
	flagPkg       string
	flagOut       string
	flagTables    []string
	flagOverwrite bool

	log logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "beangen",
	Short: "Generate typed bean accessors from a database schema",
	Long: `beangen connects to a database, reads table and column metadata,
and generates one Go bean source file per table: a typed getter/setter
pair per column, a constructor taking the compulsory properties and
applying column defaults, and a JSON serialization method.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgPath != "" {
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}
		} else {
			cfg = config.Default()
		}

		// Flags override config file values.
		if flagDriver != "" {
			cfg.Connection.Driver = flagDriver
		}
		if flagDSN != "" {
			cfg.Connection.DSN = flagDSN
		}
		if flagPkg != "" {
			cfg.Output.Package = flagPkg
		}
		if flagOut != "" {
			cfg.Output.Dir = flagOut
		}
		if len(flagTables) > 0 {
			cfg.Tables = flagTables
		}
		if flagOverwrite {
			cfg.Output.Overwrite = true
		}

		log = newLogger(cfg)
		return nil
	},
}

func newLogger(cfg *config.Config) logger.Logger {
	l := logger.NewStdLogger()
	switch cfg.Log.Level {
	case "silent":
		l.SetLevel(logger.LogLevelSilent)
	case "error":
		l.SetLevel(logger.LogLevelError)
	case "warn":
		l.SetLevel(logger.LogLevelWarn)
	default:
		l.SetLevel(logger.LogLevelInfo)
	}
	if cfg.Log.Format == "json" {
		l.SetFormat(logger.LogFormatJSON)
	}
	return l
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagDriver, "driver", "", "database driver (sqlite3, mysql, postgres)")
	rootCmd.PersistentFlags().StringVar(&flagDSN, "dsn", "", "database connection string")
	rootCmd.PersistentFlags().StringVar(&flagPkg, "pkg", "", "package name for generated code")
	rootCmd.PersistentFlags().StringVar(&flagOut, "out", "", "output directory for generated code")
	rootCmd.PersistentFlags().StringSliceVar(&flagTables, "table", nil, "table to generate (repeatable, default all)")
	rootCmd.PersistentFlags().BoolVar(&flagOverwrite, "overwrite", false, "overwrite existing generated files")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
