package cmd

import (
	"log/slog"
	"os"

	"github.com/sestinj/crho/pkg"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	logJSON bool
)

var rootCmd = &cobra.Command{
	Use:   "crho",
	Short: "crho language front end",
	Long: `crho parses crho source files into an abstract syntax tree.

The front end stops after parsing: it reports syntax errors with file,
line and column, and prints the functions it managed to read. Operator
binding powers can be adjusted with a TOML or YAML configuration file.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file with operator binding powers (.toml, .yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "write logs as JSON")
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	if logJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func loadTable() (crho.PrecedenceTable, error) {
	if cfgFile == "" {
		return crho.DefaultPrecedence(), nil
	}

	cfg, err := crho.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	return cfg.Precedence(), nil
}
