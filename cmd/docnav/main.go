// Package main is the entry point for the docnav CLI.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dgallion1/docnav/internal/catalog"
	"github.com/dgallion1/docnav/internal/config"
	"github.com/dgallion1/docnav/internal/section"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the docnav CLI.
var rootCmd = &cobra.Command{
	Use:   "docnav",
	Short: "Merge word-processing documents into one navigable file",
	Long: `docnav concatenates .docx documents (plus .md, .txt, .html, and .pdf
sources) into a single document with a clickable navigation menu, a bookmark
per merged section, a back-to-menu link before each section, and page breaks
between sections.

Filenames carry the menu structure: everything before the category separator
becomes the menu group, the rest becomes the entry title.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	config.SetDefaults()

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docnav.yaml or ~/.config/docnav/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docnav")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docnav"))
		}
	}

	viper.SetEnvPrefix("DOCNAV")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the CLI logger: human-readable text on stderr.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps the error taxonomy onto distinct exit statuses: 2 for
// configuration problems, 3 for unreadable sources, 4 for output failures.
func exitCode(err error) int {
	var loadErr *section.LoadError
	var writeErr *section.WriteError
	switch {
	case errors.Is(err, catalog.ErrNoInputs):
		return 2
	case errors.As(err, &loadErr):
		return 3
	case errors.As(err, &writeErr):
		return 4
	}
	return 1
}
