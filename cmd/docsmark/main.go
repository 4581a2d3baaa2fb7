// Package main is the entry point for the docsmark CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	docsmark "github.com/riverfjs/docsmark-go"
)

// rootCmd is the base command for the docsmark CLI.
var rootCmd = &cobra.Command{
	Use:   "docsmark",
	Short: "Convert markdown-like text into rich-text blocks and slides",
	Long: `docsmark converts a small markdown dialect (headings, bullet and numbered
lists, fenced code, bold, italic and inline code) into a structured block
model, and parses "Title:/Subtitle:/Body:/Notes:" slide decks.

Input is read from the file given as argument, or from stdin when the
argument is missing or "-".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(viper.GetString("log_level"))
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		docsmark.SetLogger(log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "docsmark",
			Level:  level,
		}))
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docsmark.yaml or ~/.config/docsmark/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringP("output", "o", "json", "output format: json or yaml (slides also accepts html)")
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docsmark")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docsmark"))
		}
	}

	viper.SetEnvPrefix("DOCSMARK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
