// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the doc-prescription CLI.
// It wires the transcript loader, the prescription parser, and the output
// renderers into subcommands: parse, diarize, sample, version.
// See docs/ARCHITECTURE § CLI Surface.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the doc-prescription CLI.
var rootCmd = &cobra.Command{
	Use:   "doc-prescription",
	Short: "Extract structured prescriptions from consultation transcripts",
	Long: `doc-prescription turns a transcribed doctor-patient conversation into a
structured prescription document: demographics, vitals, history, diagnosis,
medications with normalized dose/frequency/route, instructions, and a
consultation summary.

Extraction is heuristic and total: fields the transcript never mentions are
simply absent from the output, never errors. Transcription itself is out of
scope; the CLI consumes transcripts produced upstream.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./doc-prescription.yaml or ~/.config/doc-prescription/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("doc-prescription")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "doc-prescription"))
		}
	}

	viper.SetEnvPrefix("DOC_PRESCRIPTION")
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
