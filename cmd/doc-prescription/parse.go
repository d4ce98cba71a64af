// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/1-arjayabalan-0/doc-prescription/internal/prescription"
	"github.com/1-arjayabalan-0/doc-prescription/internal/report"
	"github.com/1-arjayabalan-0/doc-prescription/internal/transcript"
	"github.com/1-arjayabalan-0/doc-prescription/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a consultation transcript into a prescription document",
	Long: `Parse reads a transcript from a file ("-" or no argument for stdin),
runs heuristic field extraction, and writes a structured prescription
document in JSON, YAML, or plain text.

Supported input formats: YAML or JSON utterance lists, and plain text
with optional "Doctor:"/"Patient:" speaker prefixes per line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("provider", "", "prescribing provider name recorded in the document notes")
	parseCmd.Flags().String("format", "json", "output format: json, yaml, or text")
	parseCmd.Flags().String("out", "", "output file (default stdout)")
	parseCmd.Flags().Bool("diarize", false, "assign speaker roles to unlabeled utterances before parsing")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := parseConfig(cmd)

	t, err := loadTranscript(args)
	if err != nil {
		return err
	}

	if cfg.Parse.Diarize {
		t.Utterances = transcript.Diarize(t.Utterances)
	}

	doc := prescription.Parse(t.Utterances, prescription.Options{Provider: cfg.Parse.Provider})
	return writeDocument(doc, cfg.Output)
}

// parseConfig assembles the pipeline config from flags, with unset flags
// falling back to the viper config file / environment.
func parseConfig(cmd *cobra.Command) types.PipelineConfig {
	provider, _ := cmd.Flags().GetString("provider")
	if provider == "" {
		provider = viper.GetString("parse.provider")
	}
	diarize, _ := cmd.Flags().GetBool("diarize")
	if !diarize {
		diarize = viper.GetBool("parse.diarize")
	}
	format, _ := cmd.Flags().GetString("format")
	if !cmd.Flags().Changed("format") && viper.IsSet("output.format") {
		format = viper.GetString("output.format")
	}
	outPath, _ := cmd.Flags().GetString("out")

	return types.PipelineConfig{
		Parse: types.ParseConfig{Provider: provider, Diarize: diarize},
		Output: types.OutputConfig{
			Format: types.OutputFormat(format),
			Path:   outPath,
		},
	}
}

// loadTranscript reads the transcript named by args, or stdin when the
// argument is absent or "-".
func loadTranscript(args []string) (*types.Transcript, error) {
	if len(args) == 0 || args[0] == "-" {
		return transcript.Read(os.Stdin)
	}
	return transcript.Load(args[0])
}

func writeDocument(doc *types.PrescriptionDocument, cfg types.OutputConfig) error {
	out := os.Stdout
	if cfg.Path != "" {
		f, err := os.Create(cfg.Path)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	return report.Write(out, doc, cfg.Format)
}
