// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/1-arjayabalan-0/doc-prescription/internal/transcript"
)

var diarizeCmd = &cobra.Command{
	Use:   "diarize [file]",
	Short: "Assign speaker roles to an unlabeled transcript",
	Long: `Diarize reads a transcript ("-" or no argument for stdin), scores each
utterance against doctor and patient vocabulary, and writes the transcript
back out with speaker roles filled in. Utterances that already carry a
role keep it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDiarize,
}

func init() {
	diarizeCmd.Flags().String("out", "", "output file (default stdout, YAML)")

	rootCmd.AddCommand(diarizeCmd)
}

func runDiarize(cmd *cobra.Command, args []string) error {
	t, err := loadTranscript(args)
	if err != nil {
		return err
	}

	t.Utterances = transcript.Diarize(t.Utterances)

	outPath, _ := cmd.Flags().GetString("out")
	if outPath != "" {
		return transcript.Write(outPath, t)
	}

	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshaling transcript: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
