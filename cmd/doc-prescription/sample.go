// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/1-arjayabalan-0/doc-prescription/internal/transcript"
)

var sampleCmd = &cobra.Command{
	Use:   "sample [name]",
	Short: "Print a bundled consultation transcript",
	Long: `Sample prints one of the bundled consultation transcripts to stdout,
for piping into parse or diarize. With no argument it lists the
available names.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		for _, name := range transcript.SampleNames() {
			fmt.Println(name)
		}
		return nil
	}

	text, err := transcript.Sample(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, text)
	return nil
}
