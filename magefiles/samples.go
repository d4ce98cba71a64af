//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"

	"github.com/1-arjayabalan-0/doc-prescription/internal/transcript"
)

// Samples writes the bundled consultation transcripts into transcripts/
// so they can be edited and fed back through the parser.
func Samples() error {
	mg.Deps(Init)
	for _, name := range transcript.SampleNames() {
		text, err := transcript.Sample(name)
		if err != nil {
			return err
		}
		path := filepath.Join("transcripts", name+".txt")
		if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Println("  ", path)
	}
	return nil
}
