package types

// OutputFormat selects how a parsed document is rendered by the CLI.
type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
	OutputText OutputFormat = "text"
)

// ParseConfig holds settings for the parse stage.
type ParseConfig struct {
	// Provider is the prescriber name appended to document notes
	// (e.g. "Dr. A. Rao"). Empty leaves notes unsuffixed.
	Provider string `json:"provider,omitempty" yaml:"provider,omitempty"`

	// Diarize controls whether plain-text transcripts are run through the
	// speaker identifier before parsing. Parsing itself is speaker-agnostic,
	// so this only affects the transcript echoed back to the caller.
	Diarize bool `json:"diarize" yaml:"diarize"`
}

// OutputConfig holds settings for document rendering.
type OutputConfig struct {
	// Format selects the rendering: json, yaml, or text.
	Format OutputFormat `json:"format" yaml:"format"`

	// Path is the output file. Empty writes to stdout.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// PipelineConfig groups all stage configurations for the CLI.
type PipelineConfig struct {
	Parse  ParseConfig  `json:"parse" yaml:"parse"`
	Output OutputConfig `json:"output" yaml:"output"`
}
