// Package config holds the resolved plugin options the orchestration layer
// hands to the translation and enhancement core: build/debug verbosity
// flags, include/exclude globs selecting which component files are
// enhanced, and the preprocessor descriptors the pipeline resolved.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/goccy/go-yaml"

	"github.com/handleui/refract/enhance"
)

// maxConfigSizeBytes caps the config file size before parsing.
// Prevents resource exhaustion from a maliciously large file.
const maxConfigSizeBytes = 1 * 1024 * 1024

// Options are the resolved plugin options.
type Options struct {
	// Build is true when diagnostics are consumed by a production build
	// rather than the dev server.
	Build bool `yaml:"build"`

	// Debug requests stack traces even where a frame already locates the
	// error.
	Debug bool `yaml:"debug"`

	// Include/Exclude are doublestar globs gating which files receive
	// enhancement. An empty Include list matches every file.
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`

	// Preprocessors are the transform hooks the pipeline resolved, in
	// registration order.
	Preprocessors []enhance.Preprocessor `yaml:"preprocessors"`
}

// Load reads and parses an options file.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading options file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML option data after validating the content.
func Parse(data []byte) (*Options, error) {
	if err := validateConfigContent(data); err != nil {
		return nil, err
	}

	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("parsing options YAML: %w", err)
	}
	return &opts, nil
}

// validateConfigContent checks for malformed or disguised-binary content
// before handing the data to the YAML parser.
func validateConfigContent(data []byte) error {
	if len(data) > maxConfigSizeBytes {
		return fmt.Errorf("options file exceeds maximum size of %d bytes", maxConfigSizeBytes)
	}
	if bytes.Contains(data, []byte{0x00}) {
		return fmt.Errorf("options file contains null bytes (binary content not allowed)")
	}
	return nil
}

// Match reports whether a component file is selected for enhancement.
// The file must match at least one Include glob (or Include must be empty)
// and no Exclude glob. Invalid patterns are treated as non-matching.
func (o *Options) Match(file string) bool {
	for _, pattern := range o.Exclude {
		if ok, err := doublestar.Match(pattern, file); err == nil && ok {
			return false
		}
	}

	if len(o.Include) == 0 {
		return true
	}
	for _, pattern := range o.Include {
		if ok, err := doublestar.Match(pattern, file); err == nil && ok {
			return true
		}
	}
	return false
}
