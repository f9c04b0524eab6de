// Package emit serializes the canonical project model to JSON or YAML and
// writes it to a file or a stream.
package emit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"aidlkit/internal/model"
)

// Format selects the output serialization.
type Format uint8

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// Options configure one emission.
type Options struct {
	Format Format
	// Pretty enables indented JSON. YAML output is always indented.
	Pretty bool
	// OutputPath names the destination file. Empty means the out stream.
	OutputPath string
}

// Marshal renders the project in the requested format.
func Marshal(p *model.Project, opts Options) ([]byte, error) {
	var data []byte
	var err error

	switch opts.Format {
	case FormatYAML:
		data, err = yaml.Marshal(p)
	default:
		if opts.Pretty {
			data, err = json.MarshalIndent(p, "", "  ")
		} else {
			data, err = json.Marshal(p)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to serialize project model to %s: %w", opts.Format, err)
	}
	return data, nil
}

// Write serializes p and writes it to the file named in opts, or to out
// followed by a trailing blank line. The destination file is created or
// truncated.
func Write(p *model.Project, opts Options, out io.Writer) error {
	data, err := Marshal(p, opts)
	if err != nil {
		return err
	}

	if opts.OutputPath == "" {
		if _, err := fmt.Fprintf(out, "%s\n\n", trimTrailingNewline(data)); err != nil {
			return fmt.Errorf("failed to write project model: %w", err)
		}
		return nil
	}

	f, err := os.Create(opts.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", opts.OutputPath, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s\n", trimTrailingNewline(data)); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", opts.OutputPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", opts.OutputPath, err)
	}
	return nil
}

// trimTrailingNewline keeps newline handling uniform across formats: yaml
// marshaling ends with one, json does not.
func trimTrailingNewline(data []byte) []byte {
	for len(data) > 0 && data[len(data)-1] == '\n' {
		data = data[:len(data)-1]
	}
	return data
}
