package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	formatYAML outputFormat = "yaml"
	formatJSON outputFormat = "json"
)

func parseOutputFormat(value string) (outputFormat, error) {
	switch outputFormat(value) {
	case formatYAML, formatJSON:
		return outputFormat(value), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want yaml or json)", value)
	}
}

func writeOutput(w io.Writer, format outputFormat, data any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(data)
	}
}
