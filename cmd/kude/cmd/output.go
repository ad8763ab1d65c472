package cmd

import (
	"encoding/json"
	"fmt"
	"io"
)

const (
	formatJSON  = "json"
	formatTable = "table"
)

func checkFormat() error {
	switch outputFormat {
	case formatJSON, formatTable:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (use json or table)", outputFormat)
	}
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}
