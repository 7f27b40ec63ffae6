package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Structured writes v as JSON or YAML. YAML goes through JSON first so both
// use the same field names.
func Structured(w io.Writer, format string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	switch format {
	case "json", "":
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		var tree any
		if err := json.Unmarshal(b, &tree); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Emit writes v in format, or hands pp to pretty when format is empty.
func (pp *PrettyPrint) Emit(format string, v any, pretty func(pp *PrettyPrint)) error {
	if format == "" {
		pretty(pp)
		return nil
	}
	return Structured(pp.out(), format, v)
}
