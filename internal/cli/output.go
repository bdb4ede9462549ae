package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatPretty = "pretty"
	formatJSON   = "json"
	formatYAML   = "yaml"
)

func addFormatFlag(c *cobra.Command, format *string) {
	c.Flags().StringVar(format, "format", formatPretty, "Output format: pretty|json|yaml")
}

// emit writes v as JSON or YAML, or calls pretty.
func emit(w io.Writer, format string, v any, pretty func()) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case formatPretty, "":
		pretty()
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|yaml)", format)
	}
}
