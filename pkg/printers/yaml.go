package printers

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"tableflip.dev/tripcraft/pkg/itinerary"
)

// YAML writes it as a YAML document with two space indentation.
func YAML(w io.Writer, it *itinerary.Itinerary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(it); err != nil {
		return fmt.Errorf("printers: encode itinerary: %w", err)
	}
	return enc.Close()
}
