package printers

import (
	"fmt"
	"io"

	"tableflip.dev/tripcraft/pkg/itinerary"
)

// JSON writes it in the persisted blob format.
func JSON(w io.Writer, it *itinerary.Itinerary) error {
	data, err := itinerary.Marshal(it)
	if err != nil {
		return fmt.Errorf("printers: encode itinerary: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
