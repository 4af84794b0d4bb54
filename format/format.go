package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/hnp/name"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(parsed *name.Parsed) error
}

// Names lists the formats NewEncoder accepts.
var Names = []string{"json", "line", "segments"}

// NewEncoder returns the encoder registered under format.
func NewEncoder(format string, w io.Writer) (Encoder, error) {
	switch format {
	case "json":
		return NewJSONEncoder(w), nil
	case "line":
		return NewLineEncoder(w), nil
	case "segments":
		return NewSegmentsEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}
