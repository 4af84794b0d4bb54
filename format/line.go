package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/hnp/corpus"
	"github.com/dhamidi/hnp/name"
)

// LineEncoder writes the input on its own line, then one
// "label<TAB>token" line per token, then a blank line.
type LineEncoder struct {
	w      io.Writer
	parsed *name.Parsed
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(parsed *name.Parsed) error {
	e.parsed = parsed
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	p := e.parsed

	fmt.Fprintf(&sb, "%s\n", p.Input())
	for i := 0; i < p.Len(); i++ {
		fmt.Fprintf(&sb, "%s\t%s\n", p.Label(i), p.Token(i))
	}
	sb.WriteString("\n")

	return []byte(sb.String()), nil
}

// SegmentsEncoder writes one corpus line per name, so its output can be
// fed back to the check command.
type SegmentsEncoder struct {
	w      io.Writer
	parsed *name.Parsed
}

func NewSegmentsEncoder(w io.Writer) *SegmentsEncoder {
	return &SegmentsEncoder{w: w}
}

func (e *SegmentsEncoder) Encode(parsed *name.Parsed) error {
	e.parsed = parsed
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *SegmentsEncoder) MarshalText() ([]byte, error) {
	seg, err := e.parsed.Segmented()
	if err != nil {
		return nil, err
	}
	return []byte(corpus.Format(e.parsed.Input(), seg) + "\n"), nil
}
