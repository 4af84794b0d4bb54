// Package corpus reads and checks files of names with their expected
// segmentation.
//
// Each non-blank line holds nine pipe-separated fields:
//
//	name|leadingInit|first|nickname|middle|last|suffix|salutation|postnominal
//
// Fields are trimmed; an empty field means the part is absent.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/hnp/name"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("hnp.corpus")

const fieldCount = 9

// Case is one corpus line.
type Case struct {
	Line int
	Name string
	Want name.Segmented
}

// fields lists the segment columns in file order.
var fields = []struct {
	name string
	get  func(*name.Segmented) *string
}{
	{"leadingInit", func(s *name.Segmented) *string { return &s.LeadingInit }},
	{"first", func(s *name.Segmented) *string { return &s.First }},
	{"nickname", func(s *name.Segmented) *string { return &s.Nicknames }},
	{"middle", func(s *name.Segmented) *string { return &s.Middle }},
	{"last", func(s *name.Segmented) *string { return &s.Last }},
	{"suffix", func(s *name.Segmented) *string { return &s.Suffix }},
	{"salutation", func(s *name.Segmented) *string { return &s.Salutation }},
	{"postnominal", func(s *name.Segmented) *string { return &s.Postnominal }},
}

// ParseLine decodes a single corpus line.
func ParseLine(line string) (Case, error) {
	parts := strings.Split(line, "|")
	if len(parts) != fieldCount {
		return Case{}, fmt.Errorf("expected %d fields, got %d", fieldCount, len(parts))
	}
	c := Case{Name: strings.TrimSpace(parts[0])}
	for i, f := range fields {
		*f.get(&c.Want) = strings.TrimSpace(parts[i+1])
	}
	return c, nil
}

// Format renders a name and its segmentation as a corpus line.
func Format(fullName string, seg name.Segmented) string {
	parts := make([]string, 0, fieldCount)
	parts = append(parts, fullName)
	for _, f := range fields {
		parts = append(parts, *f.get(&seg))
	}
	return strings.Join(parts, "|")
}

// Read returns every well-formed case in r. Blank lines are skipped silently
// and malformed lines with a warning.
func Read(r io.Reader) ([]Case, error) {
	var cases []Case
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := ParseLine(line)
		if err != nil {
			log.Warningf("line %d: %s: %q", lineNo, err, line)
			continue
		}
		c.Line = lineNo
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return cases, nil
}

// Load reads the corpus file at path.
func Load(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()
	return Read(f)
}
