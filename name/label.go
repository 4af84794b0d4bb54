package name

import "fmt"

// Label is the semantic category of a span of the input.
type Label uint8

const (
	Unknown Label = iota
	Salutation
	Nickname
	First
	FirstInitial
	Middle
	MiddleInitial
	Last
	Postnominal
	Suffix
	Whitespace
)

var labelNames = [...]string{
	Unknown:       "Unknown",
	Salutation:    "Salutation",
	Nickname:      "Nickname",
	First:         "First",
	FirstInitial:  "FirstInitial",
	Middle:        "Middle",
	MiddleInitial: "MiddleInitial",
	Last:          "Last",
	Postnominal:   "Postnominal",
	Suffix:        "Suffix",
	Whitespace:    "Whitespace",
}

func (l Label) String() string {
	if int(l) < len(labelNames) {
		return labelNames[l]
	}
	return fmt.Sprintf("Label(%d)", uint8(l))
}

// ParseLabel returns the label with the given name.
func ParseLabel(s string) (Label, error) {
	for i, n := range labelNames {
		if n == s {
			return Label(i), nil
		}
	}
	return Unknown, fmt.Errorf("%w: unknown label %q", ErrValidation, s)
}

func (l Label) MarshalText() ([]byte, error) {
	if int(l) >= len(labelNames) {
		return nil, fmt.Errorf("%w: unknown label %d", ErrValidation, uint8(l))
	}
	return []byte(labelNames[l]), nil
}

func (l *Label) UnmarshalText(text []byte) error {
	parsed, err := ParseLabel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
