package name

import "fmt"

// Parsed is the result of Parse: the input and its tokens with one label
// per token, in input order.
type Parsed struct {
	input  string
	tokens []string
	labels []Label
}

func NewParsed(input string, tokens []string, labels []Label) (*Parsed, error) {
	if len(tokens) != len(labels) {
		return nil, fmt.Errorf("%w: %d tokens but %d labels", ErrValidation, len(tokens), len(labels))
	}
	return &Parsed{input: input, tokens: tokens, labels: labels}, nil
}

func (p *Parsed) Input() string { return p.input }
func (p *Parsed) Tokens() []string { return p.tokens }
func (p *Parsed) Labels() []Label { return p.labels }
func (p *Parsed) Len() int { return len(p.tokens) }
func (p *Parsed) Token(i int) string { return p.tokens[i] }
func (p *Parsed) Label(i int) Label { return p.labels[i] }

// TokensWithLabel returns the tokens carrying label, in input order.
func (p *Parsed) TokensWithLabel(label Label) []string {
	var out []string
	for i, l := range p.labels {
		if l == label {
			out = append(out, p.tokens[i])
		}
	}
	return out
}

func (p *Parsed) String() string {
	return fmt.Sprintf("Parsed{input=%q, tokens=%q, labels=%v}", p.input, p.tokens, p.labels)
}

// Segmented holds one string per name part. Several tokens of the same part
// are joined with a single space.
type Segmented struct {
	Salutation  string `json:"salutation,omitempty" yaml:"salutation,omitempty"`
	LeadingInit string `json:"leadingInit,omitempty" yaml:"leadingInit,omitempty"`
	First       string `json:"first,omitempty" yaml:"first,omitempty"`
	Nicknames   string `json:"nicknames,omitempty" yaml:"nicknames,omitempty"`
	Middle      string `json:"middle,omitempty" yaml:"middle,omitempty"`
	Last        string `json:"last,omitempty" yaml:"last,omitempty"`
	Suffix      string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Postnominal string `json:"postnominal,omitempty" yaml:"postnominal,omitempty"`
}

// Segmented folds the tokens into name parts. Middle initials join the
// middle name; Unknown and Whitespace tokens are skipped.
func (p *Parsed) Segmented() (Segmented, error) {
	var seg Segmented
	for i, tok := range p.tokens {
		var dst *string
		switch p.labels[i] {
		case Salutation:
			dst = &seg.Salutation
		case FirstInitial:
			dst = &seg.LeadingInit
		case First:
			dst = &seg.First
		case Nickname:
			dst = &seg.Nicknames
		case Middle, MiddleInitial:
			dst = &seg.Middle
		case Last:
			dst = &seg.Last
		case Suffix:
			dst = &seg.Suffix
		case Postnominal:
			dst = &seg.Postnominal
		case Unknown, Whitespace:
			continue
		default:
			return Segmented{}, fmt.Errorf("%w: cannot segment label %s", ErrValidation, p.labels[i])
		}
		if *dst == "" {
			*dst = tok
		} else {
			*dst += " " + tok
		}
	}
	return seg, nil
}
