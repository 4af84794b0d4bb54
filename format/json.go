package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/hnp/name"
)

type JSONEncoder struct {
	w      io.Writer
	parsed *name.Parsed
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(parsed *name.Parsed) error {
	e.parsed = parsed
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data, err := e.buildNameData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

type jsonName struct {
	Input     string         `json:"input"`
	Tokens    []jsonToken    `json:"tokens"`
	Segmented name.Segmented `json:"segmented"`
}

type jsonToken struct {
	Text  string     `json:"text"`
	Label name.Label `json:"label"`
}

func (e *JSONEncoder) buildNameData() (jsonName, error) {
	p := e.parsed
	seg, err := p.Segmented()
	if err != nil {
		return jsonName{}, err
	}
	tokens := make([]jsonToken, p.Len())
	for i := range tokens {
		tokens[i] = jsonToken{Text: p.Token(i), Label: p.Label(i)}
	}
	return jsonName{
		Input:     p.Input(),
		Tokens:    tokens,
		Segmented: seg,
	}, nil
}
