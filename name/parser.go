package name

import (
	"fmt"
	"time"
)

type Option func(*Parser)

// WithConfig replaces the whole configuration, including the trim settings.
func WithConfig(cfg Config) Option {
	return func(p *Parser) {
		p.cfg = cfg
	}
}

func WithTrim(trim bool) Option {
	return func(p *Parser) {
		p.cfg.TrimTokens = trim
	}
}

func WithTrimChars(chars string) Option {
	return func(p *Parser) {
		p.cfg.TrimChars = chars
	}
}

// WithMatchTimeout bounds every single pattern search.
func WithMatchTimeout(d time.Duration) Option {
	return func(p *Parser) {
		p.timeout = d
	}
}

// Parser splits personal names into labeled tokens. It is immutable once
// built and safe for concurrent use.
type Parser struct {
	cfg     Config
	timeout time.Duration

	nickname    *Stage
	postnominal *Stage
	suffix      *Stage
	last        *Stage
	salutation  *Stage
	leadingInit *Stage
	first       *Stage
	middleInit  *Stage
	middle      *Stage
}

// New compiles the stage patterns. Options apply in order, so a WithTrim
// after WithConfig overrides the config's trim setting.
func New(opts ...Option) (*Parser, error) {
	p := &Parser{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.cfg.Validate(); err != nil {
		return nil, err
	}

	stages := []struct {
		dst   **Stage
		name  string
		label Label
		expr  string
		group int
	}{
		{&p.nickname, "nickname", Nickname, p.cfg.nicknamePattern(), 0},
		{&p.postnominal, "postnominal", Postnominal, p.cfg.postnominalPattern(), 1},
		{&p.suffix, "suffix", Suffix, p.cfg.suffixPattern(), 1},
		{&p.last, "last", Last, p.cfg.lastPattern(), 0},
		{&p.salutation, "salutation", Salutation, p.cfg.salutationPattern(), 1},
		{&p.leadingInit, "leading initial", FirstInitial, p.cfg.leadingInitialPattern(), 1},
		{&p.first, "first", First, p.cfg.firstPattern(), 1},
		{&p.middleInit, "middle initial", MiddleInitial, p.cfg.middleInitialPattern(), 1},
		{&p.middle, "middle", Middle, p.cfg.middlePattern(), 1},
	}
	for _, s := range stages {
		st, err := compileStage(s.name, s.label, s.expr, s.group, p.timeout)
		if err != nil {
			return nil, err
		}
		*s.dst = st
	}
	return p, nil
}

// MustNew is like New but panics on a bad configuration.
func MustNew(opts ...Option) *Parser {
	p, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Config returns a copy of the configuration the parser was built with.
func (p *Parser) Config() Config {
	return p.cfg
}

// Parse labels every part of fullName. Any input, including the empty
// string, is valid; an error means the stage configuration is broken.
func (p *Parser) Parse(fullName string) (*Parsed, error) {
	s := newSession(fullName)
	if err := p.run(s); err != nil {
		return nil, fmt.Errorf("parse %q: %w", fullName, err)
	}
	if s.current.Len() > 0 {
		log.Warningf("unlabeled residue %q in %q", s.current.String(), fullName)
	}

	tokens, labels, err := tokenize(s.full, s.canvas, p.cfg.TrimTokens, p.cfg.TrimChars)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", fullName, err)
	}
	return NewParsed(fullName, tokens, labels)
}

func (p *Parser) run(s *session) error {
	if err := s.normalize(); err != nil {
		return err
	}

	// the nickname stage runs once even if more fragments follow
	for _, st := range []*Stage{p.nickname, p.postnominal, p.suffix} {
		if _, err := st.apply(s); err != nil {
			return err
		}
	}

	if _, err := s.unflip(); err != nil {
		return err
	}

	for _, st := range []*Stage{p.last, p.salutation, p.leadingInit, p.first} {
		if _, err := st.apply(s); err != nil {
			return err
		}
	}

	for {
		initial, err := p.middleInit.apply(s)
		if err != nil {
			return err
		}
		word, err := p.middle.apply(s)
		if err != nil {
			return err
		}
		if !initial && !word {
			return nil
		}
	}
}
