package name

import (
	"cmp"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/goccy/go-yaml"
)

// DefaultTrimChars are stripped from both ends of every emitted token when
// trimming is enabled.
const DefaultTrimChars = `()"',;*\/| `

// Config holds the locale-specific data the pipeline runs on. A Config is
// copied into a Parser at construction and never mutated afterwards.
type Config struct {
	Salutations  []string `yaml:"salutations"`
	Suffixes     []string `yaml:"suffixes"`
	Postnominals []string `yaml:"postnominals"`
	// Prefixes are surname particles kept with the last name ("van der").
	Prefixes   []string `yaml:"prefixes"`
	TrimChars  string   `yaml:"trimChars"`
	TrimTokens bool     `yaml:"trimTokens"`
	// Patterns replaces the generated expression of individual stages.
	Patterns Patterns `yaml:"patterns,omitempty"`
}

// Patterns are optional per-stage expression overrides. An override must keep
// the capture group its stage labels: group 0 for Nickname and Last, group 1
// for every other stage.
type Patterns struct {
	Nickname       string `yaml:"nickname,omitempty"`
	Postnominal    string `yaml:"postnominal,omitempty"`
	Suffix         string `yaml:"suffix,omitempty"`
	Last           string `yaml:"last,omitempty"`
	Salutation     string `yaml:"salutation,omitempty"`
	LeadingInitial string `yaml:"leadingInitial,omitempty"`
	First          string `yaml:"first,omitempty"`
	MiddleInitial  string `yaml:"middleInitial,omitempty"`
	Middle         string `yaml:"middle,omitempty"`
}

// DefaultConfig returns the English word lists.
func DefaultConfig() Config {
	return Config{
		Salutations: []string{
			"mr", "master", "mister", "mrs", "miss", "ms", "dr", "prof",
			"rev", "fr", "judge", "honorable", "hon",
		},
		Suffixes: []string{
			"jr", "sr", "2", "ii", "iii", "iv", "v", "senior", "junior",
			"2d", "2nd", "3d", "3rd", "4th",
		},
		Postnominals: []string{
			"phd", "ph.d.", "ph.d", "esq", "esquire", "apr", "rph", "pe", "md",
			"ma", "dmd", "cme", "dds", "cpa", "dvm", "rdh", "r.d.h.", "d.d.s.",
			"d.m.d.",
		},
		Prefixes: []string{
			"bar", "ben", "bin", "da", "dal", "de la", "de", "del", "der", "di",
			"ibn", "la", "le", "san", "st", "ste", "van", "van der", "van den",
			"vel", "von",
		},
		TrimChars:  DefaultTrimChars,
		TrimTokens: true,
	}
}

// LoadConfig reads a YAML (or JSON) file on top of DefaultConfig. Lists
// present in the file replace the default lists.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := DecodeConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig decodes YAML on top of DefaultConfig and validates the result.
func DecodeConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects blank words, which would match everywhere.
func (c Config) Validate() error {
	lists := []struct {
		name  string
		words []string
	}{
		{"salutations", c.Salutations},
		{"suffixes", c.Suffixes},
		{"postnominals", c.Postnominals},
		{"prefixes", c.Prefixes},
	}
	for _, l := range lists {
		for i, w := range l.words {
			if strings.TrimSpace(w) == "" {
				return fmt.Errorf("%w: config %s[%d] is blank", ErrValidation, l.name, i)
			}
		}
	}
	return nil
}

// alternation joins escaped words longest first, each followed by tail.
func alternation(words []string, tail string) string {
	sorted := slices.Clone(words)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})
	parts := make([]string, len(sorted))
	for i, w := range sorted {
		parts[i] = regexp2.Escape(strings.TrimSpace(w)) + tail
	}
	return strings.Join(parts, "|")
}

func (c Config) nicknamePattern() string {
	if c.Patterns.Nickname != "" {
		return c.Patterns.Nickname
	}
	// 'Bob', "Bob", (Bob), ("Bob")
	const body = `[\p{L} ']+?`
	return `(?:(['*"|\\]{1,2})` + body + `\1|\((['*"|\\]{1,2})` + body + `\2\)|\(` + body + `\))`
}

func (c Config) postnominalPattern() string {
	if c.Patterns.Postnominal != "" {
		return c.Patterns.Postnominal
	}
	if len(c.Postnominals) == 0 {
		return ""
	}
	return `[,| ]+((?:` + alternation(c.Postnominals, `\.*`) + `)$)`
}

func (c Config) suffixPattern() string {
	if c.Patterns.Suffix != "" {
		return c.Patterns.Suffix
	}
	if len(c.Suffixes) == 0 {
		return ""
	}
	return `[,| ]+((?:` + alternation(c.Suffixes, `\.*`) + `)$)`
}

func (c Config) lastPattern() string {
	if c.Patterns.Last != "" {
		return c.Patterns.Last
	}
	// "X y Y" conjunctions and surname particles stay with the last word
	joined := `[^ ]+ y `
	if len(c.Prefixes) > 0 {
		joined += `|` + alternation(c.Prefixes, ` `)
	}
	return `(?!^)\b(?:` + joined + `)*[^ ]+$`
}

func (c Config) salutationPattern() string {
	if c.Patterns.Salutation != "" {
		return c.Patterns.Salutation
	}
	if len(c.Salutations) == 0 {
		return ""
	}
	return `^((?:` + alternation(c.Salutations, "") + `)\b\.?)(?:[.\s]+|$)`
}

func (c Config) leadingInitialPattern() string {
	if c.Patterns.LeadingInitial != "" {
		return c.Patterns.LeadingInitial
	}
	return `^(.\.*)(?= \p{L}{2})`
}

func (c Config) firstPattern() string {
	if c.Patterns.First != "" {
		return c.Patterns.First
	}
	return `^([^ ]+)`
}

func (c Config) middleInitialPattern() string {
	if c.Patterns.MiddleInitial != "" {
		return c.Patterns.MiddleInitial
	}
	return `^(\w\.?)(?!\w)`
}

func (c Config) middlePattern() string {
	if c.Patterns.Middle != "" {
		return c.Patterns.Middle
	}
	return `^(\w[\w'-]*\w\.?)`
}
