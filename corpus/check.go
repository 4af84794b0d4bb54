package corpus

import (
	"fmt"

	"github.com/dhamidi/hnp/name"
)

// Mismatch is one segment whose parsed value differs from the corpus.
type Mismatch struct {
	Field string
	Want  string
	Got   string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: want %q, got %q", m.Field, m.Want, m.Got)
}

// Failure is a case that did not parse as expected.
type Failure struct {
	Case       Case
	Got        name.Segmented
	Err        error
	Mismatches []Mismatch
}

// Report summarizes a Check run.
type Report struct {
	Total    int
	Failures []Failure
}

func (r Report) Passed() int {
	return r.Total - len(r.Failures)
}

func (r Report) OK() bool {
	return len(r.Failures) == 0
}

// Check parses every case and compares each segment with the corpus.
func Check(p *name.Parser, cases []Case) Report {
	report := Report{Total: len(cases)}
	for _, c := range cases {
		if f, ok := checkCase(p, c); !ok {
			report.Failures = append(report.Failures, f)
		}
	}
	log.Infof("checked %d names, %d failed", report.Total, len(report.Failures))
	return report
}

func checkCase(p *name.Parser, c Case) (Failure, bool) {
	fail := Failure{Case: c}
	parsed, err := p.Parse(c.Name)
	if err != nil {
		fail.Err = err
		return fail, false
	}
	got, err := parsed.Segmented()
	if err != nil {
		fail.Err = fmt.Errorf("segment %q: %w", c.Name, err)
		return fail, false
	}
	fail.Got = got

	want := c.Want
	for _, f := range fields {
		if w, g := *f.get(&want), *f.get(&got); w != g {
			fail.Mismatches = append(fail.Mismatches, Mismatch{Field: f.name, Want: w, Got: g})
		}
	}
	if len(fail.Mismatches) > 0 {
		log.Debugf("line %d: %q: %v", c.Line, c.Name, fail.Mismatches)
		return fail, false
	}
	return fail, true
}
