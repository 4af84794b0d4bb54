package name

import (
	"fmt"
	"slices"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("hnp.name")

// Stage labels the leftmost match of Pattern in the live view. Group selects
// the capture group that receives Label; the rest of the match is a separator
// and is painted Whitespace. The whole match is then removed.
type Stage struct {
	Name    string
	Label   Label
	Pattern *regexp2.Regexp
	Group   int
}

// compileStage returns nil for an empty expression, which disables the stage.
func compileStage(name string, label Label, expr string, group int, timeout time.Duration) (*Stage, error) {
	if expr == "" {
		return nil, nil
	}
	re, err := regexp2.Compile(expr, regexp2.IgnoreCase)
	if err != nil {
		return nil, fmt.Errorf("compile %s pattern: %w", name, err)
	}
	if !slices.Contains(re.GetGroupNumbers(), group) {
		return nil, fmt.Errorf("%s pattern %q has no group %d", name, expr, group)
	}
	if timeout > 0 {
		re.MatchTimeout = timeout
	}
	return &Stage{Name: name, Label: label, Pattern: re, Group: group}, nil
}

// apply runs the stage once against the session and reports whether it
// consumed anything.
func (st *Stage) apply(s *session) (bool, error) {
	if st == nil {
		return false, nil
	}
	m, err := st.Pattern.FindRunesMatch(s.current.Runes())
	if err != nil {
		return false, fmt.Errorf("stage %s: %w", st.Name, err)
	}
	if m == nil || m.Length == 0 {
		return false, nil
	}

	g := m.GroupByNumber(st.Group)
	if g == nil || (st.Group != 0 && len(g.Captures) == 0) {
		return false, fmt.Errorf("%w: stage %s matched without group %d", ErrConsistency, st.Name, st.Group)
	}
	start, end := m.Index, m.Index+m.Length
	gStart, gEnd := g.Index, g.Index+g.Length
	if gStart < start || gEnd > end {
		return false, fmt.Errorf("%w: stage %s group %d [%d,%d) outside match [%d,%d)",
			ErrConsistency, st.Name, st.Group, gStart, gEnd, start, end)
	}

	log.Debugf("%s: %q labels %q in %q", st.Name, m.String(), g.String(), s.current.String())

	if err := s.mark(start, gStart-1, Whitespace); err != nil {
		return false, err
	}
	if err := s.mark(gStart, gEnd-1, st.Label); err != nil {
		return false, err
	}
	if err := s.mark(gEnd, end-1, Whitespace); err != nil {
		return false, err
	}
	if err := s.remove(start, end-1); err != nil {
		return false, err
	}
	return true, s.normalize()
}
