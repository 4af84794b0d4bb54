package name

import "fmt"

// session is the state of one Parse call: the untouched input, one label
// slot per input rune, and the live view over what is not yet consumed.
type session struct {
	input   string
	full    []rune
	canvas  []Label
	current *Sequence
}

func newSession(input string) *session {
	full := []rune(input)
	return &session{
		input:   input,
		full:    full,
		canvas:  make([]Label, len(full)),
		current: NewSequence(input),
	}
}

// mark paints the inclusive logical range [startIncl, endIncl] of the live
// view with label.
func (s *session) mark(startIncl, endIncl int, label Label) error {
	for i := startIncl; i <= endIncl; i++ {
		if err := s.paint(i, label); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) paint(i int, label Label) error {
	orig, err := s.current.OriginalIndex(i)
	if err != nil {
		return err
	}
	if prev := s.canvas[orig]; prev != Unknown {
		return fmt.Errorf("%w: position %d is %s, cannot relabel as %s", ErrConsistency, orig, prev, label)
	}
	s.canvas[orig] = label
	return nil
}

// remove drops the inclusive logical range [startIncl, endIncl].
func (s *session) remove(startIncl, endIncl int) error {
	return s.current.Remove(startIncl, endIncl+1)
}

// chop paints a run of spaces as Whitespace and removes it.
func (s *session) chop(start, end int) error {
	if start >= end {
		return nil
	}
	if err := s.mark(start, end-1, Whitespace); err != nil {
		return err
	}
	return s.current.Remove(start, end)
}

// normalize strips leading and trailing spaces from the live view and
// collapses interior runs of spaces to one.
func (s *session) normalize() error {
	cur := s.current

	lead := 0
	for lead < cur.Len() && cur.At(lead) == ' ' {
		lead++
	}
	if err := s.chop(0, lead); err != nil {
		return err
	}

	trail := cur.Len()
	for trail > 0 && cur.At(trail-1) == ' ' {
		trail--
	}
	if err := s.chop(trail, cur.Len()); err != nil {
		return err
	}

	for i := 0; i < cur.Len(); i++ {
		if cur.At(i) != ' ' {
			continue
		}
		j := i + 1
		for j < cur.Len() && cur.At(j) == ' ' {
			j++
		}
		if err := s.chop(i+1, j); err != nil {
			return err
		}
	}
	return nil
}

// unflip rewrites "Last, First Middle" as "First Middle Last" by flipping
// the live view around its first comma and blanking that comma. It reports
// whether a comma was found.
func (s *session) unflip() (bool, error) {
	comma := indexRune(s.current, ',')
	if comma < 0 {
		return false, nil
	}
	if err := s.current.Flip(comma); err != nil {
		return false, err
	}
	// the pivot lands where the block after it used to end
	comma = s.current.Len() - 1 - comma
	if err := s.current.setRuneAt(comma, ' '); err != nil {
		return false, err
	}
	return true, s.normalize()
}

func (s *session) String() string {
	return fmt.Sprintf("session{input=%q, current=%q}", s.input, s.current.String())
}
