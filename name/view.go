package name

import "fmt"

// View is a logically shrinking, logically reorderable character sequence
// that remembers, for every visible character, its index in the original
// input. Indices are rune indices.
type View interface {
	Len() int
	At(i int) rune
	OriginalIndex(i int) (int, error)
	// Remove logically deletes the half-open range [start, end).
	Remove(start, end int) error
	// Flip trades the places of the block before pivot and the block after
	// it; the character at pivot stays between them.
	Flip(pivot int) error
	Sub(start, end int) (View, error)
	Runes() []rune
	String() string
}

// parent is what a Window delegates to: the root Sequence or another Window.
type parent interface {
	View
	flipRange(start, pivot, endIncl int) error
}

// Sequence is the root view. It owns a private copy of the input and the
// redirect map from logical index to index in that copy.
type Sequence struct {
	buf      []rune
	redirect []int
	length   int
}

// NewSequence returns a view over s with the identity redirect map.
func NewSequence(s string) *Sequence {
	buf := []rune(s)
	redirect := make([]int, len(buf))
	for i := range redirect {
		redirect[i] = i
	}
	return &Sequence{
		buf:      buf,
		redirect: redirect,
		length:   len(buf),
	}
}

func (s *Sequence) Len() int {
	return s.length
}

func (s *Sequence) At(i int) rune {
	if i < 0 || i >= s.length {
		panic(fmt.Sprintf("name: index %d out of range [0:%d]", i, s.length))
	}
	return s.buf[s.redirect[i]]
}

func (s *Sequence) OriginalIndex(i int) (int, error) {
	if i < 0 || i >= s.length {
		return 0, fmt.Errorf("%w: original index of %d, length %d", ErrIndex, i, s.length)
	}
	return s.redirect[i], nil
}

// Remove closes the gap by shifting every redirect entry at and after end
// left to start. The backing buffer is untouched.
func (s *Sequence) Remove(start, end int) error {
	if start < 0 || end > s.length || start > end {
		return fmt.Errorf("%w: remove [%d,%d) of length %d", ErrIndex, start, end, s.length)
	}
	copy(s.redirect[start:], s.redirect[end:s.length])
	s.length -= end - start
	return nil
}

func (s *Sequence) Flip(pivot int) error {
	if pivot < 0 || pivot >= s.length {
		return fmt.Errorf("%w: flip at %d, length %d", ErrIndex, pivot, s.length)
	}
	return s.flipRange(0, pivot, s.length-1)
}

// flipRange reorders [start, endIncl] so that the block after pivot comes
// first, then the pivot element, then the block before pivot. It moves
// redirect entries in place and uses no scratch beyond a single element.
func (s *Sequence) flipRange(start, pivot, endIncl int) error {
	if start < 0 || start > pivot || pivot > endIncl || endIncl >= s.length {
		return fmt.Errorf("%w: flip [%d,%d] at %d, length %d", ErrIndex, start, endIncl, pivot, s.length)
	}
	before := pivot - start
	after := endIncl - pivot

	switch {
	case before == after:
		s.swap(start, pivot+1, before)
	case after > before:
		// small block on the left: walk it to the end, then slide the pivot
		// back over the big block
		s.rotateLeft(start, endIncl, before)
		s.moveRight(start, after)
	default:
		s.rotateRight(start, endIncl, after)
		s.moveLeft(endIncl, before)
	}
	return nil
}

func (s *Sequence) rotateLeft(start, endIncl, count int) {
	r := s.redirect
	for range count {
		first := r[start]
		copy(r[start:endIncl], r[start+1:endIncl+1])
		r[endIncl] = first
	}
}

func (s *Sequence) rotateRight(start, endIncl, count int) {
	r := s.redirect
	for range count {
		last := r[endIncl]
		copy(r[start+1:endIncl+1], r[start:endIncl])
		r[start] = last
	}
}

// moveRight carries the element at start count places to the right.
func (s *Sequence) moveRight(start, count int) {
	r := s.redirect
	for i := 0; i < count; i++ {
		r[start+i], r[start+i+1] = r[start+i+1], r[start+i]
	}
}

// moveLeft carries the element at start count places to the left.
func (s *Sequence) moveLeft(start, count int) {
	r := s.redirect
	for i := 0; i < count; i++ {
		r[start-i-1], r[start-i] = r[start-i], r[start-i-1]
	}
}

func (s *Sequence) swap(a, b, n int) {
	r := s.redirect
	for i := 0; i < n; i++ {
		r[a+i], r[b+i] = r[b+i], r[a+i]
	}
}

func (s *Sequence) Sub(start, end int) (View, error) {
	if start < 0 || end > s.length || start > end {
		return nil, fmt.Errorf("%w: sub [%d,%d) of length %d", ErrIndex, start, end, s.length)
	}
	return &Window{parent: s, offset: start, length: end - start}, nil
}

// setRuneAt overwrites the backing character behind logical index i. The
// parser uses it once, to turn the relocated comma into a space.
func (s *Sequence) setRuneAt(i int, r rune) error {
	orig, err := s.OriginalIndex(i)
	if err != nil {
		return err
	}
	s.buf[orig] = r
	return nil
}

func (s *Sequence) Runes() []rune {
	out := make([]rune, s.length)
	for i := range out {
		out[i] = s.buf[s.redirect[i]]
	}
	return out
}

func (s *Sequence) String() string {
	return string(s.Runes())
}

// Window is a sub-range of a parent view. Every operation is translated by
// the window's offset and handed to the immediate parent, so nested windows
// compose one level at a time. A window only tracks removals made through
// itself or its descendants.
type Window struct {
	parent parent
	offset int
	length int
}

func (w *Window) Len() int {
	return w.length
}

func (w *Window) At(i int) rune {
	if i < 0 || i >= w.length {
		panic(fmt.Sprintf("name: index %d out of range [0:%d]", i, w.length))
	}
	return w.parent.At(w.offset + i)
}

func (w *Window) OriginalIndex(i int) (int, error) {
	if i < 0 || i >= w.length {
		return 0, fmt.Errorf("%w: original index of %d, window length %d", ErrIndex, i, w.length)
	}
	return w.parent.OriginalIndex(w.offset + i)
}

func (w *Window) Remove(start, end int) error {
	if start < 0 || end > w.length || start > end {
		return fmt.Errorf("%w: remove [%d,%d) of window length %d", ErrIndex, start, end, w.length)
	}
	if err := w.parent.Remove(w.offset+start, w.offset+end); err != nil {
		return err
	}
	w.length -= end - start
	return nil
}

func (w *Window) Flip(pivot int) error {
	if pivot < 0 || pivot >= w.length {
		return fmt.Errorf("%w: flip at %d, window length %d", ErrIndex, pivot, w.length)
	}
	return w.flipRange(0, pivot, w.length-1)
}

func (w *Window) flipRange(start, pivot, endIncl int) error {
	if start < 0 || start > pivot || pivot > endIncl || endIncl >= w.length {
		return fmt.Errorf("%w: flip [%d,%d] at %d, window length %d", ErrIndex, start, endIncl, pivot, w.length)
	}
	return w.parent.flipRange(w.offset+start, w.offset+pivot, w.offset+endIncl)
}

func (w *Window) Sub(start, end int) (View, error) {
	if start < 0 || end > w.length || start > end {
		return nil, fmt.Errorf("%w: sub [%d,%d) of window length %d", ErrIndex, start, end, w.length)
	}
	return &Window{parent: w, offset: start, length: end - start}, nil
}

func (w *Window) Runes() []rune {
	out := make([]rune, w.length)
	for i := range out {
		out[i] = w.parent.At(w.offset + i)
	}
	return out
}

func (w *Window) String() string {
	return string(w.Runes())
}

// indexRune returns the logical index of the first r in v, or -1.
func indexRune(v View, r rune) int {
	for i := 0; i < v.Len(); i++ {
		if v.At(i) == r {
			return i
		}
	}
	return -1
}
