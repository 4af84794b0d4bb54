package name

import (
	"errors"
	"strings"
	"testing"
)

const digits = "0123456789"

func assertView(t *testing.T, want string, v View) {
	t.Helper()
	if v.Len() != len([]rune(want)) {
		t.Fatalf("Len() = %d, want %d (%q)", v.Len(), len([]rune(want)), v.String())
	}
	if got := v.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	for i, r := range []rune(want) {
		if got := v.At(i); got != r {
			t.Errorf("At(%d) = %q, want %q in %q", i, got, r, want)
		}
	}
}

// assertRedirects checks that every visible rune is the input rune at its
// original index and that no two visible runes share an original index.
func assertRedirects(t *testing.T, input string, v View) {
	t.Helper()
	in := []rune(input)
	seen := make(map[int]bool)
	for i := 0; i < v.Len(); i++ {
		orig, err := v.OriginalIndex(i)
		if err != nil {
			t.Fatalf("OriginalIndex(%d): %v", i, err)
		}
		if orig < 0 || orig >= len(in) {
			t.Fatalf("OriginalIndex(%d) = %d outside input", i, orig)
		}
		if seen[orig] {
			t.Fatalf("OriginalIndex(%d) = %d used twice", i, orig)
		}
		seen[orig] = true
		if v.At(i) != in[orig] {
			t.Errorf("At(%d) = %q, input[%d] = %q", i, v.At(i), orig, in[orig])
		}
	}
}

func TestSequenceRoundTrip(t *testing.T) {
	for _, s := range []string{"", "a", digits, "Sérgio Vieira de Mello", "  spaced  "} {
		seq := NewSequence(s)
		if got := seq.String(); got != s {
			t.Errorf("String() = %q, want %q", got, s)
		}
		assertRedirects(t, s, seq)
	}
}

func TestSequenceNoRemoves(t *testing.T) {
	seq := NewSequence(digits)
	assertView(t, digits, seq)
	for i := 0; i < len(digits); i++ {
		orig, err := seq.OriginalIndex(i)
		if err != nil {
			t.Fatalf("OriginalIndex(%d): %v", i, err)
		}
		if orig != i {
			t.Errorf("OriginalIndex(%d) = %d, want %d", i, orig, i)
		}
	}

	tests := []struct {
		start, end int
		want       string
	}{
		{0, 10, digits},
		{0, 9, "012345678"},
		{0, 8, "01234567"},
		{0, 6, "012345"},
		{1, 10, "123456789"},
		{4, 10, "456789"},
		{5, 8, "567"},
		{3, 3, ""},
	}
	for _, tt := range tests {
		sub, err := seq.Sub(tt.start, tt.end)
		if err != nil {
			t.Fatalf("Sub(%d, %d): %v", tt.start, tt.end, err)
		}
		assertView(t, tt.want, sub)
	}
}

func TestSequenceRemoveFirstRepeatedly(t *testing.T) {
	seq := NewSequence(digits)
	want := digits
	for seq.Len() > 0 {
		if err := seq.Remove(0, 1); err != nil {
			t.Fatal(err)
		}
		want = want[1:]
		assertView(t, want, seq)
	}
}

func TestSequenceRemoveLastRepeatedly(t *testing.T) {
	seq := NewSequence(digits)
	want := digits
	for seq.Len() > 0 {
		if err := seq.Remove(seq.Len()-1, seq.Len()); err != nil {
			t.Fatal(err)
		}
		want = want[:len(want)-1]
		assertView(t, want, seq)
	}
}

func TestSequenceRemoveNothing(t *testing.T) {
	seq := NewSequence(digits)
	if err := seq.Remove(1, 1); err != nil {
		t.Fatal(err)
	}
	assertView(t, digits, seq)
	if err := seq.Remove(seq.Len(), seq.Len()); err != nil {
		t.Fatal(err)
	}
	assertView(t, digits, seq)
}

func TestSequenceRemoveOverlapping(t *testing.T) {
	seq := NewSequence(digits)
	steps := []struct {
		start, end int
		want       string
	}{
		{1, 3, "03456789"},
		{3, 6, "03489"},
		{0, 3, "89"},
		{1, 2, "8"},
		{0, 1, ""},
	}
	for _, st := range steps {
		if err := seq.Remove(st.start, st.end); err != nil {
			t.Fatalf("Remove(%d, %d): %v", st.start, st.end, err)
		}
		assertView(t, st.want, seq)
		assertRedirects(t, digits, seq)
	}
}

func TestSequenceRemoveShiftsRedirects(t *testing.T) {
	seq := NewSequence(digits)
	if err := seq.Remove(0, 2); err != nil {
		t.Fatal(err)
	}
	before := make([]int, seq.Len())
	for i := range before {
		before[i], _ = seq.OriginalIndex(i)
	}

	a, b := 2, 5
	if err := seq.Remove(a, b); err != nil {
		t.Fatal(err)
	}
	if seq.Len() != len(before)-(b-a) {
		t.Fatalf("Len() = %d, want %d", seq.Len(), len(before)-(b-a))
	}
	for i := 0; i < seq.Len(); i++ {
		got, _ := seq.OriginalIndex(i)
		want := before[i]
		if i >= a {
			want = before[i+(b-a)]
		}
		if got != want {
			t.Errorf("OriginalIndex(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestSequenceRemoveThroughWindows(t *testing.T) {
	seq := NewSequence(digits)
	if err := seq.Remove(1, 3); err != nil {
		t.Fatal(err)
	}
	assertView(t, "03456789", seq)

	sub1, err := seq.Sub(0, 4)
	if err != nil {
		t.Fatal(err)
	}
	assertView(t, "0345", sub1)
	if err := sub1.Remove(1, 2); err != nil {
		t.Fatal(err)
	}
	assertView(t, "045", sub1)
	assertView(t, "0456789", seq)

	sub2, err := sub1.Sub(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	assertView(t, "45", sub2)
	if err := sub2.Remove(1, 2); err != nil {
		t.Fatal(err)
	}
	assertView(t, "4", sub2)
	assertView(t, "04", sub1)
	assertView(t, "046789", seq)
	assertRedirects(t, digits, seq)
}

func TestSequenceIndexErrors(t *testing.T) {
	seq := NewSequence("abc")
	tests := []struct {
		name string
		fn   func() error
	}{
		{"remove negative", func() error { return seq.Remove(-1, 1) }},
		{"remove past end", func() error { return seq.Remove(1, 4) }},
		{"remove inverted", func() error { return seq.Remove(2, 1) }},
		{"original negative", func() error { _, err := seq.OriginalIndex(-1); return err }},
		{"original past end", func() error { _, err := seq.OriginalIndex(3); return err }},
		{"flip past end", func() error { return seq.Flip(3) }},
		{"flip negative", func() error { return seq.Flip(-1) }},
		{"sub past end", func() error { _, err := seq.Sub(0, 4); return err }},
		{"sub negative", func() error { _, err := seq.Sub(-1, 2); return err }},
		{"set past end", func() error { return seq.setRuneAt(3, ' ') }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errors.Is(err, ErrIndex) {
				t.Errorf("err = %v, want ErrIndex", err)
			}
		})
	}
	assertView(t, "abc", seq)
}

func TestSequenceOriginalIndexAfterRemove(t *testing.T) {
	seq := NewSequence(digits)
	if err := seq.Remove(0, 8); err != nil {
		t.Fatal(err)
	}
	if _, err := seq.OriginalIndex(2); !errors.Is(err, ErrIndex) {
		t.Errorf("err = %v, want ErrIndex for removed tail", err)
	}
}

func TestSequenceMoveRight(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{1, "ab,cdef"},
		{2, "abc,def"},
		{3, "abcd,ef"},
		{4, "abcde,f"},
		{5, "abcdef,"},
	}
	for _, tt := range tests {
		seq := NewSequence("a,bcdef")
		seq.moveRight(1, tt.count)
		assertView(t, tt.want, seq)
	}
}

func TestSequenceMoveLeft(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{1, "abcd,ef"},
		{2, "abc,def"},
		{3, "ab,cdef"},
		{4, "a,bcdef"},
		{5, ",abcdef"},
	}
	for _, tt := range tests {
		seq := NewSequence("abcde,f")
		seq.moveLeft(5, tt.count)
		assertView(t, tt.want, seq)
	}
}

// naiveFlip copies both blocks and writes them back swapped.
func naiveFlip(s string, pivot int) string {
	r := []rune(s)
	out := append([]rune{}, r[pivot+1:]...)
	out = append(out, r[pivot])
	out = append(out, r[:pivot]...)
	return string(out)
}

func TestSequenceFlip(t *testing.T) {
	tests := []struct {
		input string
		pivot int
		want  string
	}{
		{"a,b", 1, "b,a"},
		{"a,bc", 1, "bc,a"},
		{"a,bcd", 1, "bcd,a"},
		{"a,bcde", 1, "bcde,a"},
		{"a,bcdef", 1, "bcdef,a"},
		{"ab,c", 2, "c,ab"},
		{"ab,cd", 2, "cd,ab"},
		{"ab,cde", 2, "cde,ab"},
		{"ab,cdef", 2, "cdef,ab"},
		{"ab,cdefg", 2, "cdefg,ab"},
		{"ab,cdefgh", 2, "cdefgh,ab"},
		{"ab,cdefghi", 2, "cdefghi,ab"},
		{"abc,d", 3, "d,abc"},
		{"abc,de", 3, "de,abc"},
		{"abc,def", 3, "def,abc"},
		{"abc,defg", 3, "defg,abc"},
		{"abc,defgh", 3, "defgh,abc"},
		{"abc,defghi", 3, "defghi,abc"},
		{"abc,defghij", 3, "defghij,abc"},
		{",abc", 0, "abc,"},
		{"abc,", 3, ",abc"},
		{",", 0, ","},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			seq := NewSequence(tt.input)
			if err := seq.Flip(tt.pivot); err != nil {
				t.Fatal(err)
			}
			assertView(t, tt.want, seq)
			assertRedirects(t, tt.input, seq)
		})
	}
}

func TestSequenceFlipMatchesNaive(t *testing.T) {
	const input = "Vieira de Mello,Sergio"
	for p := 0; p < len(input); p++ {
		seq := NewSequence(input)
		if err := seq.Flip(p); err != nil {
			t.Fatalf("Flip(%d): %v", p, err)
		}
		assertView(t, naiveFlip(input, p), seq)
		assertRedirects(t, input, seq)
	}
}

func TestSequenceFlipInvolution(t *testing.T) {
	const input = "abcdefghij"
	n := len(input)
	for p := 0; p < n; p++ {
		seq := NewSequence(input)
		if err := seq.Flip(p); err != nil {
			t.Fatalf("Flip(%d): %v", p, err)
		}
		if err := seq.Flip(n - 1 - p); err != nil {
			t.Fatalf("Flip(%d): %v", n-1-p, err)
		}
		assertView(t, input, seq)
		for i := 0; i < n; i++ {
			if orig, _ := seq.OriginalIndex(i); orig != i {
				t.Errorf("p=%d: OriginalIndex(%d) = %d", p, i, orig)
			}
		}
	}
}

func TestSequenceFlipAfterRemove(t *testing.T) {
	const input = "xxAsh, Stevexx"
	seq := NewSequence(input)
	if err := seq.Remove(0, 2); err != nil {
		t.Fatal(err)
	}
	if err := seq.Remove(seq.Len()-2, seq.Len()); err != nil {
		t.Fatal(err)
	}
	if err := seq.Flip(strings.IndexRune(seq.String(), ',')); err != nil {
		t.Fatal(err)
	}
	assertView(t, " Steve,Ash", seq)
	assertRedirects(t, input, seq)
}

func TestWindowFlip(t *testing.T) {
	tests := []struct {
		input      string
		start, end int
		pivot      int
		want       string
	}{
		{"[ab,cde]", 1, 7, 2, "[cde,ab]"},
		{"__abc,d__", 2, 7, 3, "__d,abc__"},
		{"--ab,cd--", 2, 7, 2, "--cd,ab--"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			seq := NewSequence(tt.input)
			w, err := seq.Sub(tt.start, tt.end)
			if err != nil {
				t.Fatal(err)
			}
			if err := w.Flip(tt.pivot); err != nil {
				t.Fatal(err)
			}
			assertView(t, tt.want, seq)
			assertRedirects(t, tt.input, seq)
		})
	}
}

func TestNestedWindows(t *testing.T) {
	seq := NewSequence("<<a,bcd>>")
	outer, err := seq.Sub(1, 8)
	if err != nil {
		t.Fatal(err)
	}
	inner, err := outer.Sub(1, 6)
	if err != nil {
		t.Fatal(err)
	}
	assertView(t, "a,bcd", inner)

	if err := inner.Flip(1); err != nil {
		t.Fatal(err)
	}
	assertView(t, "bcd,a", inner)
	assertView(t, "<bcd,a>", outer)
	assertView(t, "<<bcd,a>>", seq)

	orig, err := inner.OriginalIndex(4)
	if err != nil {
		t.Fatal(err)
	}
	if orig != 2 {
		t.Errorf("OriginalIndex(4) = %d, want 2", orig)
	}
	if _, err := inner.OriginalIndex(5); !errors.Is(err, ErrIndex) {
		t.Errorf("err = %v, want ErrIndex", err)
	}
	if err := inner.Flip(5); !errors.Is(err, ErrIndex) {
		t.Errorf("err = %v, want ErrIndex", err)
	}
	if err := inner.Remove(0, 6); !errors.Is(err, ErrIndex) {
		t.Errorf("err = %v, want ErrIndex", err)
	}
}

func TestSetRuneAt(t *testing.T) {
	seq := NewSequence("a,bcdef")
	if err := seq.Flip(1); err != nil {
		t.Fatal(err)
	}
	if err := seq.setRuneAt(5, ' '); err != nil {
		t.Fatal(err)
	}
	assertView(t, "bcdef a", seq)
	if orig, _ := seq.OriginalIndex(5); orig != 1 {
		t.Errorf("OriginalIndex(5) = %d, want 1", orig)
	}
}
