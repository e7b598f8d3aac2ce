package source

import "testing"

func newTestSource() *Source {
	return New("test", []byte("ab\ncdéf\nlast"))
}

func TestLineCol(t *testing.T) {
	samples := []struct {
		pos, line, col int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3},
		{3, 2, 1},
		{7, 2, 4},
		{8, 2, 5},
		{9, 3, 1},
		{13, 3, 5},
		{-5, 1, 1},
		{100, 3, 5},
	}

	s := newTestSource()
	for _, sample := range samples {
		line, col := s.LineCol(sample.pos)
		if line != sample.line || col != sample.col {
			t.Errorf("pos %d: expecting %d:%d, got %d:%d", sample.pos, sample.line, sample.col, line, col)
		}
	}
}

func TestPos(t *testing.T) {
	samples := []struct {
		line, col, pos int
	}{
		{1, 1, 0},
		{2, 3, 5},
		{3, 1, 9},
		{0, 1, 0},
		{1, -1, 0},
		{4, 1, 13},
		{3, 99, 13},
	}

	s := newTestSource()
	for _, sample := range samples {
		pos := s.Pos(sample.line, sample.col)
		if pos != sample.pos {
			t.Errorf("%d:%d: expecting pos %d, got %d", sample.line, sample.col, sample.pos, pos)
		}
	}
}

func TestLine(t *testing.T) {
	samples := []struct {
		line int
		text string
	}{
		{1, "ab"},
		{2, "cdéf"},
		{3, "last"},
		{0, ""},
		{4, ""},
	}

	s := newTestSource()
	for _, sample := range samples {
		text := s.Line(sample.line)
		if text != sample.text {
			t.Errorf("line %d: expecting %q, got %q", sample.line, sample.text, text)
		}
	}
}

func TestStack(t *testing.T) {
	main := New("main", []byte("abcdef"))
	inc := New("inc", []byte("xyz"))

	st := NewStack().Push(main)
	st.Skip(2)
	if st.Pos() != 2 {
		t.Fatalf("expecting pos 2, got %d", st.Pos())
	}

	st.Push(inc)
	if st.Source() != inc || st.Pos() != 0 || st.Depth() != 2 {
		t.Fatal("pushed source is not active")
	}

	st.Skip(99)
	if st.Pos() != inc.Len() || !st.Exhausted() {
		t.Fatal("skip is not clamped to the source end")
	}

	if st.Pop() != inc {
		t.Fatal("pop returned wrong source")
	}
	if st.Source() != main || st.Pos() != 2 {
		t.Fatal("suspended source did not resume at its old position")
	}

	sp := st.SourcePos()
	if sp.Source() != main || sp.Line() != 1 || sp.Col() != 3 {
		t.Errorf("expecting main:1:3, got %s:%d:%d", sp.Source().Name(), sp.Line(), sp.Col())
	}

	st.Pop()
	if st.Pop() != nil || !st.IsEmpty() || !st.Exhausted() || st.Depth() != 0 {
		t.Fatal("emptied stack misbehaves")
	}
}
