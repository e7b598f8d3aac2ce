package source

type entry struct {
	src *Source
	pos int
}

// Stack is a LIFO collection of sources with one reading position per source.
// The top entry is the active one: all reads and cursor movements affect it only.
// An exhausted top entry is not discarded automatically, callers decide when to Pop.
type Stack struct {
	entries []entry
}

func NewStack() *Stack {
	return &Stack{}
}

// Push makes s the new active source, suspending the previous top
// at its current position.
func (st *Stack) Push(s *Source) *Stack {
	st.entries = append(st.entries, entry{src: s})
	return st
}

// Pop removes and returns the active source, resuming the one below it
// exactly where it was suspended. Returns nil on an empty stack.
func (st *Stack) Pop() *Source {
	if len(st.entries) == 0 {
		return nil
	}

	s := st.entries[len(st.entries)-1].src
	st.entries = st.entries[:len(st.entries)-1]
	return s
}

// Source returns the active source or nil.
func (st *Stack) Source() *Source {
	if len(st.entries) == 0 {
		return nil
	}

	return st.entries[len(st.entries)-1].src
}

// Pos returns the reading position within the active source.
func (st *Stack) Pos() int {
	if len(st.entries) == 0 {
		return 0
	}

	return st.entries[len(st.entries)-1].pos
}

// ContentPos returns the active source contents and the reading position within them.
func (st *Stack) ContentPos() ([]byte, int) {
	if len(st.entries) == 0 {
		return []byte{}, 0
	}

	e := &st.entries[len(st.entries)-1]
	return e.src.Content(), e.pos
}

// Skip advances the active reading position by size bytes, clamped to the source end.
func (st *Stack) Skip(size int) {
	if len(st.entries) == 0 || size <= 0 {
		return
	}

	e := &st.entries[len(st.entries)-1]
	e.pos += size
	if e.pos > e.src.Len() {
		e.pos = e.src.Len()
	}
}

// Exhausted reports whether the active source has been read to its end.
// An empty stack is exhausted.
func (st *Stack) Exhausted() bool {
	if len(st.entries) == 0 {
		return true
	}

	e := &st.entries[len(st.entries)-1]
	return e.pos >= e.src.Len()
}

func (st *Stack) IsEmpty() bool {
	return len(st.entries) == 0
}

func (st *Stack) Depth() int {
	return len(st.entries)
}

// SourcePos resolves the current reading position of the active source.
func (st *Stack) SourcePos() Pos {
	if len(st.entries) == 0 {
		return Pos{}
	}

	e := &st.entries[len(st.entries)-1]
	return NewPos(e.src, e.pos)
}
