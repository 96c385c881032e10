package corelex

// Text returns the current match as a zero-copy view into the buffer
// (spec §4.3 text()/size()). The view is stable until the next mutating
// call (match, Input, Unput, More, Less, Rest, Flush, Reset).
func (m *Matcher) Text() []byte {
	return m.buf[m.txtStart : m.txtStart+m.txtLen]
}

// Size returns the length in bytes of the current match.
func (m *Matcher) Size() int {
	return m.txtLen
}

// First returns the absolute stream offset of the match start.
func (m *Matcher) First() int64 {
	return m.absOffset + int64(m.txtStart)
}

// Last returns the absolute stream offset one past the match end. First()
// + int64(Size()) == Last() always holds.
func (m *Matcher) Last() int64 {
	return m.First() + int64(m.txtLen)
}

// LineNo returns the 1-based line number of the match start, counting
// newlines absorbed by the position tracker plus newlines still buffered
// before txtStart (spec §4.3 lineno()).
func (m *Matcher) LineNo() int {
	n := m.lineNo
	for i := 0; i < m.txtStart; i++ {
		if m.buf[i] == '\n' {
			n++
		}
	}
	return n
}

// ColumnNo returns the 0-based column of the match start: the distance
// back to the previous newline still in the buffer, or — if none is
// buffered — that distance plus the tracker's carried column count (spec
// §4.3 columno()).
func (m *Matcher) ColumnNo() int {
	col := 0
	for i := m.txtStart - 1; i >= 0; i-- {
		if m.buf[i] == '\n' {
			return col
		}
		col++
	}
	return col + m.colNo
}
