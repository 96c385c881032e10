package corelex

// Peek returns the next byte after the cursor without consuming it, or EOF.
func (m *Matcher) Peek() int {
	return m.peekByte()
}

// Get returns the next byte after the cursor and consumes it, refilling
// the buffer on demand, or EOF.
func (m *Matcher) Get() int {
	return m.getByte()
}

// Input consumes one more byte past the current match (spec §4.3 input()).
// The current Text() view is unaffected; only the cursor advances. Returns
// EOF if no more bytes are available.
func (m *Matcher) Input() int {
	c := m.peekByte()
	if c == EOF {
		return EOF
	}
	m.movePos(m.pos + 1)
	m.cursor = m.pos
	m.gotChar = c
	return c
}

// Unput pushes c back so the next Peek/Get/Input/match sees it, and
// invalidates the current match (txt_len <- 0, txt_start <- pos), per spec
// §4.3. If the cursor sits at index 0 of the buffer, the
// buffer is shifted (growing if needed) to make room before index 0.
func (m *Matcher) Unput(c byte) {
	if m.pos == 0 {
		m.openGapLeft(1)
	}
	newPos := m.pos - 1
	m.buf[newPos] = c
	m.movePos(newPos)
	m.txtStart = newPos
	m.txtLen = 0
	m.cursor = newPos
	if newPos == 0 {
		m.gotChar = BOB
	} else {
		m.gotChar = int(m.buf[newPos-1])
	}
}

// openGapLeft ensures n free bytes exist before index 0, shifting (and, if
// necessary, growing) the buffer so callers can write into buf[0:n]
// without disturbing txtStart..end.
func (b *buffer) openGapLeft(n int) {
	free := len(b.buf) - b.end
	if free < n {
		newCap := len(b.buf)
		if newCap == 0 {
			newCap = Block
		}
		for newCap-b.end < n {
			newCap *= 2
		}
		newBuf := make([]byte, newCap)
		copy(newBuf[n:], b.buf[:b.end])
		b.buf = newBuf
	} else {
		copy(b.buf[n:n+b.end], b.buf[:b.end])
	}
	b.end += n
	b.txtStart += n
	b.cursor += n
	b.pos += n
}

// More marks that the next accepted match should be appended to the
// current match's bytes, by rewinding the cursor to txtStart (spec §4.3).
func (m *Matcher) More() {
	m.moreFlag = true
}

// Less truncates the current match to length n (spec §4.3 less()),
// repositioning pos and cursor to txtStart+n. n must satisfy
// 0 <= n <= Size(); otherwise Less is a no-op and Err() reports ErrBadLess.
func (m *Matcher) Less(n int) {
	if n < 0 || n > m.txtLen {
		m.lastErr = ErrBadLess
		return
	}
	m.txtLen = n
	m.movePos(m.txtStart + n)
	m.cursor = m.pos
}

// Rest drains the source into the buffer (calling Wrap until it refuses),
// then returns the entire remaining window as the match view and marks
// the matcher at EOF (spec §4.3 rest()).
func (m *Matcher) Rest() []byte {
	m.ensureFilledToEOF()
	m.finalize(m.cursor, m.end)
	m.acceptIndex = 1
	return m.Text()
}

// Flush discards the buffered remainder without reading anything further
// from the source (spec §4.3 flush()).
func (m *Matcher) Flush() {
	m.movePos(m.end)
	m.cursor = m.end
	m.txtStart = m.end
	m.txtLen = 0
}

// SetBOL forces (true) or clears (false) the begin-of-line anchor by
// setting or clearing got_char's newline value (spec §4.3 set_bol()).
func (m *Matcher) SetBOL(bol bool) {
	if bol {
		m.gotChar = int('\n')
	} else if m.gotChar == int('\n') {
		m.gotChar = Unknown
	}
}

// SetEnd forces (true) or clears (false) EOF. Forcing EOF also flushes the
// buffered remainder (spec §4.3 set_end()).
func (m *Matcher) SetEnd(end bool) {
	m.eof = end
	if end {
		m.Flush()
	}
}

// AtBOB reports whether the cursor sits at the very beginning of the
// buffered input (spec §4.3 at_bob()).
func (m *Matcher) AtBOB() bool {
	return m.gotChar == BOB
}

// AtEnd reports whether no more bytes are currently available: the
// window is exhausted and either the source is at EOF or the next Peek
// would also report EOF (spec §4.3 at_end()).
func (m *Matcher) AtEnd() bool {
	return m.pos == m.end && (m.eof || m.peekByte() == EOF)
}

// HitEnd reports whether the window is exhausted and the source itself is
// at EOF (spec §4.3 hit_end()).
func (m *Matcher) HitEnd() bool {
	return m.pos == m.end && m.eof
}

// AtBOL reports whether the byte preceding the cursor was a newline (spec
// §4.3 at_bol()).
func (m *Matcher) AtBOL() bool {
	return m.gotChar == int('\n')
}

// SetBlockSize configures how many bytes the buffer requests per refill:
// 0 (default) fills whatever capacity is available, 1 reads one byte at a
// time for interactive sources, and any larger value requests fixed-size
// chunks (spec §4.1 refill policy).
func (m *Matcher) SetBlockSize(n int) {
	m.blockSize = n
}

// Copy returns a new Matcher over the same buffered bytes and match state
// as m, borrowing (never deep-copying) m's bound pattern — spec §4.4:
// "copying a matcher always borrows its source's pattern".
func (m *Matcher) Copy() *Matcher {
	bufCopy := *m.buffer
	bufCopy.buf = append([]byte(nil), m.buffer.buf...)
	return &Matcher{
		buffer:        &bufCopy,
		pattern:       m.pattern.Borrowed(),
		opts:          m.opts,
		acceptIndex:   m.acceptIndex,
		fullMatchMemo: m.fullMatchMemo,
		splitFinal:    m.splitFinal,
		splitDone:     m.splitDone,
		findEmpty:     m.findEmpty,
		moreFlag:      m.moreFlag,
	}
}
