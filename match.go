package corelex

// Discipline selects which of the four match kinds match() performs
// (spec §4.2).
type Discipline int

const (
	// Scan matches the pattern starting exactly at the cursor; it fails
	// if no prefix of the remaining input matches.
	Scan Discipline = iota + 1
	// Find searches forward from the cursor, skipping unreported bytes.
	Find
	// Split returns the span up to the next delimiter match, consuming
	// the delimiter.
	Split
	// MatchFull succeeds iff the entire remaining input matches and the
	// next byte is EOF.
	MatchFull
)

// Matcher is the streaming match core: a sliding buffer, its position
// tracker, and match state, bound to one pattern (spec §2-§4).
//
// A Matcher is not safe for concurrent use (spec §5): all operations are
// single-threaded with respect to one instance.
type Matcher struct {
	*buffer

	pattern *PatternBinding
	opts    Options

	acceptIndex   int
	fullMatchMemo *bool

	splitFinal bool // the trailing, possibly-empty content span has been yielded
	splitDone  bool // the terminal EmptyLastSplit span has been yielded
	findEmpty  bool // the one permitted empty FIND match (option N) has been used

	moreFlag bool // set by More(): next match is appended to the current one
}

// NewMatcher builds a Matcher reading from source through pattern.
func NewMatcher(pattern *PatternBinding, source Source) *Matcher {
	return &Matcher{
		buffer:  newBuffer(source),
		pattern: pattern,
		opts:    DefaultOptions(),
	}
}

// SetOptions parses and installs a new option string (spec §3/§6).
func (m *Matcher) SetOptions(s string) {
	m.opts = ParseOptions(s)
}

// Reset clears match state and the position tracker, per spec §3
// Lifecycles. The bound source and pattern are unchanged, and bytes already
// in the buffer are kept, so matching restarts from the start of the
// buffered window.
func (m *Matcher) Reset() {
	m.resetMatchState()
	m.lineNo, m.colNo, m.absOffset = 1, 0, 0
}

func (m *Matcher) resetMatchState() {
	m.txtStart, m.txtLen, m.cursor = 0, 0, 0
	m.movePos(0)
	m.eof = false
	m.gotChar = BOB
	m.acceptIndex = 0
	m.fullMatchMemo = nil
	m.splitFinal = false
	m.splitDone = false
	m.findEmpty = false
	m.moreFlag = false
	m.lastErr = nil
}

// SetInput rebinds the matcher to a new source. Match state resets (spec
// §3: "Match state: reset on reset() and on each input(source)"), but the
// position tracker is left as-is — only an explicit Reset rewinds
// line/column/offset accounting. Named SetInput (not Input) to avoid
// colliding with the byte-consuming Input lexer action (spec §4.3).
func (m *Matcher) SetInput(source Source) {
	line, col, abs := m.lineNo, m.colNo, m.absOffset
	m.buffer = newBuffer(source)
	m.lineNo, m.colNo, m.absOffset = line, col, abs
	m.acceptIndex = 0
	m.fullMatchMemo = nil
	m.splitFinal = false
	m.splitDone = false
	m.findEmpty = false
	m.moreFlag = false
}

// ensureFilledToEOF drains the source into the buffer. coregex.Regex only
// exposes whole-slice search (Find/FindIndex/...), not a resumable partial
// search, so every discipline needs the window filled before it can trust a
// "no match" or boundary-touching result; see DESIGN.md for the tradeoff
// this makes against true incremental scanning.
func (m *Matcher) ensureFilledToEOF() {
	for !m.eof {
		before := m.end
		m.refill()
		if m.end == before && !m.eof {
			break
		}
	}
}

// findFrom asks the bound pattern for the first match at or after `at`,
// by searching the window past `at` and re-basing the result (the same
// slice-and-offset idiom any caller of a FindIndex-only regexp API uses to
// anchor a search partway through a buffer). Anchors such as ^ and \b are
// therefore relative to `at`, not to the original start of the stream.
func (m *Matcher) findFrom(at int) (start, end int, ok bool) {
	re := m.pattern.Regex()
	if re == nil {
		m.lastErr = ErrNoPattern
		return 0, 0, false
	}
	loc := re.FindIndex(m.buf[at:m.end])
	if loc == nil {
		return 0, 0, false
	}
	return at + loc[0], at + loc[1], true
}

// finalize records a successful match spanning [start, end) and advances
// the cursor past it, per spec §3 (txt_start/txt_len/cursor/pos) and §3 I5
// (got_char is the byte preceding txt_start).
func (m *Matcher) finalize(start, end int) {
	m.txtStart = start
	m.txtLen = end - start
	if start == 0 {
		m.gotChar = BOB
	} else {
		m.gotChar = int(m.buf[start-1])
	}
	m.movePos(end)
	m.cursor = end
}

// fail records a failed match attempt: no span, cursor unmoved.
func (m *Matcher) fail() {
	m.txtStart = m.cursor
	m.txtLen = 0
	m.acceptIndex = 0
}

// match is the engine-subclass primitive from spec §4.2/§6: given the
// current buffer state, find a match under the chosen discipline.
func (m *Matcher) match(d Discipline) int {
	m.lastErr = nil
	if m.moreFlag {
		m.cursor = m.txtStart
		m.moreFlag = false
	}

	switch d {
	case Scan:
		return m.matchScan()
	case Find:
		return m.matchFind()
	case Split:
		return m.matchSplit()
	case MatchFull:
		return m.matchFull()
	default:
		m.fail()
		return 0
	}
}

func (m *Matcher) matchScan() int {
	at := m.cursor
	m.ensureFilledToEOF()
	start, end, ok := m.findFrom(at)
	if !ok || start != at {
		m.fail()
		return 0
	}
	m.finalize(start, end)
	m.acceptIndex = 1
	return 1
}

func (m *Matcher) matchFind() int {
	at := m.cursor
	m.ensureFilledToEOF()
	start, end, ok := m.findFrom(at)
	if !ok {
		if m.opts.EmptyFind && !m.findEmpty && at == m.end {
			m.findEmpty = true
			m.finalize(at, at)
			m.acceptIndex = 1
			return 1
		}
		m.fail()
		return 0
	}
	m.finalize(start, end)
	m.acceptIndex = 1
	return 1
}

func (m *Matcher) matchSplit() int {
	if m.splitDone {
		m.acceptIndex = 0
		return 0
	}
	at := m.cursor
	m.ensureFilledToEOF()
	start, end, ok := m.findFrom(at)
	if ok {
		m.finalize(at, start)
		m.movePos(end)
		m.cursor = end
		m.acceptIndex = 1
		return 1
	}
	if !m.splitFinal {
		m.splitFinal = true
		m.finalize(at, m.end)
		m.acceptIndex = 1
		return 1
	}
	m.splitDone = true
	m.finalize(m.end, m.end)
	m.acceptIndex = EmptyLastSplit
	return EmptyLastSplit
}

func (m *Matcher) matchFull() int {
	if m.fullMatchMemo != nil {
		if *m.fullMatchMemo {
			m.acceptIndex = 1
			return 1
		}
		m.acceptIndex = 0
		return 0
	}
	m.ensureFilledToEOF()
	start, end, ok := m.findFrom(m.cursor)
	success := ok && start == m.cursor && end == m.end
	m.fullMatchMemo = &success
	if success {
		m.finalize(m.cursor, m.end)
		m.acceptIndex = 1
		return 1
	}
	m.fail()
	return 0
}

// Err returns the most recent SourceError (an opaque, non-EOF read failure
// wrapped in *BufferError), ErrNoPattern, or ErrBadLess (from Less), or nil
// if none has occurred since the start of the most recent match call, which
// clears it (spec §7: SourceError is treated as a possible EOF
// subject to wrap, not a failed match on its own, so callers who need to
// distinguish "no match" from "read error" consult Err after a 0 Accept()).
func (m *Matcher) Err() error {
	return m.lastErr
}

// Accept returns the accept index from the most recent match: 0 for no
// match, EmptyLastSplit for a terminal SPLIT sentinel, otherwise a
// positive engine-defined ordinal.
func (m *Matcher) Accept() int {
	return m.acceptIndex
}

// NumSubexp reports the number of parenthesized subexpressions in the
// bound pattern.
func (m *Matcher) NumSubexp() int {
	return m.pattern.NumSubexp()
}
