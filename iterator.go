package corelex

// Iterator is a lazy forward sequence over a matcher under one discipline
// (spec §4.2). Calling Next advances to the next match; once it returns
// false the iterator is permanently exhausted (the end-sentinel state).
//
// Example:
//
//	it := m.Scan()
//	for it.Next() {
//	    fmt.Println(string(it.Matcher().Text()))
//	}
type Iterator struct {
	m       *Matcher
	d       Discipline
	started bool
	done    bool
}

// newIterator resets m and binds an iterator to discipline d. The reset
// happens at construction per spec §4.2; the first match itself is
// deferred to the first Next call, mirroring the idiomatic Go
// for-it.Next()-style iteration the rest of this module's tests use.
func newIterator(m *Matcher, d Discipline) *Iterator {
	m.Reset()
	return &Iterator{m: m, d: d}
}

// Scan returns an iterator over successive SCAN matches.
func (m *Matcher) Scan() *Iterator {
	return newIterator(m, Scan)
}

// FindIter returns an iterator over successive FIND matches.
func (m *Matcher) FindIter() *Iterator {
	return newIterator(m, Find)
}

// SplitIter returns an iterator over successive SPLIT spans, terminating
// with the EmptyLastSplit sentinel span.
func (m *Matcher) SplitIter() *Iterator {
	return newIterator(m, Split)
}

// MatchesFull reports whether the entire remaining input matches the
// bound pattern (the MATCH discipline), memoized on the matcher.
func (m *Matcher) MatchesFull() bool {
	return m.match(MatchFull) != 0
}

// Next advances the iterator to the next match and reports whether one
// was found. On false, the iterator is exhausted; the failed match attempt
// leaves an empty match view and Accept() == 0.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}
	it.started = true
	if it.m.match(it.d) == 0 {
		it.done = true
		return false
	}
	return true
}

// Matcher returns the bound matcher, so callers can read Text/Size/First/
// Last/LineNo/ColumnNo/Accept for the current match.
func (it *Iterator) Matcher() *Matcher {
	return it.m
}

// Done reports whether the iterator has reached its end-sentinel state.
func (it *Iterator) Done() bool {
	return it.done
}

// Equal reports whether it and other represent the same iteration state
// per spec §4.2: both at end, or both referencing the same matcher at the
// same point (they always do, since an Iterator carries no copy of the
// matcher's state — equality of position is equality of *Matcher).
func (it *Iterator) Equal(other *Iterator) bool {
	if it.done || other.done {
		return it.done == other.done
	}
	return it.m == other.m
}
