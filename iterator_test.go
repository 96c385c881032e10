package corelex

import (
	"testing"

	"github.com/coregx/coregex"
)

func TestIteratorEndSentinelEquality(t *testing.T) {
	re := coregex.MustCompile(`x+`)
	m := NewMatcher(BorrowPattern(re), NewByteSource([]byte("aaa")))

	it1 := m.Scan()
	for it1.Next() {
	}
	if !it1.Done() {
		t.Fatal("expected iterator to be done: no match ever occurs")
	}

	m2 := NewMatcher(BorrowPattern(re), NewByteSource([]byte("bbb")))
	it2 := m2.Scan()
	for it2.Next() {
	}

	if !it1.Equal(it2) {
		t.Fatal("two end-sentinel iterators over different matchers should compare equal")
	}
}

func TestIteratorEqualitySameMatcher(t *testing.T) {
	re := coregex.MustCompile(`[a-z]+`)
	m := NewMatcher(BorrowPattern(re), NewByteSource([]byte("ab cd")))
	it := m.Scan()
	it.Next()

	other := &Iterator{m: m, d: Scan}
	if !it.Equal(other) {
		t.Fatal("iterators referencing the same live matcher should compare equal")
	}
}

func TestScanIteratorResetsOnConstruction(t *testing.T) {
	re := coregex.MustCompile(`[a-z]+`)
	m := NewMatcher(BorrowPattern(re), NewByteSource([]byte("ab cd")))
	it := m.Scan()
	it.Next()
	it.Next()

	// Constructing a second iterator over the same matcher re-resets it.
	it2 := m.Scan()
	if !it2.Next() || string(it2.Matcher().Text()) != "ab" {
		t.Fatalf("expected reset iterator to restart from the first token, got %q", it2.Matcher().Text())
	}
}
