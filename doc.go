// Package corelex provides the streaming input-buffer and match-iteration
// core shared by a family of regex-matching engines.
//
// It feeds an unbounded byte sequence (from memory, a file, or an
// interactive stream) through a bounded sliding buffer, preserves enough
// left-context for backtracking, and exposes the current match as a
// contiguous, zero-copy view. On top of the buffer it offers four match
// disciplines (scan, find, split, match-full) behind one iterator surface,
// plus the lexer-action primitives (input, unput, more, less, rest, ...)
// that hand-written lexer actions rely on.
//
// Concrete pattern compilation and execution is delegated to the
// github.com/coregx/coregex module; corelex only knows how to ask a bound
// pattern "find a match starting here" and react to the answer.
//
// Basic usage:
//
//	re, err := coregex.Compile(`[A-Za-z_][A-Za-z_0-9]*`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m := corelex.NewMatcher(corelex.BorrowPattern(re), corelex.NewByteSource([]byte("hello world")))
//	it := m.Scan()
//	for it.Next() {
//	    fmt.Println(it.Matcher().Text())
//	}
package corelex
