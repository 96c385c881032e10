package corelex

import "github.com/coregx/coregex"

// PatternBinding owns or borrows a compiled pattern (spec §4.4). A borrowed
// pattern is never released by this binding; an owned pattern was compiled
// by this binding from a source expression and is released on rebind.
type PatternBinding struct {
	re    *coregex.Regex
	owned bool
}

// BorrowPattern returns a binding that references re without taking
// ownership. Rebinding or releasing this binding never affects re.
func BorrowPattern(re *coregex.Regex) *PatternBinding {
	return &PatternBinding{re: re}
}

// OwnPattern compiles expr and returns a binding that owns the result.
func OwnPattern(expr string) (*PatternBinding, error) {
	re, err := coregex.Compile(expr)
	if err != nil {
		return nil, &PatternError{Source: expr, Err: err}
	}
	return &PatternBinding{re: re, owned: true}, nil
}

// Rebind replaces the bound pattern. If this binding currently owns a
// compiled pattern, that instance is released (dropped) before the new
// reference is stored; a borrowed reference is simply replaced.
func (b *PatternBinding) Rebind(re *coregex.Regex) {
	b.re = re
	b.owned = false
}

// RebindSource compiles expr and takes ownership of the result, releasing
// any previously owned pattern.
func (b *PatternBinding) RebindSource(expr string) error {
	re, err := coregex.Compile(expr)
	if err != nil {
		return &PatternError{Source: expr, Err: err}
	}
	b.re = re
	b.owned = true
	return nil
}

// Regex returns the bound pattern, or nil if none is bound.
func (b *PatternBinding) Regex() *coregex.Regex {
	if b == nil {
		return nil
	}
	return b.re
}

// Borrowed returns a binding that references the same pattern as b but
// never owns it, regardless of whether b owns it. This is the binding
// semantics a Matcher.Copy uses (spec §4.4: "copying a matcher always
// borrows its source's pattern").
func (b *PatternBinding) Borrowed() *PatternBinding {
	if b == nil {
		return nil
	}
	return &PatternBinding{re: b.re}
}

// NumSubexp reports the number of parenthesized subexpressions, or 0 if no
// pattern is bound.
func (b *PatternBinding) NumSubexp() int {
	if b == nil || b.re == nil {
		return 0
	}
	return b.re.NumSubexp()
}
