package corelex

import (
	"errors"
	"testing"

	"github.com/coregx/coregex"
)

func TestBorrowPatternDoesNotOwn(t *testing.T) {
	re := coregex.MustCompile(`[a-z]+`)
	b := BorrowPattern(re)
	if b.Regex() != re {
		t.Fatal("BorrowPattern should reference the same *coregex.Regex")
	}
	if b.owned {
		t.Fatal("BorrowPattern should not take ownership")
	}
	if b.Borrowed().Regex() != re {
		t.Fatal("Borrowed() of a borrowed binding should still reference re")
	}
}

func TestOwnPatternCompileError(t *testing.T) {
	_, err := OwnPattern(`(`)
	if err == nil {
		t.Fatal("expected a compile error for an unbalanced group")
	}
	var perr *PatternError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *PatternError, got %T", err)
	}
	if perr.Source != "(" {
		t.Fatalf("PatternError.Source = %q, want %q", perr.Source, "(")
	}
}

func TestRebindReplacesPattern(t *testing.T) {
	re1 := coregex.MustCompile(`a+`)
	re2 := coregex.MustCompile(`b+`)
	b := BorrowPattern(re1)
	b.Rebind(re2)
	if b.Regex() != re2 {
		t.Fatal("Rebind should replace the bound pattern")
	}
}

func TestRebindSourceOwns(t *testing.T) {
	b := BorrowPattern(coregex.MustCompile(`a+`))
	if err := b.RebindSource(`[0-9]+`); err != nil {
		t.Fatalf("RebindSource error: %v", err)
	}
	if !b.owned {
		t.Fatal("RebindSource should take ownership of the compiled pattern")
	}
	if b.NumSubexp() != 0 {
		t.Fatalf("NumSubexp() = %d, want 0", b.NumSubexp())
	}
	if err := b.RebindSource(`(`); err == nil {
		t.Fatal("expected RebindSource to reject an invalid pattern")
	}
}

func TestNilBindingAccessorsAreSafe(t *testing.T) {
	var b *PatternBinding
	if b.Regex() != nil {
		t.Fatal("nil binding Regex() should be nil")
	}
	if b.NumSubexp() != 0 {
		t.Fatal("nil binding NumSubexp() should be 0")
	}
	if b.Borrowed() != nil {
		t.Fatal("nil binding Borrowed() should be nil")
	}
}
