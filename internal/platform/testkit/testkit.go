// Package testkit holds small assertions shared by package tests
package testkit

import (
	"fmt"
	"strings"
	"testing"
)

// MustPanic fails t unless fn panics, and returns the recovered value
func MustPanic(t testing.TB, fn func()) (recovered any) {
	t.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Fatalf("expected a panic")
		}
	}()
	fn()
	return nil
}

// MustPanicWith fails t unless fn panics with a value whose text contains want
func MustPanicWith(t testing.TB, want string, fn func()) {
	t.Helper()
	got := fmt.Sprint(MustPanic(t, fn))
	if !strings.Contains(got, want) {
		t.Fatalf("panic %q does not mention %q", got, want)
	}
}

// MustNotPanic fails t if fn panics
func MustNotPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain fails t unless haystack contains needle; long haystacks are clipped
func MustContain(t testing.TB, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		return
	}
	shown := haystack
	if len(shown) > 2048 {
		shown = shown[:2048] + "..."
	}
	t.Fatalf("missing %q in:\n%s", needle, shown)
}
