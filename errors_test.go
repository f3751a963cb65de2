package cratepack

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	cases := []struct {
		kind ErrorKind
		want string
	}{
		{KindInvalidInput, "invalid input"},
		{KindItemTooLarge, "item too large"},
		{KindInsufficientBoxes, "insufficient boxes"},
		{KindConstraintViolation, "constraint violation"},
		{ErrorKind(99), "unknown"},
	}
	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", c.kind, got, c.want)
		}
	}
}

func TestPackErrorIs(t *testing.T) {
	item := NewItem("widget", 10, 10, 10, 1, RotationNever)
	a := itemTooLarge(item)
	b := itemTooLarge(item)

	if !errors.Is(a, b) {
		t.Errorf("expected two ItemTooLarge errors to match via errors.Is")
	}

	other := insufficientBoxes(3)
	if errors.Is(a, other) {
		t.Errorf("expected errors of different kinds not to match")
	}
}

func TestPackErrorMessageIncludesItemName(t *testing.T) {
	item := NewItem("crate", 10, 10, 10, 1, RotationNever)
	err := itemTooLarge(item)
	msg := err.Error()
	if !strings.Contains(msg, "crate") || !strings.Contains(msg, "item too large") {
		t.Errorf("PackError.Error() = %q, missing expected substrings", msg)
	}
}
