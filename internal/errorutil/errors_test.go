package errorutil_test

import (
	"errors"
	"testing"

	"github.com/rohcware/rohc-ip/internal/errorutil"
)

func TestNewWrapperError(t *testing.T) {
	t.Parallel()

	sentinel := errorutil.Error("boom")

	cases := []struct {
		name string
		args []any
		want string
	}{
		{"no args", nil, "boom"},
		{"string arg", []any{"field x"}, "boom: field x"},
		{"string fmt args", []any{"field %d", 3}, "boom: field 3"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := errorutil.NewWrapperError(sentinel, c.args...)
			if err.Error() != c.want {
				t.Fatalf("got %q, want %q", err.Error(), c.want)
			}
			if !errors.Is(err, sentinel) {
				t.Fatalf("expected wrapped error to match sentinel")
			}
		})
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	if err := errorutil.Join(); err != nil {
		t.Fatalf("Join() with no errors = %v, want nil", err)
	}

	e1 := errorutil.Error("one")
	if err := errorutil.Join(e1); err != e1 {
		t.Fatalf("Join(e1) = %v, want e1 unwrapped", err)
	}

	e2 := errorutil.Error("two")
	err := errorutil.Join(nil, e1, e2)
	if !errors.Is(err, e1) || !errors.Is(err, e2) {
		t.Fatalf("Join(e1, e2) = %v, want both errors reachable via errors.Is", err)
	}
}

func TestNewInvalidArgumentError(t *testing.T) {
	t.Parallel()

	err := errorutil.NewInvalidArgumentError("negative byte count")
	if !errors.Is(err, errorutil.ErrInvalidArgument) {
		t.Fatalf("expected wrapped error to match ErrInvalidArgument, got %v", err)
	}
}
