package apperr

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want string
	}{
		{
			name: "user kind",
			kind: KindUser,
			want: "user",
		},
		{
			name: "io kind",
			kind: KindIO,
			want: "io",
		},
		{
			name: "validation kind",
			kind: KindValidation,
			want: "validation",
		},
		{
			name: "internal kind",
			kind: KindInternal,
			want: "internal",
		},
		{
			name: "unknown kind",
			kind: Kind(42),
			want: "unknown(42)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{
			name: "user error exits 1",
			err:  Userf("bad flag"),
			want: 1,
		},
		{
			name: "io error exits 2",
			err:  IOf("disk on fire"),
			want: 2,
		},
		{
			name: "validation error exits 3",
			err:  Validationf("not a file"),
			want: 3,
		},
		{
			name: "internal error exits 4",
			err:  Internalf("impossible state"),
			want: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.ExitCode(); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(err) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitCodeNonAppError(t *testing.T) {
	if got := ExitCode(errors.New("plain")); got != 4 {
		t.Errorf("ExitCode(plain error) = %d, want 4", got)
	}
}

func TestErrorMessage(t *testing.T) {
	err := IOf("cannot read %s: %v", "/tmp/x", errors.New("permission denied"))
	want := "I/O error: cannot read /tmp/x: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestUnwrapPreservesCause(t *testing.T) {
	_, statErr := os.Stat("/nonexistent/photoscan/test/path")
	if statErr == nil {
		t.Fatal("expected stat error")
	}

	err := IOf("stat failed: %v", statErr)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("wrapped os error should satisfy errors.Is(err, fs.ErrNotExist)")
	}
}

func TestIsKind(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", Validationf("inner"))

	if !IsKind(wrapped, KindValidation) {
		t.Error("IsKind should see through wrapping")
	}
	if IsKind(wrapped, KindIO) {
		t.Error("IsKind matched the wrong kind")
	}
	if IsKind(errors.New("plain"), KindIO) {
		t.Error("IsKind matched a non-app error")
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(Userf("x")); got != KindUser {
		t.Errorf("KindOf = %v, want KindUser", got)
	}
	if got := KindOf(errors.New("plain")); got != KindInternal {
		t.Errorf("KindOf(plain) = %v, want KindInternal", got)
	}
}
