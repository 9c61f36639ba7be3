package directive

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type syntax struct {
	Trivia bool `directive:"trivia"`
}

type args struct {
	Draft bool   `directive:"draft"`
	Rest  syntax `directive:",flatten"`
}

type execArgs struct {
	Skip    bool          `directive:"skip" help:"do not run this block"`
	Timeout time.Duration `directive:""`
	Name    string        `directive:"name"`
	Count   int           `directive:"count"`
	ignored string
}

func TestTokenize_DropsEmptyTokens(t *testing.T) {
	got := Tokenize("  --draft   --trivia ")
	want := []string{"--draft", "--trivia"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Tokenize mismatch (-want +got):\n%s", diff)
	}
	if got := Tokenize(""); len(got) != 0 {
		t.Fatalf("Tokenize(\"\") = %q, want none", got)
	}
}

func TestParse_Empty(t *testing.T) {
	var a args
	if err := Parse("", &a); err != nil {
		t.Fatal(err)
	}
	if a.Draft || a.Rest.Trivia {
		t.Fatalf("expected zero value, got %+v", a)
	}
}

func TestParse_CoreAndFlattened(t *testing.T) {
	var a args
	if err := Parse("--draft --trivia", &a); err != nil {
		t.Fatal(err)
	}
	if !a.Draft || !a.Rest.Trivia {
		t.Fatalf("got %+v, want both set", a)
	}
}

func TestParse_ValueKinds(t *testing.T) {
	var a execArgs
	if err := Parse("--skip --timeout=2s --name demo --count=3", &a); err != nil {
		t.Fatal(err)
	}
	if !a.Skip || a.Timeout != 2*time.Second || a.Name != "demo" || a.Count != 3 {
		t.Fatalf("got %+v", a)
	}
}

func TestParse_UnknownFlag(t *testing.T) {
	var a args
	err := Parse("--draft --bogus", &a)
	var de *Error
	if !errors.As(err, &de) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if de.Token != "--bogus" {
		t.Fatalf("Token = %q, want %q", de.Token, "--bogus")
	}
	if !errors.Is(err, ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
	if a.Draft {
		t.Fatal("nothing should be assigned when a flag is unknown")
	}
	if !strings.Contains(err.Error(), "--bogus") {
		t.Fatalf("message should name the token: %v", err)
	}
}

func TestParse_UnknownShorthand(t *testing.T) {
	var a args
	if err := Parse("-d", &a); !errors.Is(err, ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
}

func TestParse_PositionalRejected(t *testing.T) {
	var a args
	err := Parse("--draft stray", &a)
	var de *Error
	if !errors.As(err, &de) || !errors.Is(err, ErrUnexpected) {
		t.Fatalf("expected ErrUnexpected, got %v", err)
	}
	if de.Token != "stray" {
		t.Fatalf("Token = %q", de.Token)
	}
}

func TestParse_InvalidValue(t *testing.T) {
	var a execArgs
	err := Parse("--count=many", &a)
	var de *Error
	if !errors.As(err, &de) {
		t.Fatalf("expected *Error, got %v", err)
	}
}

func TestParse_DashedValue(t *testing.T) {
	var a execArgs
	if err := Parse("--timeout -1s --count -2", &a); err != nil {
		t.Fatal(err)
	}
	if a.Timeout != -time.Second || a.Count != -2 {
		t.Fatalf("got %+v", a)
	}
}

func TestParse_DashedValueInvalid(t *testing.T) {
	var a execArgs
	err := Parse("--count -x", &a)
	var de *Error
	if !errors.As(err, &de) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if errors.Is(err, ErrUnknown) {
		t.Fatalf("-x is a value for --count, not a directive: %v", err)
	}
}

func TestParse_DuplicateName(t *testing.T) {
	type clash struct {
		Draft bool `directive:"draft"`
	}
	type bad struct {
		Draft bool  `directive:"draft"`
		Ext   clash `directive:",flatten"`
	}
	var b bad
	err := Parse("", &b)
	if err == nil || !strings.Contains(err.Error(), "--draft") {
		t.Fatalf("expected duplicate definition error, got %v", err)
	}
	var de *Error
	if errors.As(err, &de) {
		t.Fatal("definition errors are not directive errors")
	}
}

func TestParse_NotAStructPointer(t *testing.T) {
	var a args
	if err := Parse("", a); err == nil {
		t.Fatal("expected error for non-pointer destination")
	}
}

func TestParse_UnsupportedType(t *testing.T) {
	type bad struct {
		Ratio float64 `directive:"ratio"`
	}
	if err := Parse("", &bad{}); err == nil {
		t.Fatal("expected error for unsupported field type")
	}
}

func TestUsage_ListsFlags(t *testing.T) {
	u, err := Usage(&execArgs{})
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"--skip", "--timeout", "--name", "--count", "do not run this block"} {
		if !strings.Contains(u, name) {
			t.Errorf("usage missing %q:\n%s", name, u)
		}
	}
}
