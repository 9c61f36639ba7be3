// Package directive maps the flags written after a fence's language tag,
// such as "```rust --draft --trivia", onto tagged Go structs.
//
// Fields take part when they carry a `directive:"name"` tag; an empty name
// means the lowercased field name. A `directive:",flatten"` struct field
// contributes its own tagged fields to the same flag namespace. Supported
// field types are bool, string, int and time.Duration.
package directive

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

var (
	// ErrUnknown reports a flag no struct field declares.
	ErrUnknown = errors.New("unknown directive")
	// ErrUnexpected reports a token that is neither a flag nor a flag value.
	ErrUnexpected = errors.New("unexpected token")
)

// Error is a directive string that could not be applied.
type Error struct {
	Token string // offending token, or the whole directive string when no single token is to blame
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Token)
}

func (e *Error) Unwrap() error { return e.Err }

// Tokenize splits s on single spaces and drops empty tokens.
func Tokenize(s string) []string {
	var tokens []string
	for _, tok := range strings.Split(s, " ") {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// Parse applies the directive string s to dst, which must be a pointer to
// a struct. Definition problems in dst's type are returned as plain errors;
// problems with s itself are returned as *Error.
func Parse(s string, dst any) error {
	fs, err := NewFlagSet(dst)
	if err != nil {
		return err
	}
	return Apply(fs, Tokenize(s))
}

// NewFlagSet builds a flag set bound to the tagged fields of dst.
func NewFlagSet(dst any) (*pflag.FlagSet, error) {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("directive: destination must be a non-nil struct pointer, got %T", dst)
	}
	fs := pflag.NewFlagSet("directives", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	if err := register(fs, v.Elem()); err != nil {
		return nil, err
	}
	return fs, nil
}

func register(fs *pflag.FlagSet, v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, ok := sf.Tag.Lookup("directive")
		if !ok || tag == "-" {
			continue
		}
		name, opt, _ := strings.Cut(tag, ",")
		if !sf.IsExported() {
			return fmt.Errorf("directive: field %s.%s is not exported", t.Name(), sf.Name)
		}
		fv := v.Field(i)

		if opt == "flatten" {
			if fv.Kind() != reflect.Struct {
				return fmt.Errorf("directive: field %s.%s: flatten needs a struct, got %s", t.Name(), sf.Name, fv.Kind())
			}
			if err := register(fs, fv); err != nil {
				return err
			}
			continue
		}

		if name == "" {
			name = strings.ToLower(sf.Name)
		}
		if fs.Lookup(name) != nil {
			return fmt.Errorf("directive: --%s is defined more than once", name)
		}
		usage := sf.Tag.Get("help")

		switch p := fv.Addr().Interface().(type) {
		case *bool:
			fs.BoolVar(p, name, *p, usage)
		case *string:
			fs.StringVar(p, name, *p, usage)
		case *int:
			fs.IntVar(p, name, *p, usage)
		case *time.Duration:
			fs.DurationVar(p, name, *p, usage)
		default:
			return fmt.Errorf("directive: field %s.%s has unsupported type %s", t.Name(), sf.Name, sf.Type)
		}
	}
	return nil
}

// Apply parses tokens into the fields bound to fs. Unknown flags are
// rejected before anything is assigned.
func Apply(fs *pflag.FlagSet, tokens []string) error {
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok == "--" {
			break
		}
		if !strings.HasPrefix(tok, "-") || tok == "-" {
			continue
		}
		name, _, inline := strings.Cut(strings.TrimLeft(tok, "-"), "=")
		f := fs.Lookup(name)
		if f == nil {
			return &Error{Token: tok, Err: ErrUnknown}
		}
		// The next token is this flag's value, even when it starts with "-".
		if !inline && f.NoOptDefVal == "" {
			i++
		}
	}

	if err := fs.Parse(tokens); err != nil {
		return &Error{Token: strings.Join(tokens, " "), Err: err}
	}
	if args := fs.Args(); len(args) > 0 {
		return &Error{Token: args[0], Err: ErrUnexpected}
	}
	return nil
}

// Usage lists the directives dst accepts, one per line.
func Usage(dst any) (string, error) {
	fs, err := NewFlagSet(dst)
	if err != nil {
		return "", err
	}
	return fs.FlagUsages(), nil
}
