package prefs

import (
	"fmt"
	"strconv"

	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/logger"
)

// An Option pairs one stored configuration Key with the family declaring
// its legal values and the member substituted when no stored value
// resolves.
//
// The zero-value Option is not usable; construct one with the function
// matching the family's storage kind so decoding and validation agree
// with how the family stores members.
type Option[T waymark.Value] struct {
	family *waymark.Family[T]
	path   Key
	def    T

	decode func(string) (T, error)
	encode func(T) string
	lookup func(T) (T, error)
}

func newOption[T waymark.Value](f *waymark.Family[T], path Key, def T) (Option[T], error) {
	if f == nil {
		return Option[T]{}, fmt.Errorf("%w: option %q needs a family", waymark.ErrBadConfig, path)
	}

	if err := path.valid(); err != nil {
		return Option[T]{}, err
	}

	return Option[T]{family: f, path: path, def: def}, nil
}

func (o Option[T]) checkDefault() (Option[T], error) {
	if _, err := o.lookup(o.def); err != nil {
		return Option[T]{}, fmt.Errorf("%w: option %q default %v: %s", waymark.ErrBadConfig, o.path, o.def, err)
	}

	return o, nil
}

// NewOption constructs an Option over an integer family.
// The default must be a declared member.
func NewOption[T ~int](f *waymark.Family[T], path Key, def T) (Option[T], error) {
	o, err := newOption(f, path, def)
	if err != nil {
		return Option[T]{}, err
	}

	o.decode = decodeInt[T]
	o.encode = encodeInt[T]
	o.lookup = f.Lookup

	return o.checkDefault()
}

// NewStringOption constructs an Option over a string family.
// The default must be a declared member.
func NewStringOption[T ~string](f *waymark.Family[T], path Key, def T) (Option[T], error) {
	o, err := newOption(f, path, def)
	if err != nil {
		return Option[T]{}, err
	}

	o.decode = decodeString[T]
	o.encode = encodeString[T]
	o.lookup = f.Lookup

	return o.checkDefault()
}

// NewBoolOption constructs an Option over a boolean family.
func NewBoolOption[T ~bool](f *waymark.Family[T], path Key, def T) (Option[T], error) {
	o, err := newOption(f, path, def)
	if err != nil {
		return Option[T]{}, err
	}

	o.decode = decodeBool[T]
	o.encode = encodeBool[T]
	o.lookup = f.Lookup

	return o.checkDefault()
}

// NewBitsetOption constructs an Option over a flags family whose stored
// value is a user-chosen union of primitive bits rather than a declared
// member, the way the modifier-keys option stores whichever keys the
// user enabled.
//
// Stored values validate with waymark.LookupBits, so any union of
// declared bits decodes, not just declared members.
func NewBitsetOption[T ~int](f *waymark.Family[T], path Key, def T) (Option[T], error) {
	o, err := newOption(f, path, def)
	if err != nil {
		return Option[T]{}, err
	}

	o.decode = decodeInt[T]
	o.encode = encodeInt[T]
	o.lookup = func(raw T) (T, error) { return waymark.LookupBits(f, raw) }

	return o.checkDefault()
}

// MustOption constructs an Option over an integer family, panicking when
// the definition is defective.
func MustOption[T ~int](f *waymark.Family[T], path Key, def T) Option[T] {
	o, err := NewOption(f, path, def)
	if err != nil {
		panic(err)
	}

	return o
}

// MustStringOption constructs an Option over a string family, panicking
// when the definition is defective.
func MustStringOption[T ~string](f *waymark.Family[T], path Key, def T) Option[T] {
	o, err := NewStringOption(f, path, def)
	if err != nil {
		panic(err)
	}

	return o
}

// MustBoolOption constructs an Option over a boolean family, panicking
// when the definition is defective.
func MustBoolOption[T ~bool](f *waymark.Family[T], path Key, def T) Option[T] {
	o, err := NewBoolOption(f, path, def)
	if err != nil {
		panic(err)
	}

	return o
}

// MustBitsetOption constructs a bitset Option, panicking when the
// definition is defective.
func MustBitsetOption[T ~int](f *waymark.Family[T], path Key, def T) Option[T] {
	o, err := NewBitsetOption(f, path, def)
	if err != nil {
		panic(err)
	}

	return o
}

// Family returns the family declaring the Option's legal values.
func (o Option[T]) Family() *waymark.Family[T] { return o.family }

// Path returns the Key the Option's value is stored under.
func (o Option[T]) Path() Key { return o.path }

// Default returns the member substituted when no stored value resolves.
func (o Option[T]) Default() T { return o.def }

// Encode renders v in the Option's stored string form.
func (o Option[T]) Encode(v T) string { return o.encode(v) }

// Decode parses a stored string back into a member, validating it
// against the Option's family.
//
// Unparseable text and undeclared values wrap waymark.ErrUnknownMember.
func (o Option[T]) Decode(raw string) (T, error) {
	v, err := o.decode(raw)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %s stores no member %q", waymark.ErrUnknownMember, o.family.Name(), raw)
	}

	return o.lookup(v)
}

// Choices returns the family's members in declaration order for building
// a settings UI.
func (o Option[T]) Choices() waymark.ChoiceList[T] { return waymark.Choices(o.family) }

// Resolve reads the Option's value out of vs.
//
// A missing entry resolves to the default silently; that is the normal
// state of any option the user never touched. A present but undecodable
// entry logs a warning and resolves to the default rather than failing,
// so one corrupt value cannot take the configuration down.
func (o Option[T]) Resolve(vs Values, l logger.Logger) T {
	raw, ok := vs[o.path]
	if !ok {
		return o.def
	}

	v, err := o.Decode(raw)
	if err != nil {
		if l != nil {
			l.Warn("falling back to default", &logger.LogContext{
				Data:  map[string]any{"path": string(o.path), "raw": raw, "default": o.encode(o.def)},
				Error: err,
			})
		}

		return o.def
	}

	return v
}

// Set validates v and writes its encoding into vs.
func (o Option[T]) Set(vs Values, v T) error {
	checked, err := o.lookup(v)
	if err != nil {
		return err
	}

	vs[o.path] = o.encode(checked)

	return nil
}

func decodeInt[T ~int](raw string) (T, error) {
	n, err := strconv.Atoi(raw)
	return T(n), err
}

func decodeString[T ~string](raw string) (T, error) { return T(raw), nil }

func decodeBool[T ~bool](raw string) (T, error) {
	b, err := strconv.ParseBool(raw)
	return T(b), err
}

func encodeInt[T ~int](v T) string       { return strconv.Itoa(int(v)) }
func encodeString[T ~string](v T) string { return string(v) }
func encodeBool[T ~bool](v T) string     { return strconv.FormatBool(bool(v)) }
