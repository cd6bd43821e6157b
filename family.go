package waymark

import "fmt"

// A Value is a storage representation enumeration members can take.
type Value interface {
	~bool | ~int | ~string
}

// A Def declares one member of a Family: the value it persists as and the
// label describing it to end users.
//
// Composite marks an integer-flags member whose value is the bitwise OR of
// other declared members. Only flags families accept composite members.
type Def[T Value] struct {
	Value     T
	Label     Label
	Composite bool
}

// A Family is the closed, ordered set of valid values for one configuration
// option. It is immutable once constructed; any number of goroutines may
// read it concurrently.
//
// Construct a Family with NewEnum, NewStringEnum, NewFlags, or NewBoolFlag,
// or their Must variants when failing should abort startup.
type Family[T Value] struct {
	name      string
	kind      Kind
	members   []T
	defs      map[T]Def[T]
	translate TranslateFunc
	checks    []func() error
}

func newFamily[T Value](name string, kind Kind, defs []Def[T], opt familyOpt) (*Family[T], error) {
	if name == "" {
		return nil, fmt.Errorf("%w: a family requires a name", ErrBadDefinition)
	}

	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: %s declares no members", ErrBadDefinition, name)
	}

	f := &Family[T]{
		name:      name,
		kind:      kind,
		members:   make([]T, 0, len(defs)),
		defs:      make(map[T]Def[T], len(defs)),
		translate: opt.translate,
	}

	for _, def := range defs {
		if _, ok := f.defs[def.Value]; ok {
			return nil, fmt.Errorf("%w: %s declares %v more than once", ErrBadDefinition, name, def.Value)
		}

		if def.Label.Key == "" {
			return nil, fmt.Errorf("%w: %s member %v has no label", ErrBadDefinition, name, def.Value)
		}

		if def.Composite && kind != KindIntFlags {
			return nil, fmt.Errorf("%w: %s member %v is composite but %s is not %s", ErrBadDefinition, name, def.Value, name, KindIntFlags)
		}

		f.members = append(f.members, def.Value)
		f.defs[def.Value] = def
	}

	return f, nil
}

// NewEnum constructs a Family of integer members.
func NewEnum[T ~int](name string, defs []Def[T], opts ...FamilyOptFn) (*Family[T], error) {
	opt := newFamilyOpt(opts)
	f, err := newFamily(name, KindInt, defs, opt)
	if err != nil {
		return nil, err
	}

	if opt.continuous {
		f.checks = append(f.checks, func() error {
			return verifyContinuous(f.name, enumInts(f))
		})
	}

	if err := f.Verify(); err != nil {
		return nil, err
	}

	return f, nil
}

// NewStringEnum constructs a Family of string members.
func NewStringEnum[T ~string](name string, defs []Def[T], opts ...FamilyOptFn) (*Family[T], error) {
	opt := newFamilyOpt(opts)
	if opt.continuous {
		return nil, fmt.Errorf("%w: %s is string-valued and cannot be continuous", ErrBadDefinition, name)
	}

	f, err := newFamily(name, KindString, defs, opt)
	if err != nil {
		return nil, err
	}

	if err := f.Verify(); err != nil {
		return nil, err
	}

	return f, nil
}

// NewFlags constructs a Family of integer members that compose bitwise.
// Non-composite members must be zero or a single bit; members marked
// Composite must OR together bits other members declare.
func NewFlags[T ~int](name string, defs []Def[T], opts ...FamilyOptFn) (*Family[T], error) {
	opt := newFamilyOpt(opts)
	f, err := newFamily(name, KindIntFlags, defs, opt)
	if err != nil {
		return nil, err
	}

	f.checks = append(f.checks, func() error {
		return verifyFlagBits(f)
	})

	if opt.continuous {
		f.checks = append(f.checks, func() error {
			return verifyContinuous(f.name, enumInts(f))
		})
	}

	if err := f.Verify(); err != nil {
		return nil, err
	}

	return f, nil
}

// NewBoolFlag constructs a Family of boolean members.
// Continuity treats false as 0 and true as 1.
func NewBoolFlag[T ~bool](name string, defs []Def[T], opts ...FamilyOptFn) (*Family[T], error) {
	opt := newFamilyOpt(opts)
	f, err := newFamily(name, KindBoolFlag, defs, opt)
	if err != nil {
		return nil, err
	}

	if opt.continuous {
		f.checks = append(f.checks, func() error {
			return verifyContinuous(f.name, boolInts(f))
		})
	}

	if err := f.Verify(); err != nil {
		return nil, err
	}

	return f, nil
}

// MustEnum constructs a Family of integer members, panicking on a defective
// declaration. Use in package var blocks, where a defect must abort startup.
func MustEnum[T ~int](name string, defs []Def[T], opts ...FamilyOptFn) *Family[T] {
	f, err := NewEnum(name, defs, opts...)
	if err != nil {
		panic(err)
	}

	return f
}

// MustStringEnum constructs a Family of string members, panicking on a
// defective declaration.
func MustStringEnum[T ~string](name string, defs []Def[T], opts ...FamilyOptFn) *Family[T] {
	f, err := NewStringEnum(name, defs, opts...)
	if err != nil {
		panic(err)
	}

	return f
}

// MustFlags constructs a bitwise-composable Family, panicking on a defective
// declaration.
func MustFlags[T ~int](name string, defs []Def[T], opts ...FamilyOptFn) *Family[T] {
	f, err := NewFlags(name, defs, opts...)
	if err != nil {
		panic(err)
	}

	return f
}

// MustBoolFlag constructs a Family of boolean members, panicking on a
// defective declaration.
func MustBoolFlag[T ~bool](name string, defs []Def[T], opts ...FamilyOptFn) *Family[T] {
	f, err := NewBoolFlag(name, defs, opts...)
	if err != nil {
		panic(err)
	}

	return f
}

// Name returns the identifier naming the Family in error messages and
// registries.
func (f *Family[T]) Name() string { return f.name }

// Kind returns the storage representation the Family's members take.
func (f *Family[T]) Kind() Kind { return f.kind }

// Len returns the number of declared members.
func (f *Family[T]) Len() int { return len(f.members) }

// Members returns every member in declaration order.
// The slice is a fresh copy on each call; callers range, re-range, and
// reorder it without affecting the Family.
func (f *Family[T]) Members() []T {
	ms := make([]T, len(f.members))
	copy(ms, f.members)
	return ms
}

// Lookup returns the member persisted as raw, or ErrUnknownMember wrapped
// with the family name and offending value when no member declares it.
//
// Flags families match whole values only: a bitwise union of declared flags
// is not a member unless declared Composite. Probe single bits with HasFlag.
func (f *Family[T]) Lookup(raw T) (T, error) {
	if _, ok := f.defs[raw]; !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s has no member %v", ErrUnknownMember, f.name, raw)
	}

	return raw, nil
}

// DisplayLabel resolves the label describing member to end users.
//
// Resolution happens on every call with the translator bound at that
// moment; nothing is cached. Every declared member resolves to non-empty
// text. An undeclared value resolves to "".
func (f *Family[T]) DisplayLabel(member T) string {
	def, ok := f.defs[member]
	if !ok {
		return ""
	}

	return f.resolve(def.Label)
}

// DisplayLabels resolves every member's label, in declaration order.
func (f *Family[T]) DisplayLabels() []string {
	ls := make([]string, len(f.members))
	for i, m := range f.members {
		ls[i] = f.resolve(f.defs[m].Label)
	}

	return ls
}

// Label returns the unresolved Label declared for member and whether member
// is declared at all.
func (f *Family[T]) Label(member T) (Label, bool) {
	def, ok := f.defs[member]
	return def.Label, ok
}

// Composite reports whether member is declared as a bitwise combination of
// other members.
func (f *Family[T]) Composite(member T) bool { return f.defs[member].Composite }

// Verify re-checks the invariants the Family was constructed under:
// a valid kind, no duplicate values, a label on every member, and the
// bit and continuity rules its constructor registered.
//
// Constructors already run Verify; registries run it again at boot so a
// defective family aborts startup before any lookup happens.
func (f *Family[T]) Verify() error {
	if err := f.kind.Valid(); err != nil {
		return fmt.Errorf("%w: %s", err, f.name)
	}

	if len(f.members) == 0 {
		return fmt.Errorf("%w: %s declares no members", ErrBadDefinition, f.name)
	}

	if len(f.members) != len(f.defs) {
		return fmt.Errorf("%w: %s declares duplicate members", ErrBadDefinition, f.name)
	}

	for _, m := range f.members {
		if f.defs[m].Label.Key == "" {
			return fmt.Errorf("%w: %s member %v has no label", ErrBadDefinition, f.name, m)
		}
	}

	for _, check := range f.checks {
		if err := check(); err != nil {
			return err
		}
	}

	return nil
}

func (f *Family[T]) resolve(l Label) string {
	fn := f.translate
	if fn == nil {
		fn = translator()
	}

	return fn(l.Key, l.Context)
}

// enumInts collects the non-composite members as ints for run checks.
func enumInts[T ~int](f *Family[T]) []int {
	vals := make([]int, 0, len(f.members))
	for _, m := range f.members {
		if f.defs[m].Composite {
			continue
		}

		vals = append(vals, int(m))
	}

	return vals
}

func boolInts[T ~bool](f *Family[T]) []int {
	vals := make([]int, 0, len(f.members))
	for _, m := range f.members {
		v := 0
		if bool(m) {
			v = 1
		}

		vals = append(vals, v)
	}

	return vals
}
