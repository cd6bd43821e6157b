package waymark

import (
	"fmt"
	"math/bits"
)

// HasFlag reports whether v includes flag among its set bits.
//
// HasFlag answers bit membership only; whether v as a whole names a
// declared member is Lookup's question, and the two never substitute for
// one another. HasFlag is always false when flag is zero.
func HasFlag[T ~int](v, flag T) bool { return v&flag != 0 }

// LookupBits returns raw when every bit it sets belongs to a declared
// non-composite member of f. Options persisting a user-chosen union of
// flags validate through LookupBits; options persisting one member at a
// time stay on Lookup.
//
// Like Lookup, a miss returns ErrUnknownMember. Unlike Lookup, raw need not
// itself be declared, and zero is always valid: it sets no bits.
func LookupBits[T ~int](f *Family[T], raw T) (T, error) {
	var zero T
	if f.kind != KindIntFlags {
		return zero, fmt.Errorf("%w: %s is %s, not %s", ErrBadDefinition, f.name, f.kind, KindIntFlags)
	}

	if raw < 0 {
		return zero, fmt.Errorf("%w: %s has no flags in %d", ErrUnknownMember, f.name, int(raw))
	}

	var declared uint
	for _, m := range f.members {
		if !f.defs[m].Composite {
			declared |= uint(m)
		}
	}

	if rest := uint(raw) &^ declared; rest != 0 {
		return zero, fmt.Errorf("%w: %s declares no flag for bits %#b of %d", ErrUnknownMember, f.name, rest, int(raw))
	}

	return raw, nil
}

// verifyFlagBits checks the composition rules of a flags family:
// non-composite members are zero or a single bit, composite members OR
// together only bits that non-composite members declare.
func verifyFlagBits[T ~int](f *Family[T]) error {
	var declared uint
	for _, m := range f.members {
		if f.defs[m].Composite {
			continue
		}

		if m < 0 {
			return fmt.Errorf("%w: %s member %d is negative", ErrBadDefinition, f.name, int(m))
		}

		if bits.OnesCount(uint(m)) > 1 {
			return fmt.Errorf("%w: %s member %d sets more than one bit; mark it Composite", ErrBadDefinition, f.name, int(m))
		}

		declared |= uint(m)
	}

	for _, m := range f.members {
		if !f.defs[m].Composite {
			continue
		}

		if m < 0 {
			return fmt.Errorf("%w: %s member %d is negative", ErrBadDefinition, f.name, int(m))
		}

		if bits.OnesCount(uint(m)) < 2 {
			return fmt.Errorf("%w: %s member %d is marked Composite but combines nothing", ErrBadDefinition, f.name, int(m))
		}

		if rest := uint(m) &^ declared; rest != 0 {
			return fmt.Errorf("%w: %s member %d sets bits %#b no member declares", ErrBadDefinition, f.name, int(m), rest)
		}
	}

	return nil
}
