package waymark

import (
	"fmt"
	"sort"
)

// VerifyMapping checks that m is a total mapping out of f: every member of
// f maps to something, and nothing outside f's members appears as a key.
//
// Conversions into another subsystem's vocabulary run VerifyMapping at
// definition time, so adding a member without extending the mapping aborts
// startup instead of converting wrongly at runtime.
func VerifyMapping[T Value, U any](f *Family[T], m map[T]U) error {
	for _, member := range f.members {
		if _, ok := m[member]; !ok {
			return fmt.Errorf("%w: %s member %v has no mapping", ErrBadDefinition, f.name, member)
		}
	}

	for k := range m {
		if _, ok := f.defs[k]; !ok {
			return fmt.Errorf("%w: %s maps %v, which it does not declare", ErrBadDefinition, f.name, k)
		}
	}

	return nil
}

// verifyContinuous checks vals form a gapless run from their smallest value.
func verifyContinuous(name string, vals []int) error {
	sorted := make([]int, len(vals))
	copy(sorted, vals)
	sort.Ints(sorted)

	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			return fmt.Errorf("%w: %s skips from %d to %d; its members must be continuous", ErrBadDefinition, name, sorted[i-1], sorted[i])
		}
	}

	return nil
}
