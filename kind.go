package waymark

import "fmt"

// A Kind is the storage representation a Family commits its members to.
type Kind int

const (
	KindUnknown Kind = iota
	KindInt
	KindString
	KindIntFlags
	KindBoolFlag
)

func (k Kind) String() string {
	return map[Kind]string{
		KindInt:      "Integer",
		KindString:   "String",
		KindIntFlags: "IntegerFlags",
		KindBoolFlag: "BooleanFlag",
		KindUnknown:  "Unknown",
	}[k]
}

func (k Kind) Valid() error {
	switch k {
	case KindInt, KindString, KindIntFlags, KindBoolFlag:
		return nil
	default:
		return fmt.Errorf("%w: no such kind %d", ErrBadDefinition, int(k))
	}
}
