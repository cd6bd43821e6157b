package waymark

// A FamilyOptFn is a functional option configuring a Family when
// constructing a new one.
type FamilyOptFn func(*familyOpt)

type familyOpt struct {
	continuous bool
	translate  TranslateFunc
}

func newFamilyOpt(opts []FamilyOptFn) familyOpt {
	var opt familyOpt
	for _, fn := range opts {
		fn(&opt)
	}

	return opt
}

// Continuous requires the non-composite storage values to form a gapless
// run: sorted, each value is one greater than the one before it.
//
// Opt in when other code indexes tables by member value or iterates value
// ranges, so an out-of-sequence addition fails at definition time instead.
func Continuous() FamilyOptFn {
	return func(o *familyOpt) { o.continuous = true }
}

// WithTranslateFunc sets the label resolver for this Family alone,
// overriding the process-wide one installed with SetTranslator.
//
// Use when a family's labels come from a source other than the message
// catalog, such as input key names the platform layer localizes itself.
func WithTranslateFunc(fn TranslateFunc) FamilyOptFn {
	return func(o *familyOpt) { o.translate = fn }
}
