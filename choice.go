package waymark

// A Choice pairs a member with its resolved display label,
// ready for rendering as one entry of a settings control.
type Choice[T Value] struct {
	Member    T      `json:"member"`
	Label     string `json:"label"`
	Composite bool   `json:"composite"`
}

// A ChoiceList is the ordered set of Choices a settings control renders
// for one Family.
type ChoiceList[T Value] []Choice[T]

// Choices resolves every member of f into a ChoiceList, in declaration
// order, with labels resolved by the translator bound at call time.
func Choices[T Value](f *Family[T]) ChoiceList[T] {
	cl := make(ChoiceList[T], 0, f.Len())
	for _, m := range f.members {
		def := f.defs[m]
		cl = append(cl, Choice[T]{
			Member:    m,
			Label:     f.resolve(def.Label),
			Composite: def.Composite,
		})
	}

	return cl
}

// Primitives returns a ChoiceList after removing all composite Choices.
// Check-list controls render one toggle per flag; composite members exist
// for whole-value storage, not toggling.
// If none remain, Primitives returns a zero-value ChoiceList.
func (cl ChoiceList[T]) Primitives() ChoiceList[T] {
	var n int
	for _, c := range cl {
		if !c.Composite {
			cl[n] = c
			n++
		}
	}

	if n == 0 {
		return make(ChoiceList[T], 0)
	}

	return cl[:n]
}
