package prefs

// Values is the flat form of a stored configuration: one entry per Key,
// values kept as their stored string form.
type Values map[Key]string

// Clone returns an independent copy of vs.
func (vs Values) Clone() Values {
	out := make(Values, len(vs))
	for k, v := range vs {
		out[k] = v
	}

	return out
}

// Merge overlays other onto a copy of vs; entries in other win.
//
// Merge layers a session's transient overrides on top of a profile
// without disturbing either.
func (vs Values) Merge(other Values) Values {
	out := vs.Clone()
	for k, v := range other {
		out[k] = v
	}

	return out
}

// sections nests the flat map into section, name, value form for
// serialization.
func (vs Values) sections() map[string]map[string]string {
	out := make(map[string]map[string]string)
	for k, v := range vs {
		section, ok := out[k.Section()]
		if !ok {
			section = make(map[string]string)
			out[k.Section()] = section
		}

		section[k.Name()] = v
	}

	return out
}

// fromSections flattens nested section, name, value form back into Values.
func fromSections(nested map[string]map[string]string) Values {
	vs := make(Values)
	for section, names := range nested {
		for name, v := range names {
			vs[Key(section+"."+name)] = v
		}
	}

	return vs
}
