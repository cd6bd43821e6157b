/*
Package waymark defines the vocabulary of discrete configuration options:
closed sets of machine values paired with the localized labels describing
them to end users.

# Overview

A configuration option that accepts one of a handful of values is declared
as a [Family]: an ordered, immutable set of members, each pairing the
storage value persisted to settings with a [Label] resolved for display.
Members are typed constants of a type the caller defines, so the compiler
rejects values from the wrong family and equality is member identity.

	type TetherTo string

	const (
		TetherToAuto   TetherTo = "auto"
		TetherToFocus  TetherTo = "focus"
		TetherToReview TetherTo = "review"
	)

	var TetherToFamily = waymark.MustStringEnum("TetherTo", []waymark.Def[TetherTo]{
		{Value: TetherToAuto, Label: waymark.Label{Key: "automatically"}},
		{Value: TetherToFocus, Label: waymark.Label{Key: "to focus"}},
		{Value: TetherToReview, Label: waymark.Label{Key: "to review"}},
	})

# Definition-time verification

A defective declaration is a programming error, not a runtime condition.
Constructors check that storage values are unique, that every member
carries a label, that flags compose only declared bits, and, when
[Continuous] is set, that integer values form a gapless run. The Must
variants panic so a defect aborts startup with a message naming the family
and the offending member. [Family.Verify] re-checks the same invariants for
registry-wide sweeps at boot.

# Lookup and labels

[Family.Lookup] turns a raw persisted value back into a member, returning
[ErrUnknownMember] when no member declares it. Recovering from that miss
(substituting a default, warning the user) belongs to the persistence
layer, never to the Family. [Family.DisplayLabel] resolves a member's label
at call time through the [TranslateFunc] bound with [SetTranslator], so
declaring families never requires localization to be ready.

# Flags

An integer-flags Family declares members that are single bits plus any
meaningful combinations, marked [Def].Composite. Lookup matches whole
values only: an undeclared union of declared bits is not a member. Probing
whether a value includes one flag is a different question; ask it with
[HasFlag].
*/
package waymark
