package settings

import "github.com/xy-planning-network/waymark"

// An AddonsAutomaticUpdate is how add-on updates apply: announced,
// installed unprompted, or neither.
type AddonsAutomaticUpdate string

const (
	AddonsAutomaticUpdateNotify   AddonsAutomaticUpdate = "notify"
	AddonsAutomaticUpdateUpdate   AddonsAutomaticUpdate = "update"
	AddonsAutomaticUpdateDisabled AddonsAutomaticUpdate = "disabled"
)

// DisplayLabel resolves the localized description of a.
func (a AddonsAutomaticUpdate) DisplayLabel() string { return AddonsAutomaticUpdateFamily.DisplayLabel(a) }

// Valid reports whether a is a declared member.
func (a AddonsAutomaticUpdate) Valid() error {
	_, err := AddonsAutomaticUpdateFamily.Lookup(a)
	return err
}

var AddonsAutomaticUpdateFamily = waymark.MustStringEnum("AddonsAutomaticUpdate", []waymark.Def[AddonsAutomaticUpdate]{
	{Value: AddonsAutomaticUpdateNotify, Label: waymark.Label{Key: "Notify"}},
	{Value: AddonsAutomaticUpdateUpdate, Label: waymark.Label{Key: "Update Automatically"}},
	{Value: AddonsAutomaticUpdateDisabled, Label: waymark.Label{Key: "Disabled"}},
})
