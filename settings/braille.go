package settings

import "github.com/xy-planning-network/waymark"

// A ShowMessages is how long braille messages stay on the display:
// not at all, until a timeout elapses, or until dismissed.
type ShowMessages int

const (
	ShowMessagesDisabled         ShowMessages = 0
	ShowMessagesUseTimeout       ShowMessages = 1
	ShowMessagesShowIndefinitely ShowMessages = 2
)

// DisplayLabel resolves the localized description of s.
func (s ShowMessages) DisplayLabel() string { return ShowMessagesFamily.DisplayLabel(s) }

// Valid reports whether s is a declared member.
func (s ShowMessages) Valid() error {
	_, err := ShowMessagesFamily.Lookup(s)
	return err
}

var ShowMessagesFamily = waymark.MustEnum("ShowMessages", []waymark.Def[ShowMessages]{
	{Value: ShowMessagesDisabled, Label: waymark.Label{Key: "Disabled"}},
	{Value: ShowMessagesUseTimeout, Label: waymark.Label{Key: "Use timeout"}},
	{Value: ShowMessagesShowIndefinitely, Label: waymark.Label{Key: "Show indefinitely"}},
})

// A TetherTo is what the braille display follows: the focus, the review
// cursor, or whichever moved last.
type TetherTo string

const (
	TetherToAuto   TetherTo = "auto"
	TetherToFocus  TetherTo = "focus"
	TetherToReview TetherTo = "review"
)

// DisplayLabel resolves the localized description of t.
func (t TetherTo) DisplayLabel() string { return TetherToFamily.DisplayLabel(t) }

// Valid reports whether t is a declared member.
func (t TetherTo) Valid() error {
	_, err := TetherToFamily.Lookup(t)
	return err
}

var TetherToFamily = waymark.MustStringEnum("TetherTo", []waymark.Def[TetherTo]{
	{Value: TetherToAuto, Label: waymark.Label{Key: "automatically"}},
	{Value: TetherToFocus, Label: waymark.Label{Key: "to focus"}},
	{Value: TetherToReview, Label: waymark.Label{Key: "to review"}},
})

// A BrailleMode is what drives the display: the cursors or speech output.
type BrailleMode string

const (
	BrailleModeFollowCursors BrailleMode = "followCursors"
	BrailleModeSpeechOutput  BrailleMode = "speechOutput"
)

// DisplayLabel resolves the localized description of b.
func (b BrailleMode) DisplayLabel() string { return BrailleModeFamily.DisplayLabel(b) }

// Valid reports whether b is a declared member.
func (b BrailleMode) Valid() error {
	_, err := BrailleModeFamily.Lookup(b)
	return err
}

var BrailleModeFamily = waymark.MustStringEnum("BrailleMode", []waymark.Def[BrailleMode]{
	{Value: BrailleModeFollowCursors, Label: waymark.Label{Key: "follow cursors"}},
	{Value: BrailleModeSpeechOutput, Label: waymark.Label{Key: "display speech output"}},
})

// A ParagraphStartMarker is the text prepended to a paragraph on the
// display. The empty string is itself a member: it means no marker.
type ParagraphStartMarker string

const (
	ParagraphStartMarkerNone    ParagraphStartMarker = ""
	ParagraphStartMarkerSpace   ParagraphStartMarker = " "
	ParagraphStartMarkerPilcrow ParagraphStartMarker = "¶"
)

// DisplayLabel resolves the localized description of p.
func (p ParagraphStartMarker) DisplayLabel() string { return ParagraphStartMarkerFamily.DisplayLabel(p) }

// Valid reports whether p is a declared member.
func (p ParagraphStartMarker) Valid() error {
	_, err := ParagraphStartMarkerFamily.Lookup(p)
	return err
}

var ParagraphStartMarkerFamily = waymark.MustStringEnum("ParagraphStartMarker", []waymark.Def[ParagraphStartMarker]{
	{Value: ParagraphStartMarkerNone, Label: waymark.Label{Key: "No paragraph start marker (default)", Context: "paragraphMarker"}},
	{Value: ParagraphStartMarkerSpace, Label: waymark.Label{Key: "Double space (  )", Context: "paragraphMarker"}},
	{Value: ParagraphStartMarkerPilcrow, Label: waymark.Label{Key: "Pilcrow (¶)", Context: "paragraphMarker"}},
})
