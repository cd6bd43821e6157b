package settings

import "github.com/xy-planning-network/waymark"

// A ReportLineIndentation is how line indentation reads back while
// navigating a document: spoken, as tones, both, or not at all.
type ReportLineIndentation int

const (
	ReportLineIndentationOff            ReportLineIndentation = 0
	ReportLineIndentationSpeech         ReportLineIndentation = 1
	ReportLineIndentationTones          ReportLineIndentation = 2
	ReportLineIndentationSpeechAndTones ReportLineIndentation = 3
)

// DisplayLabel resolves the localized description of r.
func (r ReportLineIndentation) DisplayLabel() string { return ReportLineIndentationFamily.DisplayLabel(r) }

// Valid reports whether r is a declared member.
func (r ReportLineIndentation) Valid() error {
	_, err := ReportLineIndentationFamily.Lookup(r)
	return err
}

// The "Off", "Speech", and "Tones" keys collide with other families'
// source text; the context keeps their translations independent.
var ReportLineIndentationFamily = waymark.MustEnum("ReportLineIndentation", []waymark.Def[ReportLineIndentation]{
	{Value: ReportLineIndentationOff, Label: waymark.Label{Key: "Off", Context: "line indentation setting"}},
	{Value: ReportLineIndentationSpeech, Label: waymark.Label{Key: "Speech", Context: "line indentation setting"}},
	{Value: ReportLineIndentationTones, Label: waymark.Label{Key: "Tones", Context: "line indentation setting"}},
	{Value: ReportLineIndentationSpeechAndTones, Label: waymark.Label{Key: "Both Speech and Tones", Context: "line indentation setting"}},
})

// A ReportTableHeaders is which table headers read back when moving
// between cells.
type ReportTableHeaders int

const (
	ReportTableHeadersOff            ReportTableHeaders = 0
	ReportTableHeadersRowsAndColumns ReportTableHeaders = 1
	ReportTableHeadersRows           ReportTableHeaders = 2
	ReportTableHeadersColumns        ReportTableHeaders = 3
)

// DisplayLabel resolves the localized description of r.
func (r ReportTableHeaders) DisplayLabel() string { return ReportTableHeadersFamily.DisplayLabel(r) }

// Valid reports whether r is a declared member.
func (r ReportTableHeaders) Valid() error {
	_, err := ReportTableHeadersFamily.Lookup(r)
	return err
}

var ReportTableHeadersFamily = waymark.MustEnum("ReportTableHeaders", []waymark.Def[ReportTableHeaders]{
	{Value: ReportTableHeadersOff, Label: waymark.Label{Key: "Off"}},
	{Value: ReportTableHeadersRowsAndColumns, Label: waymark.Label{Key: "Rows and columns"}},
	{Value: ReportTableHeadersRows, Label: waymark.Label{Key: "Rows"}},
	{Value: ReportTableHeadersColumns, Label: waymark.Label{Key: "Columns"}},
})

// A ReportCellBorders is how much cell border formatting reads back.
type ReportCellBorders int

const (
	ReportCellBordersOff           ReportCellBorders = 0
	ReportCellBordersStyle         ReportCellBorders = 1
	ReportCellBordersColorAndStyle ReportCellBorders = 2
)

// DisplayLabel resolves the localized description of r.
func (r ReportCellBorders) DisplayLabel() string { return ReportCellBordersFamily.DisplayLabel(r) }

// Valid reports whether r is a declared member.
func (r ReportCellBorders) Valid() error {
	_, err := ReportCellBordersFamily.Lookup(r)
	return err
}

var ReportCellBordersFamily = waymark.MustEnum("ReportCellBorders", []waymark.Def[ReportCellBorders]{
	{Value: ReportCellBordersOff, Label: waymark.Label{Key: "Off"}},
	{Value: ReportCellBordersStyle, Label: waymark.Label{Key: "Styles"}},
	{Value: ReportCellBordersColorAndStyle, Label: waymark.Label{Key: "Both Colors and Styles"}},
})

// An OutputMode is the channels a piece of information reports through:
// speech, braille, both, or neither. The both member is a declared
// composite, so whole-value lookup accepts exactly these four values.
type OutputMode int

const (
	OutputModeOff              OutputMode = 0b0
	OutputModeSpeech           OutputMode = 0b01
	OutputModeBraille          OutputMode = 0b10
	OutputModeSpeechAndBraille OutputMode = OutputModeSpeech | OutputModeBraille
)

// Has reports whether o includes channel among its set bits.
func (o OutputMode) Has(channel OutputMode) bool { return waymark.HasFlag(o, channel) }

// DisplayLabel resolves the localized description of o.
func (o OutputMode) DisplayLabel() string { return OutputModeFamily.DisplayLabel(o) }

// Valid reports whether o is a declared member.
func (o OutputMode) Valid() error {
	_, err := OutputModeFamily.Lookup(o)
	return err
}

var OutputModeFamily = waymark.MustFlags("OutputMode", []waymark.Def[OutputMode]{
	{Value: OutputModeOff, Label: waymark.Label{Key: "Off"}},
	{Value: OutputModeSpeech, Label: waymark.Label{Key: "Speech"}},
	{Value: OutputModeBraille, Label: waymark.Label{Key: "Braille"}},
	{Value: OutputModeSpeechAndBraille, Label: waymark.Label{Key: "Speech and braille"}, Composite: true},
})
