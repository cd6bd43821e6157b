package waymark_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waymark"
)

func TestChoices(t *testing.T) {
	// Arrange
	f := waymark.MustFlags("OutputMode", newOutputDefs())

	// Act
	cl := waymark.Choices(f)

	// Assert
	require.Equal(t, waymark.ChoiceList[outputMode]{
		{Member: outputOff, Label: "Off"},
		{Member: outputSpeech, Label: "Speech"},
		{Member: outputBraille, Label: "Braille"},
		{Member: outputSpeechAndBraille, Label: "Speech and braille", Composite: true},
	}, cl)
}

func TestChoiceListPrimitives(t *testing.T) {
	composite := waymark.Choice[outputMode]{Member: outputSpeechAndBraille, Composite: true}
	primitive := waymark.Choice[outputMode]{Member: outputSpeech}

	for _, tc := range []struct {
		name   string
		input  waymark.ChoiceList[outputMode]
		output waymark.ChoiceList[outputMode]
	}{
		{"Nil", nil, make(waymark.ChoiceList[outputMode], 0)},
		{"Zero", make(waymark.ChoiceList[outputMode], 0), make(waymark.ChoiceList[outputMode], 0)},
		{
			"Filter-All",
			waymark.ChoiceList[outputMode]{composite, composite},
			make(waymark.ChoiceList[outputMode], 0),
		},
		{
			"From-3-To-2",
			waymark.ChoiceList[outputMode]{primitive, composite, primitive},
			waymark.ChoiceList[outputMode]{primitive, primitive},
		},
		{
			"Keep-All",
			waymark.ChoiceList[outputMode]{primitive, primitive},
			waymark.ChoiceList[outputMode]{primitive, primitive},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.output, tc.input.Primitives())
		})
	}
}
