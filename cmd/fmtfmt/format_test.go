package main

import (
	"testing"

	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/assertive/require"

	"github.com/loomfmt/core/printer"
)

func TestParseIndent(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    printer.IndentStyle
		wantErr bool
	}{
		"Tab":          {in: "tab", want: printer.Tab()},
		"Empty":        {in: "", want: printer.Tab()},
		"TwoSpaces":    {in: "space:2", want: printer.Spaces(2)},
		"MissingValue": {in: "space:", wantErr: true},
		"NotANumber":   {in: "space:x", wantErr: true},
		"UnknownStyle": {in: "bogus", wantErr: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parseIndent(test.in)
			if test.wantErr {
				require.NotNil(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got == test.want)
		})
	}
}

func TestFormatDOT(t *testing.T) {
	got, err := formatDOT("digraph{a->b}", printer.Options{Indent: printer.Tab()})
	require.NoError(t, err)
	assert.Equals(t, got, "digraph {\n\ta -> b\n}")
}

func TestFormatDOTReportsParseErrors(t *testing.T) {
	_, err := formatDOT("digraph{", printer.Options{})
	require.NotNil(t, err)
}

func TestFormatJSON(t *testing.T) {
	got, err := formatJSON(`{"a":1,"b":2}`, printer.Options{Indent: printer.Tab()})
	require.NoError(t, err)
	assert.Equals(t, got, `{ "a": 1, "b": 2 }`)
}

func TestFormatJSONAppliesSet(t *testing.T) {
	sets = []string{"a=9"}
	defer func() { sets = nil }()

	got, err := formatJSON(`{"a":1,"b":2}`, printer.Options{Indent: printer.Tab()})
	require.NoError(t, err)
	assert.Equals(t, got, `{ "a": "9", "b": 2 }`)
}

func TestFormatJSONRejectsMalformedSet(t *testing.T) {
	sets = []string{"noequalsign"}
	defer func() { sets = nil }()

	_, err := formatJSON(`{"a":1}`, printer.Options{})
	require.NotNil(t, err)
}

func TestFormatJSONRejectsInvalidInput(t *testing.T) {
	_, err := formatJSON(`{not json`, printer.Options{})
	require.NotNil(t, err)
}
