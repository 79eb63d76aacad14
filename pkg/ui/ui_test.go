package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/reactspring/pkg/errors"
	"github.com/arthur-debert/reactspring/pkg/ui"
	"github.com/arthur-debert/reactspring/pkg/ui/view"
)

func sampleSummary() view.Summary {
	return view.Summary{
		Project:     "shop",
		Destination: "/work/shop",
		Stack: []view.Field{
			{Label: "Frontend", Value: "vite"},
			{Label: "Backend", Value: "kotlin (gradle)"},
		},
		Counts:    view.Counts{Directories: 12, TextFiles: 20, BinaryFiles: 2, Relocated: 3},
		Injected:  []string{"server/src/main/resources/config/application.properties"},
		NextSteps: []string{"cd shop/client", "npm install"},
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "auto", ui.FormatAuto.String())
	assert.Equal(t, "term", ui.FormatTerminal.String())
	assert.Equal(t, "text", ui.FormatText.String())
	assert.Equal(t, "json", ui.FormatJSON.String())
	assert.Equal(t, "unknown", ui.Format(999).String())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{"auto", ui.FormatAuto, false},
		{"", ui.FormatAuto, false},
		{"term", ui.FormatTerminal, false},
		{"TERMINAL", ui.FormatTerminal, false},
		{"plain", ui.FormatText, false},
		{"Json", ui.FormatJSON, false},
		{"xml", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			format, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	t.Run("buffers are plain text", func(t *testing.T) {
		assert.Equal(t, ui.FormatText, ui.DetectFormat(&bytes.Buffer{}))
	})

	t.Run("NO_COLOR forces text", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, ui.FormatText, ui.DetectFormat(&bytes.Buffer{}))
	})
}

func TestNewRenderer(t *testing.T) {
	for _, format := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		t.Run(format.String(), func(t *testing.T) {
			r, err := ui.NewRenderer(format, &bytes.Buffer{})
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}

	r, err := ui.NewRenderer(ui.Format(999), &bytes.Buffer{})
	require.Error(t, err)
	assert.Nil(t, r)
}

func TestTextSummary(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderSummary(sampleSummary()))
	out := buf.String()
	assert.Contains(t, out, "Created shop in /work/shop\n")
	assert.Contains(t, out, "  Frontend      vite\n")
	assert.Contains(t, out, "12 directories, 20 text files, 2 binary files (3 relocated)")
	assert.Contains(t, out, "Added\n  server/src/main/resources/config/application.properties\n")
	assert.Contains(t, out, "Next steps\n  cd shop/client\n  npm install\n")
}

func TestTextDryRunSummary(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	s := sampleSummary()
	s.DryRun = true
	s.Injected = nil
	require.NoError(t, r.RenderSummary(s))
	out := buf.String()
	assert.Contains(t, out, "Dry run: would create shop in /work/shop")
	assert.NotContains(t, out, "Files")
	assert.NotContains(t, out, "Added")
}

func TestTerminalSummary(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderSummary(sampleSummary()))
	out := buf.String()
	for _, want := range []string{"shop", "Stack", "Frontend", "kotlin (gradle)", "Next steps", "npm install"} {
		assert.Contains(t, out, want)
	}
}

func TestCatalogRendering(t *testing.T) {
	catalog := view.Catalog{Root: "/tpl", Frontends: []string{"cra", "vite"}}

	var text bytes.Buffer
	r, _ := ui.NewRenderer(ui.FormatText, &text)
	require.NoError(t, r.RenderCatalog(catalog))
	assert.Contains(t, text.String(), "Frontends\n  cra\n  vite\n")
	assert.Contains(t, text.String(), "Backends\n  (none)\n")

	var js bytes.Buffer
	r, _ = ui.NewRenderer(ui.FormatJSON, &js)
	require.NoError(t, r.RenderCatalog(catalog))
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Equal(t, []interface{}{}, decoded["backends"])
}

func TestJSONSummary(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderSummary(sampleSummary()))

	var decoded view.Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleSummary(), decoded)
}

func TestJSONError(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	cause := errors.New(errors.ErrAlreadyExists, "destination exists").WithDetail("path", "/work/shop")
	require.NoError(t, r.RenderError(cause))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "ALREADY_EXISTS", decoded["code"])
	assert.Equal(t, map[string]interface{}{"path": "/work/shop"}, decoded["details"])
}

func TestTextErrorAndMessage(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderError(errors.New(errors.ErrNotFound, "missing")))
	require.NoError(t, r.RenderMessage("hello"))
	assert.Equal(t, "Error: [NOT_FOUND] missing\nhello\n", buf.String())
}
