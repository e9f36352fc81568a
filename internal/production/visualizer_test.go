package production

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/layoutfocus/internal/core"
	"github.com/comalice/layoutfocus/internal/primitives"
)

func TestVisualizer_ExportDOT_Initial(t *testing.T) {
	var v Visualizer
	dot := v.ExportDOT(primitives.FocusState{})

	assert.True(t, strings.HasPrefix(dot, "digraph LayoutFocus {"))
	assert.Contains(t, dot, `"start" [shape=point];`)
	for _, area := range primitives.Areas() {
		assert.Contains(t, dot, `"start" -> "`+string(area)+`" [label="SET"];`)
	}
	assert.NotContains(t, dot, "ACTIVATE")
	assert.NotContains(t, dot, "fillcolor")
}

func TestVisualizer_ExportDOT_Highlights(t *testing.T) {
	var v Visualizer
	dot := v.ExportDOT(primitives.FocusState{
		Current:  primitives.Sidebar,
		Previous: primitives.Content,
		Next:     primitives.Preview,
	})

	assert.NotContains(t, dot, `"start"`)
	assert.Contains(t, dot, `"sidebar" [label="sidebar" style="rounded,filled" fillcolor=lightgreen];`)
	assert.Contains(t, dot, `"content" [label="content" style="rounded,filled" fillcolor=lightgrey];`)
	assert.Contains(t, dot, `"preview" [label="preview" style="rounded,dashed"];`)
	assert.NotContains(t, dot, `"sidebar" -> "sidebar"`)
	assert.Contains(t, dot, `"sidebar" -> "preview" [label="ACTIVATE" style=bold color=blue];`)
}

func TestVisualizer_ExportDOT_ActivateFallsBackToContent(t *testing.T) {
	var v Visualizer
	dot := v.ExportDOT(primitives.FocusState{Current: primitives.Sites, Previous: primitives.Sidebar})

	assert.Contains(t, dot, `"sites" -> "content" [label="ACTIVATE"`)
}

func TestVisualizer_ExportJSON(t *testing.T) {
	var v Visualizer
	state := core.Reduce(core.NewState(), primitives.SetLayoutFocus(primitives.Preview))

	data, err := v.ExportJSON(state)
	require.NoError(t, err)

	var decoded core.State
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, primitives.Preview, core.CurrentLayoutFocus(&decoded))
}
