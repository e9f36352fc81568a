package primitives

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArea_Known(t *testing.T) {
	for _, a := range Areas() {
		assert.True(t, a.Known(), "area %q", a)
	}
	for _, a := range []Area{None, "foobar", "Content", " content"} {
		assert.False(t, a.Known(), "area %q", a)
	}
}

func TestAreas_ReturnsCopy(t *testing.T) {
	got := Areas()
	got[0] = "mutated"
	assert.Equal(t, Content, Areas()[0])
}

func TestArea_Or(t *testing.T) {
	assert.Equal(t, Content, None.Or(Content))
	assert.Equal(t, Sites, Sites.Or(Content))
}

func TestMode_Check(t *testing.T) {
	ok, err := ModeDevelopment.Check(Preview)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ModeProduction.Check("foobar")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = ModeDevelopment.Check("foobar")
	assert.False(t, ok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArea))

	var invalid *InvalidAreaError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, Area("foobar"), invalid.Area)
	assert.Equal(t, `"foobar" is not a valid layout focus area`, err.Error())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "", want: ModeProduction},
		{in: "production", want: ModeProduction},
		{in: "Development", want: ModeDevelopment},
		{in: " dev ", want: ModeDevelopment},
		{in: "qa", want: ModeProduction, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAction_Constructors(t *testing.T) {
	assert.Equal(t, Action{Type: LayoutFocusSet, Area: Preview}, SetLayoutFocus(Preview))
	assert.Equal(t, Action{Type: LayoutNextFocusSet, Area: Sidebar}, SetNextLayoutFocus(Sidebar))
	assert.Equal(t, Action{Type: LayoutNextFocusActivate}, ActivateNextLayoutFocus())
	assert.Equal(t, "LAYOUT_FOCUS_SET(preview)", SetLayoutFocus(Preview).String())
	assert.Equal(t, "LAYOUT_NEXT_FOCUS_ACTIVATE", ActivateNextLayoutFocus().String())
}
