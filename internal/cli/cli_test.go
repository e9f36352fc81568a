package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/layoutfocus/internal/primitives"
	"github.com/comalice/layoutfocus/internal/production"
)

type fixture struct {
	dir    string
	config string
}

func newFixture(t *testing.T, env string) fixture {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("LAYOUTFOCUS_CONFIG", "")
	t.Setenv("LAYOUTFOCUS_ENV", "")

	cfg := filepath.Join(dir, "config.toml")
	rec := filepath.Join(dir, "sessions")
	body := "env = \"" + env + "\"\n\n[log]\nlevel = \"error\"\n\n[record]\ndir = \"" + filepath.ToSlash(rec) + "\"\nformat = \"yaml\"\n"
	require.NoError(t, os.WriteFile(cfg, []byte(body), 0o644))
	return fixture{dir: dir, config: cfg}
}

func (f fixture) script(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(f.dir, "focus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAreas(t *testing.T) {
	f := newFixture(t, "production")

	out, err := run(t, "--config", f.config, "areas")
	require.NoError(t, err)
	assert.Equal(t, "content (default)\nsidebar\nsites\npreview\n", out)
}

func TestReplay(t *testing.T) {
	f := newFixture(t, "production")
	path := f.script(t, "- set: sidebar\n- next: preview\n- activate\n- legacy-set: sites\n")

	out, err := run(t, "--config", f.config, "replay", path)
	require.NoError(t, err)

	assert.Contains(t, out, "canonical current=sites previous=preview next=<none>")
	assert.Contains(t, out, "legacy    current=sites previous=preview next=<none>")
	assert.NotContains(t, out, "transcript")
}

func TestReplay_Record(t *testing.T) {
	f := newFixture(t, "production")
	path := f.script(t, "- set: sidebar\n- set: preview\n")

	out, err := run(t, "--config", f.config, "replay", path, "--record", "--format", "json")
	require.NoError(t, err)

	var transcriptPath string
	for _, line := range strings.Split(out, "\n") {
		if p, ok := strings.CutPrefix(line, "transcript "); ok {
			transcriptPath = p
		}
	}
	require.NotEmpty(t, transcriptPath)
	assert.Equal(t, ".json", filepath.Ext(transcriptPath))

	tr, err := production.LoadTranscript(transcriptPath)
	require.NoError(t, err)
	require.Len(t, tr.Transitions, 2)
	assert.Equal(t, primitives.Preview, tr.Transitions[1].To.Current)
}

func TestReplay_DevelopmentRejectsUnknownArea(t *testing.T) {
	f := newFixture(t, "production")
	path := f.script(t, "- set: header\n")

	_, err := run(t, "--config", f.config, "replay", path)
	require.NoError(t, err)

	_, err = run(t, "--config", f.config, "--env", "development", "replay", path)
	require.ErrorIs(t, err, primitives.ErrInvalidArea)
}

func TestDot(t *testing.T) {
	f := newFixture(t, "production")
	path := f.script(t, "- set: sites\n- next: preview\n")

	out, err := run(t, "--config", f.config, "dot", "--script", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph LayoutFocus {"))
	assert.Contains(t, out, `"sites" -> "preview" [label="ACTIVATE"`)

	out, err = run(t, "--config", f.config, "dot", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"layoutFocus"`)
}

func TestBadConfig(t *testing.T) {
	f := newFixture(t, "qa")

	_, err := run(t, "--config", f.config, "areas")
	require.Error(t, err)
}
