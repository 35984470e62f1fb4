package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/textbox/foundation/core/error"
	"github.com/msto63/textbox/foundation/utils/textbox"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(configEnvVar, "")

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "textbox v"+Version)
	assert.Contains(t, out, "Go Version:")
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"arguments with delimiter", "", []string{"split", "-d", ",", "a,,b"}, "a\n\nb\n"},
		{"stdin with default delimiter", "x y\n", []string{"split"}, "x\ny\n"},
		{"no delimiter found", "", []string{"split", "-d", "|", "plain"}, "plain\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSplitUsesConfiguredDelimiter(t *testing.T) {
	cfg := writeFile(t, "textbox.toml", "[split]\ndelimiter = \";\"\n")

	out, _, err := execute(t, "", "--config", cfg, "split", "a;b c")
	require.NoError(t, err)
	assert.Equal(t, "a\nb c\n", out)
}

func TestRun(t *testing.T) {
	path := writeFile(t, "shout.yaml", `
name: shout
steps:
  - op: replace
    search: world
    replace: gopher
  - op: append
    text: "!"
  - op: cut-from
    start: 6
`)

	out, _, err := execute(t, "", "run", "--recipe", path, "hello", "world")
	require.NoError(t, err)
	assert.Equal(t, "gopher!\n", out)
}

func TestRunVerboseLogsSteps(t *testing.T) {
	path := writeFile(t, "tail.toml", "[[steps]]\nop = \"prepend\"\ntext = \">\"\n")

	out, logs, err := execute(t, "abc\n", "-v", "run", "-r", path)
	require.NoError(t, err)
	assert.Equal(t, ">abc\n", out)
	assert.Contains(t, logs, "step applied")
	assert.Contains(t, logs, "recipe applied")
}

func TestRunMissingRecipe(t *testing.T) {
	_, _, err := execute(t, "", "run", "--recipe", filepath.Join(t.TempDir(), "nope.toml"), "x")
	require.Error(t, err)
	assert.Equal(t, 5, ExitCode(err))

	var buf bytes.Buffer
	PrintError(&buf, err)
	assert.Contains(t, buf.String(), "Error: ")
	assert.Contains(t, buf.String(), "Hint: check the --recipe path")
}

func TestRunInvalidRecipe(t *testing.T) {
	path := writeFile(t, "bad.toml", "[[steps]]\nop = \"reverse\"\n")

	_, _, err := execute(t, "", "run", "--recipe", path, "x")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeValidationFailed))
	assert.Equal(t, 3, ExitCode(err))
}

func TestParseJSONToYAML(t *testing.T) {
	out, _, err := execute(t, "", "parse", "--to", "yaml", `{"b":1,"a":[1,2],"c":{"z":true,"y":null}}`)
	require.NoError(t, err)

	assert.Less(t, strings.Index(out, "b: 1"), strings.Index(out, "a:"))
	assert.Less(t, strings.Index(out, "a:"), strings.Index(out, "c:"))
	assert.Less(t, strings.Index(out, "z: true"), strings.Index(out, "y: null"))
	assert.Contains(t, out, "- 1")
	assert.Contains(t, out, "- 2")
}

func TestParseTOMLToJSON(t *testing.T) {
	doc := "title = \"demo\"\n\n[owner]\nname = \"ada\"\n"

	out, _, err := execute(t, doc, "parse", "--from", "toml")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"demo","owner":{"name":"ada"}}`, out)
	assert.Less(t, strings.Index(out, "title"), strings.Index(out, "owner"))
}

func TestParseOutputFormatFromConfig(t *testing.T) {
	cfg := writeFile(t, "textbox.yaml", "output:\n  format: yaml\n")

	out, _, err := execute(t, "", "--config", cfg, "parse", `{"k":"v"}`)
	require.NoError(t, err)
	assert.Equal(t, "k: v\n", out)
}

func TestParseErrors(t *testing.T) {
	schema := writeFile(t, "schema.json", `{"type":"object","required":["id"]}`)

	tests := []struct {
		name string
		args []string
		exit int
	}{
		{"malformed json", []string{"parse", `{"a":`}, 2},
		{"scalar document", []string{"parse", `42`}, 2},
		{"unknown input format", []string{"parse", "--from", "xml", "<a/>"}, 2},
		{"toml output rejected", []string{"parse", "--to", "toml", "{}"}, 1},
		{"schema violation", []string{"parse", "--schema", schema, `{"name":"x"}`}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.exit, ExitCode(err))
		})
	}
}

func TestParseSchemaPasses(t *testing.T) {
	schema := writeFile(t, "schema.json", `{"type":"object","required":["id"]}`)

	out, _, err := execute(t, "", "parse", "--schema", schema, `{"id":7}`)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.EqualValues(t, 7, got["id"])
}

func TestInspect(t *testing.T) {
	out, _, err := execute(t, "", "inspect", "--equals", "1e1", "--prefix", "1", "10")
	require.NoError(t, err)

	for _, want := range []string{"TextBox", `"10"`, "length", "numeric", "loosely equal", `starts with "1"`} {
		assert.Contains(t, out, want)
	}
}

func TestInspectRows(t *testing.T) {
	rows, err := inspectRows(textbox.New(`{"a":1,"b":2}`), inspectOptions{pattern: "/A/i"}, 5, " ")
	require.NoError(t, err)

	values := map[string]string{}
	for _, r := range rows {
		values[r.label] = r.value
	}
	assert.Equal(t, `"{\"a\"…"`, values["value"])
	assert.Equal(t, "13", values["length"])
	assert.Equal(t, "false", values["numeric"])
	assert.Equal(t, "json object (2 keys)", values["structured"])
	assert.Equal(t, "true", values["matches"])
}

func TestInspectErrors(t *testing.T) {
	_, _, err := execute(t, "", "inspect", "--pattern", "/a/x", "abc")
	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))

	t.Setenv("TEXTBOX_INSPECT_WIDTH", "-1")
	_, _, err = execute(t, "", "inspect", "abc")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))
}

func TestConfigErrors(t *testing.T) {
	t.Run("invalid log level", func(t *testing.T) {
		cfg := writeFile(t, "textbox.toml", "[log]\nlevel = \"loud\"\n")
		_, _, err := execute(t, "", "--config", cfg, "split", "a")
		require.Error(t, err)
		assert.Equal(t, 4, ExitCode(err))
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, _, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "none.toml"), "split", "a")
		require.Error(t, err)
		assert.Equal(t, 5, ExitCode(err))
	})

	t.Run("malformed file", func(t *testing.T) {
		cfg := writeFile(t, "textbox.toml", "[log\n")
		_, _, err := execute(t, "", "--config", cfg, "split", "a")
		require.Error(t, err)
		assert.Equal(t, 4, ExitCode(err))
	})
}

func TestConfigFromEnvironment(t *testing.T) {
	cfg := writeFile(t, "textbox.toml", "[split]\ndelimiter = \"-\"\n")

	var stdout bytes.Buffer
	t.Setenv(configEnvVar, cfg)
	root := NewRootCmd()
	root.SetArgs([]string{"split", "a-b"})
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	require.NoError(t, root.Execute())
	assert.Equal(t, "a\nb\n", stdout.String())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("plain")))
	assert.Equal(t, 2, ExitCode(errors.Wrap(mdwerror.New("x").WithCode(mdwerror.CodeInvalidPattern), "outer")))
}
