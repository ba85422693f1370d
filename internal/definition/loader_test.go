package definition

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const newsYAML = `
package: test_models
order_classes: true
modules:
  - name: news
    lines: ["import json", ""]
    classes:
      - name: News
        super: Base
        depends: [Base]
        body: ["s = None"]
        init:
          args: [title, content]
          named:
            - name: author
              default: "'admin'"
        methods:
          - name: hello
            named: [{name: word, default: "'world'"}]
            body: ["print(word)"]
          - name: get_field
            args: [name]
            body: ["return self.fields[name]"]
      - name: Base
`

const newsTOML = `
package = "test_models"
order_classes = true

[[modules]]
name = "news"
lines = ["import json", ""]

[[modules.classes]]
name = "News"
super = "Base"
depends = ["Base"]
body = ["s = None"]

[modules.classes.init]
args = ["title", "content"]
named = [{ name = "author", default = "'admin'" }]

[[modules.classes.methods]]
name = "hello"
named = [{ name = "word", default = "'world'" }]
body = ["print(word)"]

[[modules.classes.methods]]
name = "get_field"
args = ["name"]
body = ["return self.fields[name]"]

[[modules.classes]]
name = "Base"
`

func TestParseYAML(t *testing.T) {
	t.Parallel()

	def, err := Parse([]byte(newsYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "test_models", def.Name)
	assert.True(t, def.OrderClasses)
	require.Len(t, def.Modules, 1)

	m := def.Modules[0]
	assert.Equal(t, []string{"import json", ""}, m.Lines)
	require.Len(t, m.Classes, 2)

	c := m.Classes[0]
	assert.Equal(t, "Base", c.Super)
	require.NotNil(t, c.Init)
	assert.Equal(t, []ArgDef{{Name: "author", Default: "'admin'"}}, c.Init.Named)
	require.Len(t, c.Methods, 2)
	assert.Equal(t, []string{"name"}, c.Methods[1].Args)
}

func TestParseTOMLMatchesYAML(t *testing.T) {
	t.Parallel()

	fromYAML, err := Parse([]byte(newsYAML), FormatYAML)
	require.NoError(t, err)

	fromTOML, err := Parse([]byte(newsTOML), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromTOML)
}

func TestParseJSON(t *testing.T) {
	t.Parallel()

	def, err := Parse([]byte(`{"package": "p", "modules": [{"name": "m", "classes": [{"name": "C"}]}]}`), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "C", def.Modules[0].Classes[0].Name)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`
modules:
  - classes:
      - methods:
          - args: [""]
      - name: C
        init:
          named: [{default: "1"}]
`), FormatYAML)
	require.ErrorIs(t, err, ErrInvalidDefinition)

	msg := err.Error()
	assert.Contains(t, msg, "package name is required")
	assert.Contains(t, msg, "modules[0]: name is required")
	assert.Contains(t, msg, "modules[0]: classes[0]: name is required")
	assert.Contains(t, msg, "classes[0]: methods[0]: name is required")
	assert.Contains(t, msg, "modules[0]: class C: init: named[0] has no name")
}

func TestFormatOf(t *testing.T) {
	t.Parallel()

	for path, want := range map[string]Format{
		"a.yaml": FormatYAML,
		"a.YML":  FormatYAML,
		"a.json": FormatYAML,
		"a.toml": FormatTOML,
	} {
		got, err := FormatOf(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatOf("a.xml")
	require.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "news.toml")
	require.NoError(t, os.WriteFile(path, []byte(newsTOML), 0o644))

	def, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "test_models", def.Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	def, err := Parse([]byte(newsYAML), FormatYAML)
	require.NoError(t, err)

	data, err := Marshal(def)
	require.NoError(t, err)

	again, err := Parse(data, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, def, again)
}
