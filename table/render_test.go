package table_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pythoner/table"
)

var personFields = []string{"name", "age"}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	out, err := table.Render([]table.Row{
		table.NewRow(personFields, "a", 12),
		table.NewRow(personFields, "bob", 5),
	})
	require.NoError(t, err)
	assert.Equal(t,
		"name | age\n"+
			"-----+----\n"+
			"a    | 12 \n"+
			"bob  | 5  \n",
		out)
}

func TestRenderTableWideValues(t *testing.T) {
	t.Parallel()

	fields := []string{"name", "age", "gender"}

	out, err := table.Render([]table.Row{
		table.NewRow(fields, "a", 12, "man"),
		table.NewRow(fields, "b", 23, "woman"),
		table.NewRow(fields, "c", 120, "man"),
	})
	require.NoError(t, err)
	assert.Equal(t,
		"name | age | gender\n"+
			"-----+-----+-------\n"+
			"a    | 12  | man   \n"+
			"b    | 23  | woman \n"+
			"c    | 120 | man   \n",
		out)
}

func TestRenderTableRuneWidth(t *testing.T) {
	t.Parallel()

	fields := []string{"名字", "id"}

	out, err := table.Render([]table.Row{
		table.NewRow(fields, "张三丰", 1),
		table.NewRow(fields, "李", 2),
	})
	require.NoError(t, err)
	assert.Equal(t,
		"名字  | id\n"+
			"----+---\n"+
			"张三丰 | 1 \n"+
			"李   | 2 \n",
		out)
}

func TestRenderSingleRow(t *testing.T) {
	t.Parallel()

	out, err := table.Render([]table.Row{table.NewRow(personFields, "a", 12)})
	require.NoError(t, err)
	assert.Equal(t, "name = a\n age = 12\n", out)
}

func TestRenderValues(t *testing.T) {
	t.Parallel()

	fields := []string{"flag", "missing", "ratio"}

	out, err := table.Render([]table.Row{table.NewRow(fields, true, nil, 1.5)})
	require.NoError(t, err)
	assert.Equal(t, "   flag = True\nmissing = None\n  ratio = 1.5\n", out)
}

func TestRenderInvalid(t *testing.T) {
	t.Parallel()

	cases := map[string][]table.Row{
		"no rows":         nil,
		"different order": {table.NewRow(personFields, "a", 1), table.NewRow([]string{"age", "name"}, 2, "b")},
		"missing field":   {table.NewRow(personFields, "a", 1), table.NewRow([]string{"name"}, "b")},
		"short values":    {table.NewRow(personFields, "a")},
		"duplicate field": {table.NewRow([]string{"a", "a"}, 1, 2)},
	}

	for name, rows := range cases {
		name, rows := name, rows

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := table.Render(rows)
			require.ErrorIs(t, err, table.ErrInvalidArgument)
		})
	}
}

func TestFprint(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, table.Fprint(&buf, []table.Row{table.NewRow(personFields, "a", 12)}))
	assert.Equal(t, "name = a\n age = 12\n", buf.String())

	buf.Reset()
	require.ErrorIs(t, table.Fprint(&buf, nil), table.ErrInvalidArgument)
	assert.Empty(t, buf.String())
}
