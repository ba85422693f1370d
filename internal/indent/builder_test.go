package indent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderSave(t *testing.T) {
	t.Parallel()

	var b Builder

	b.Save("class A(object):")
	b.Indent(1)
	b.Save("x = 1\ny = 2")
	b.Save("")
	require.NoError(t, b.Dedent(1))
	b.Save("z = 3")

	assert.Equal(t, "class A(object):\n    x = 1\n    y = 2\n    \nz = 3\n", b.Finished())
}

func TestBuilderBlank(t *testing.T) {
	t.Parallel()

	var b Builder

	b.Indent(2)
	b.Blank(2)
	b.Blank(0)
	b.Save("a")

	assert.Equal(t, "\n\n        a\n", b.Finished())
}

func TestBuilderDedent(t *testing.T) {
	t.Parallel()

	t.Run("restores level", func(t *testing.T) {
		t.Parallel()

		var b Builder

		b.Indent(3)
		require.NoError(t, b.Dedent(2))
		assert.Equal(t, 1, b.Level())
		require.NoError(t, b.Dedent(1))
		assert.Equal(t, 0, b.Level())
	})

	t.Run("below zero", func(t *testing.T) {
		t.Parallel()

		for start := 0; start < 4; start++ {
			for excess := 1; excess < 4; excess++ {
				var b Builder

				b.Indent(start)
				err := b.Dedent(start + excess)
				require.ErrorIs(t, err, ErrInternal)
				assert.Equal(t, start, b.Level(), "level must be untouched after a failed dedent")
			}
		}
	})
}

func TestBuilderFinishedEmpty(t *testing.T) {
	t.Parallel()

	var b Builder

	assert.Empty(t, b.Finished())
}

func TestBuilderIndentIgnoresNegative(t *testing.T) {
	t.Parallel()

	var b Builder

	b.Indent(-1)
	b.Save("x")
	assert.Equal(t, 0, b.Level())
	assert.Equal(t, "x\n", b.Finished())

	b.Indent(2)
	b.Indent(-5)
	assert.Equal(t, 2, b.Level())
}
