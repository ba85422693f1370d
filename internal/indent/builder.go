// Package indent provides the line accumulator used by the code assembler.
package indent

import (
	"errors"
	"fmt"
	"strings"
)

// Unit is the text emitted once per indentation level.
const Unit = "    "

// ErrInternal is returned when the builder is driven into an impossible state.
var ErrInternal = errors.New("internal error in code generator")

// Builder accumulates lines prefixed with the current indentation.
type Builder struct {
	code  strings.Builder
	level int
}

// Save appends every line of text at the current level.
// Empty lines are indented too.
func (b *Builder) Save(text string) {
	prefix := strings.Repeat(Unit, b.level)

	for _, line := range strings.Split(text, "\n") {
		b.code.WriteString(prefix)
		b.code.WriteString(line)
		b.code.WriteByte('\n')
	}
}

// Blank appends count raw newlines.
func (b *Builder) Blank(count int) {
	if count <= 0 {
		return
	}

	b.code.WriteString(strings.Repeat("\n", count))
}

// Indent raises the level by count. Non-positive counts are ignored; use
// Dedent to lower the level.
func (b *Builder) Indent(count int) {
	if count <= 0 {
		return
	}

	b.level += count
}

// Dedent lowers the level by count. The level never goes below zero.
func (b *Builder) Dedent(count int) error {
	if b.level-count < 0 {
		return fmt.Errorf("%w: dedent by %d at level %d", ErrInternal, count, b.level)
	}

	b.level -= count

	return nil
}

func (b *Builder) Level() int {
	return b.level
}

// Finished returns everything saved so far.
func (b *Builder) Finished() string {
	return b.code.String()
}
