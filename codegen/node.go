package codegen

import "pythoner/internal/indent"

// Indentation deltas used when adding children.
const (
	IndentNone = 0
	IndentOne  = 1
	IndentTwo  = 2
)

// Node is a unit of the code tree that renders itself and its children.
type Node interface {
	Name() string
	Kind() Kind
	Generate() (string, error)
}

// Line is a literal line of text. Embedded newlines produce several lines,
// each indented at the same level.
type Line string

func (l Line) Name() string { return string(l) }

func (Line) Kind() Kind { return KindLine }

func (l Line) Generate() (string, error) { return string(l), nil }

type child struct {
	item   Node
	indent int
}

// tree is the state shared by every node variant: a name and ordered children.
type tree struct {
	name     string
	children []child
}

func (t *tree) Name() string { return t.name }

func (t *tree) add(item Node, delta int) {
	t.children = append(t.children, child{item: item, indent: delta})
}

// render walks the children in order. The builder level is shifted by each
// child's delta before rendering it and restored afterwards.
func (t *tree) render() (string, error) {
	var b indent.Builder

	for _, c := range t.children {
		if err := shift(&b, c.indent); err != nil {
			return "", err
		}

		text, err := c.item.Generate()
		if err != nil {
			return "", err
		}

		b.Save(text)

		if err := shift(&b, -c.indent); err != nil {
			return "", err
		}
	}

	return b.Finished(), nil
}

func shift(b *indent.Builder, delta int) error {
	if delta >= 0 {
		b.Indent(delta)
		return nil
	}

	return b.Dedent(-delta)
}
