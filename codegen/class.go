package codegen

import (
	"pythoner/internal/common"
	"pythoner/internal/indent"
)

// DefaultSuper is the super class used when none is given.
const DefaultSuper = "object"

// Class renders a "class" block. Its first child is always its own header.
type Class struct {
	tree

	super   string
	depends []string
}

func NewClass(name string) *Class {
	return NewSubclass(name, DefaultSuper)
}

// NewSubclass creates a class deriving from super. An empty super falls back
// to DefaultSuper.
func NewSubclass(name, super string) *Class {
	if super == "" {
		super = DefaultSuper
	}

	c := &Class{tree: tree{name: name}, super: super}
	c.add(Line("class "+name+"("+super+"):"), IndentNone)

	return c
}

func (*Class) Kind() Kind { return KindClass }

func (c *Class) Super() string { return c.super }

// Add appends a member one level deeper than the class header.
func (c *Class) Add(child Node) *Class {
	return c.AddAt(child, IndentOne)
}

func (c *Class) AddAt(child Node, delta int) *Class {
	c.add(child, delta)
	return c
}

func (c *Class) AddLine(text string) *Class {
	return c.Add(Line(text))
}

// AddDepend records that this class needs another class to be declared first.
func (c *Class) AddDepend(name string) *Class {
	c.depends = append(c.depends, name)
	return c
}

func (c *Class) Depends() []string {
	return append([]string(nil), c.depends...)
}

// Generate renders the class. A class holding only its header gets a
// "pass" body.
func (c *Class) Generate() (string, error) {
	text, err := c.render()
	if err != nil {
		return "", err
	}

	if common.IsSingle(c.children) {
		var b indent.Builder

		b.Indent(IndentOne)
		b.Save("pass")
		text += b.Finished()
	}

	return text, nil
}
