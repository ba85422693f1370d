package codegen

import (
	"fmt"

	"pythoner/internal/depgraph"
)

// ModuleHeader is the first line of every generated module.
const ModuleHeader = "# coding: utf-8"

// Module is a single source file. Children are added flat, without indent.
type Module struct {
	tree
}

// NewModule creates a module holding the coding header and a blank line.
func NewModule(name string) *Module {
	m := &Module{tree: tree{name: name}}
	m.Add(Line(ModuleHeader))
	m.AddNewline()

	return m
}

func (*Module) Kind() Kind { return KindModule }

func (m *Module) Add(child Node) *Module {
	return m.AddAt(child, IndentNone)
}

func (m *Module) AddAt(child Node, delta int) *Module {
	m.add(child, delta)
	return m
}

func (m *Module) AddLine(text string) *Module {
	return m.Add(Line(text))
}

// AddNewline appends one blank line.
func (m *Module) AddNewline() *Module {
	return m.Add(Line(""))
}

// Classes returns the class children in their current order.
func (m *Module) Classes() []*Class {
	var classes []*Class

	for _, c := range m.children {
		if class, ok := c.item.(*Class); ok {
			classes = append(classes, class)
		}
	}

	return classes
}

// OrderClasses reorders the class children so every class follows the
// classes it depends on. Ties keep declaration order. Dependencies on classes
// outside the module are ignored. Other children keep their slots.
func (m *Module) OrderClasses() error {
	var slots []int

	for i, c := range m.children {
		if c.item.Kind() == KindClass {
			slots = append(slots, i)
		}
	}

	if len(slots) < 2 {
		return nil
	}

	byName := make(map[string]int, len(slots))
	classes := make([]child, len(slots))

	for i, slot := range slots {
		classes[i] = m.children[slot]
		byName[classes[i].item.Name()] = i
	}

	order, err := depgraph.Sort(len(classes), func(i int) []int {
		var deps []int

		for _, name := range classes[i].item.(*Class).depends {
			if j, ok := byName[name]; ok && j != i {
				deps = append(deps, j)
			}
		}

		return deps
	})
	if err != nil {
		return fmt.Errorf("ordering classes of module %s: %w", m.name, err)
	}

	for i, j := range order {
		m.children[slots[i]] = classes[j]
	}

	return nil
}

func (m *Module) Generate() (string, error) {
	return m.render()
}
