package codegen

import (
	"strings"

	"pythoner/internal/indent"
)

// NamedArg is a keyword parameter with its default value expression.
type NamedArg struct {
	Name    string
	Default string
}

// Method renders a "def" block taking self plus its parameters.
type Method struct {
	tree

	args  []string
	named []NamedArg
}

// NewMethod creates a method with the given positional parameters.
func NewMethod(name string, args ...string) *Method {
	return &Method{
		tree: tree{name: name},
		args: append([]string(nil), args...),
	}
}

func (*Method) Kind() Kind { return KindMethod }

// Add appends a child one level deeper than the def line.
func (m *Method) Add(child Node) *Method {
	return m.AddAt(child, IndentOne)
}

func (m *Method) AddAt(child Node, delta int) *Method {
	m.add(child, delta)
	return m
}

func (m *Method) AddLine(text string) *Method {
	return m.Add(Line(text))
}

func (m *Method) AddArgument(args ...string) *Method {
	m.args = append(m.args, args...)
	return m
}

// AddNamedArgument appends a keyword parameter. Re-adding a known name
// replaces its default and keeps its position. An empty default renders
// the bare name.
func (m *Method) AddNamedArgument(name, def string) *Method {
	m.setNamed(name, def)
	return m
}

func (m *Method) setNamed(name, def string) bool {
	for i := range m.named {
		if m.named[i].Name == name {
			m.named[i].Default = def
			return false
		}
	}

	m.named = append(m.named, NamedArg{Name: name, Default: def})

	return true
}

func (m *Method) Args() []string {
	return append([]string(nil), m.args...)
}

func (m *Method) NamedArgs() []NamedArg {
	return append([]NamedArg(nil), m.named...)
}

// Params returns positional names followed by keyword names.
func (m *Method) Params() []string {
	params := make([]string, 0, len(m.args)+len(m.named))
	params = append(params, m.args...)

	for _, n := range m.named {
		params = append(params, n.Name)
	}

	return params
}

func (m *Method) header() string {
	params := make([]string, 0, 1+len(m.args)+len(m.named))
	params = append(params, "self")
	params = append(params, m.args...)

	for _, n := range m.named {
		if n.Default == "" {
			params = append(params, n.Name)
			continue
		}

		params = append(params, n.Name+"="+n.Default)
	}

	return "def " + m.name + "(" + strings.Join(params, ", ") + "):"
}

func (m *Method) Generate() (string, error) {
	var b indent.Builder

	b.Save(m.header())

	body, err := m.render()
	if err != nil {
		return "", err
	}

	if body == "" {
		b.Indent(IndentOne)
		b.Save("pass")

		return b.Finished(), nil
	}

	b.Save(body)

	return b.Finished(), nil
}

// ConstructorName is the method name Python uses for constructors.
const ConstructorName = "__init__"

// Constructor is an __init__ method that stores every parameter on self.
type Constructor struct {
	Method
}

// NewConstructor creates an __init__ method. Each parameter, now or added
// later, gets a "self.<p> = <p>" line in declaration order.
func NewConstructor(args ...string) *Constructor {
	c := &Constructor{Method: Method{tree: tree{name: ConstructorName}}}
	c.AddArgument(args...)

	return c
}

func (*Constructor) Kind() Kind { return KindConstructor }

func (c *Constructor) Add(child Node) *Constructor {
	return c.AddAt(child, IndentOne)
}

func (c *Constructor) AddAt(child Node, delta int) *Constructor {
	c.add(child, delta)
	return c
}

func (c *Constructor) AddLine(text string) *Constructor {
	return c.Add(Line(text))
}

func (c *Constructor) AddArgument(args ...string) *Constructor {
	c.Method.AddArgument(args...)

	for _, arg := range args {
		c.assign(arg)
	}

	return c
}

func (c *Constructor) AddNamedArgument(name, def string) *Constructor {
	if c.setNamed(name, def) {
		c.assign(name)
	}

	return c
}

func (c *Constructor) assign(param string) {
	c.Add(Line("self." + param + " = " + param))
}
