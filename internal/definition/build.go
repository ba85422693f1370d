package definition

import (
	"pythoner/codegen"
)

// Build assembles the package described by def.
func Build(def *PackageDef) (*codegen.Package, error) {
	p := codegen.NewPackage(def.Name)

	for i := range def.Modules {
		m := buildModule(&def.Modules[i])

		if def.OrderClasses {
			if err := m.OrderClasses(); err != nil {
				return nil, err
			}
		}

		p.Add(m)
	}

	return p, nil
}

func buildModule(def *ModuleDef) *codegen.Module {
	m := codegen.NewModule(def.Name)

	for _, line := range def.Lines {
		m.AddLine(line)
	}

	for i := range def.Classes {
		m.Add(buildClass(&def.Classes[i]))
	}

	return m
}

func buildClass(def *ClassDef) *codegen.Class {
	c := codegen.NewSubclass(def.Name, def.Super)

	for _, dep := range def.Depends {
		c.AddDepend(dep)
	}

	for _, line := range def.Body {
		c.AddLine(line)
	}

	if def.Init != nil {
		ctor := codegen.NewConstructor(def.Init.Args...)
		for _, n := range def.Init.Named {
			ctor.AddNamedArgument(n.Name, n.Default)
		}

		for _, line := range def.Init.Body {
			ctor.AddLine(line)
		}

		c.Add(ctor)
	}

	for i := range def.Methods {
		c.Add(buildMethod(&def.Methods[i]))
	}

	return c
}

func buildMethod(def *MethodDef) *codegen.Method {
	m := codegen.NewMethod(def.Name, def.Args...)

	for _, n := range def.Named {
		m.AddNamedArgument(n.Name, n.Default)
	}

	for _, line := range def.Body {
		m.AddLine(line)
	}

	return m
}
