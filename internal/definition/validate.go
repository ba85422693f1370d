package definition

import (
	"fmt"
	"strings"
)

// Validate reports every missing name in one error.
func Validate(def *PackageDef) error {
	var problems []string

	if def.Name == "" {
		problems = append(problems, "package name is required")
	}

	for i, m := range def.Modules {
		where := fmt.Sprintf("modules[%d]", i)
		if m.Name == "" {
			problems = append(problems, where+": name is required")
		} else {
			where = "module " + m.Name
		}

		for j, c := range m.Classes {
			cwhere := fmt.Sprintf("%s: classes[%d]", where, j)
			if c.Name == "" {
				problems = append(problems, cwhere+": name is required")
			} else {
				cwhere = fmt.Sprintf("%s: class %s", where, c.Name)
			}

			if c.Init != nil {
				problems = append(problems, validateParams(cwhere+": init", c.Init)...)
			}

			for k := range c.Methods {
				mt := &c.Methods[k]
				if mt.Name == "" {
					problems = append(problems, fmt.Sprintf("%s: methods[%d]: name is required", cwhere, k))
					continue
				}

				problems = append(problems, validateParams(cwhere+": method "+mt.Name, mt)...)
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDefinition, strings.Join(problems, "; "))
	}

	return nil
}

func validateParams(where string, m *MethodDef) []string {
	var problems []string

	for i, a := range m.Args {
		if strings.TrimSpace(a) == "" {
			problems = append(problems, fmt.Sprintf("%s: args[%d] is empty", where, i))
		}
	}

	for i, n := range m.Named {
		if strings.TrimSpace(n.Name) == "" {
			problems = append(problems, fmt.Sprintf("%s: named[%d] has no name", where, i))
		}
	}

	return problems
}
