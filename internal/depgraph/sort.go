// Package depgraph orders class declarations so that a class is never
// declared before a class it depends on.
package depgraph

import (
	"errors"
	"fmt"
	"slices"
)

// ErrCycle is returned when classes depend on each other in a loop.
var ErrCycle = errors.New("dependency cycle detected")

// Sort returns the positions 0..count-1 in an order where every class
// follows the classes it depends on. dependsOn(i) lists the positions that
// class i must be declared after.
//
// Among classes that are free to go next the lowest position is taken, so
// classes without dependencies keep their declaration order.
func Sort(count int, dependsOn func(i int) []int) ([]int, error) {
	if count <= 0 {
		return nil, nil
	}

	// pending[i] counts the dependencies of i not yet declared.
	pending := make([]int, count)
	dependents := make([][]int, count)

	for class := 0; class < count; class++ {
		for _, base := range dependsOn(class) {
			if base < 0 || base >= count {
				return nil, fmt.Errorf("class %d depends on unknown position %d", class, base)
			}

			pending[class]++
			dependents[base] = append(dependents[base], class)
		}
	}

	var free []int

	for class, n := range pending {
		if n == 0 {
			free = append(free, class)
		}
	}

	declared := make([]int, 0, count)

	for len(free) > 0 {
		next := free[0]
		free = free[1:]

		declared = append(declared, next)

		for _, class := range dependents[next] {
			pending[class]--
			if pending[class] > 0 {
				continue
			}

			at, _ := slices.BinarySearch(free, class)
			free = slices.Insert(free, at, class)
		}
	}

	if len(declared) != count {
		return nil, fmt.Errorf("%w: %d of %d classes unresolved", ErrCycle, count-len(declared), count)
	}

	return declared, nil
}
