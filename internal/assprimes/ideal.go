// Package assprimes compares the intersection of a module's associated primes
// with the radical of its annihilator.
//
// Ideals are sets of generator labels. Intersection is set intersection of
// generators and the radical wraps each generator as √(g); neither is a real
// ideal operation.
package assprimes

import (
	"fmt"
	"sort"
	"strings"
)

// Ideal is a set of generator labels.
type Ideal struct {
	gens map[string]struct{}
}

// NewIdeal creates an ideal from generators. Duplicates collapse.
func NewIdeal(generators ...string) Ideal {
	gens := make(map[string]struct{}, len(generators))
	for _, g := range generators {
		gens[g] = struct{}{}
	}
	return Ideal{gens: gens}
}

// Generators returns the generators in lexicographic order.
func (i Ideal) Generators() []string {
	out := make([]string, 0, len(i.gens))
	for g := range i.gens {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

// Has reports whether g is a generator.
func (i Ideal) Has(g string) bool {
	_, ok := i.gens[g]
	return ok
}

// Len returns the number of generators.
func (i Ideal) Len() int {
	return len(i.gens)
}

// Empty reports whether the ideal has no generators.
func (i Ideal) Empty() bool {
	return len(i.gens) == 0
}

// Equal reports whether both ideals have the same generators.
func (i Ideal) Equal(other Ideal) bool {
	if i.Len() != other.Len() {
		return false
	}
	for g := range i.gens {
		if !other.Has(g) {
			return false
		}
	}
	return true
}

// Radical returns the ideal generated by √(g) for every generator g.
func (i Ideal) Radical() Ideal {
	rad := make([]string, 0, len(i.gens))
	for g := range i.gens {
		rad = append(rad, fmt.Sprintf("√(%s)", g))
	}
	return NewIdeal(rad...)
}

// String renders the generators as {a, b}.
func (i Ideal) String() string {
	return "{" + strings.Join(i.Generators(), ", ") + "}"
}

// MarshalText encodes the ideal the same way String does.
func (i Ideal) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// Intersection returns the generators common to every ideal. No ideals
// yields the empty ideal.
func Intersection(ideals ...Ideal) Ideal {
	if len(ideals) == 0 {
		return NewIdeal()
	}

	var common []string
	for g := range ideals[0].gens {
		inAll := true
		for _, other := range ideals[1:] {
			if !other.Has(g) {
				inAll = false
				break
			}
		}
		if inAll {
			common = append(common, g)
		}
	}
	return NewIdeal(common...)
}
