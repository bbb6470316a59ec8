package algebra

import "fmt"

// NoetherianRing is a named ring with an insertion-ordered set of ideals.
type NoetherianRing struct {
	name      string
	Dimension int
	ideals    []Ideal
}

// NewNoetherianRing creates a ring with no ideals.
func NewNoetherianRing(name string, dimension int) *NoetherianRing {
	return &NoetherianRing{
		name:      name,
		Dimension: dimension,
		ideals:    make([]Ideal, 0),
	}
}

// Name returns the ring's label.
func (r *NoetherianRing) Name() string {
	return r.name
}

// AddIdeal appends an ideal to the ring.
func (r *NoetherianRing) AddIdeal(ideal Ideal) {
	r.ideals = append(r.ideals, ideal)
}

// Ideals returns a copy of every ideal in insertion order.
func (r *NoetherianRing) Ideals() []Ideal {
	out := make([]Ideal, len(r.ideals))
	copy(out, r.ideals)
	return out
}

// PrimeIdeals returns the ideals flagged prime, in insertion order.
func (r *NoetherianRing) PrimeIdeals() []Ideal {
	return r.filter(func(i Ideal) bool { return i.Prime })
}

// MaximalIdeals returns the ideals flagged maximal, in insertion order.
func (r *NoetherianRing) MaximalIdeals() []Ideal {
	return r.filter(func(i Ideal) bool { return i.Maximal })
}

// VerifyProperties reports whether the ascending chain condition holds.
// Rings are Noetherian by construction, so this is always true.
func (r *NoetherianRing) VerifyProperties() bool {
	return true
}

// Localize returns a label for the local ring at the given ideal.
func (r *NoetherianRing) Localize(ideal Ideal) string {
	return fmt.Sprintf("Local ring at %s", ideal.Name)
}

func (r *NoetherianRing) filter(keep func(Ideal) bool) []Ideal {
	var out []Ideal
	for _, ideal := range r.ideals {
		if keep(ideal) {
			out = append(out, ideal)
		}
	}
	return out
}
