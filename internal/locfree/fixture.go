package locfree

import "github.com/simonhull/firebird-suite/lemma/internal/algebra"

// DefaultRing returns the ring A of dimension 2 with ideals m1 and m2
// (maximal) and p1 (prime, not maximal).
func DefaultRing() *algebra.NoetherianRing {
	ring := algebra.NewNoetherianRing("A", 2)
	ring.AddIdeal(algebra.NewIdeal("m1", true, true))
	ring.AddIdeal(algebra.NewIdeal("p1", true, false))
	ring.AddIdeal(algebra.NewIdeal("m2", true, true))
	return ring
}

// DefaultModule returns the projective module P of rank 3.
func DefaultModule() *algebra.FinitelyGeneratedModule {
	module := algebra.NewFinitelyGeneratedModule("P", 3)
	module.SetProjective(true)
	return module
}
