// Package algebra models the objects the projectivity checker works with.
//
// # Overview
//
// The types here are labelled records, not computed algebraic objects:
//
//   - Ideal: a name with prime and maximal flags
//   - NoetherianRing: a named ring holding an ordered collection of ideals
//   - FinitelyGeneratedModule: a named module with a rank and a projective flag
//
// Properties such as primality, maximality, and projectivity are asserted at
// construction time. Freeness at a localization is simplified to "the module
// has positive rank" and does not depend on the ideal.
//
// # Usage
//
//	ring := algebra.NewNoetherianRing("A", 2)
//	ring.AddIdeal(algebra.NewIdeal("m1", true, true))
//
//	module := algebra.NewFinitelyGeneratedModule("P", 3)
//	module.SetProjective(true)
//
//	module.IsFreeAtLocalization(ring.MaximalIdeals()[0]) // true
package algebra
