package algebra

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Freeness at a localization depends only on the rank.
func TestFreeAtLocalization_IgnoresIdeal(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("free iff rank > 0, for any ideal", prop.ForAll(
		func(rank int, name string, prime, maximal bool) bool {
			module := NewFinitelyGeneratedModule("P", rank)
			return module.IsFreeAtLocalization(NewIdeal(name, prime, maximal)) == (rank > 0)
		},
		gen.IntRange(-100, 100),
		gen.AlphaString(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.Property("maximal view is a subsequence of the ideals", prop.ForAll(
		func(flags []bool) bool {
			ring := NewNoetherianRing("R", 1)
			for i, f := range flags {
				ring.AddIdeal(NewIdeal(string(rune('a'+i%26)), f, f && i%2 == 0))
			}
			for _, m := range ring.MaximalIdeals() {
				if !m.Maximal {
					return false
				}
			}
			return len(ring.MaximalIdeals()) <= len(ring.PrimeIdeals())
		},
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}
