// Package locfree checks that a finitely generated module over a Noetherian
// ring is projective exactly when it is free at every prime and at every
// maximal ideal.
package locfree

import "github.com/simonhull/firebird-suite/lemma/internal/algebra"

// Localization records whether the module is free at one ideal.
type Localization struct {
	Ideal   string
	Prime   bool
	Maximal bool
	Free    bool
}

// Result holds the three checked conditions and whether they agree.
type Result struct {
	Projective     bool
	FreeAtPrimes   bool
	FreeAtMaximals bool
	Equivalent     bool

	Localizations []Localization
}

// Verifier checks the equivalence for one ring and module.
type Verifier struct {
	ring   *algebra.NoetherianRing
	module *algebra.FinitelyGeneratedModule
}

// NewVerifier creates a verifier for module over ring.
func NewVerifier(ring *algebra.NoetherianRing, module *algebra.FinitelyGeneratedModule) *Verifier {
	return &Verifier{ring: ring, module: module}
}

// Verify evaluates the three conditions. A ring with no prime (or no maximal)
// ideals makes the corresponding condition vacuously true.
func (v *Verifier) Verify() Result {
	res := Result{
		Projective:     v.module.IsProjective(),
		FreeAtPrimes:   v.freeAtAll(v.ring.PrimeIdeals()),
		FreeAtMaximals: v.freeAtAll(v.ring.MaximalIdeals()),
	}
	res.Equivalent = res.Projective == res.FreeAtPrimes && res.FreeAtPrimes == res.FreeAtMaximals

	for _, ideal := range v.ring.Ideals() {
		if !ideal.Prime && !ideal.Maximal {
			continue
		}
		res.Localizations = append(res.Localizations, Localization{
			Ideal:   ideal.Name,
			Prime:   ideal.Prime,
			Maximal: ideal.Maximal,
			Free:    v.module.IsFreeAtLocalization(ideal),
		})
	}

	return res
}

func (v *Verifier) freeAtAll(ideals []algebra.Ideal) bool {
	for _, ideal := range ideals {
		if !v.module.IsFreeAtLocalization(ideal) {
			return false
		}
	}
	return true
}
