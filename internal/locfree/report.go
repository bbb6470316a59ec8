package locfree

import (
	"fmt"

	"github.com/simonhull/firebird-suite/lemma/internal/algebra"
	"github.com/simonhull/firebird-suite/lemma/internal/output"
)

// Conditions are the three statements the theorem declares equivalent.
var Conditions = []string{
	"P is projective",
	"P_p is free over A_p for every prime ideal p",
	"P_m is free over A_m for every maximal ideal m",
}

// Report prints the theorem statement and the verification result.
// Localizations are only listed in verbose mode.
func Report(p *output.Printer, ring *algebra.NoetherianRing, module *algebra.FinitelyGeneratedModule, res Result) error {
	p.Title("Noetherian Module Equivalence")
	p.Blank()
	p.Linef("Theorem: for %s Noetherian and %s finitely generated,", ring.Name(), module.Name())
	for i, c := range Conditions {
		p.Linef("(%d) %s", i+1, c)
	}
	p.Line("These three conditions are equivalent.")
	p.Blank()

	for _, l := range res.Localizations {
		p.Verbose(fmt.Sprintf("%s: free=%v", ring.Localize(algebra.NewIdeal(l.Ideal, l.Prime, l.Maximal)), l.Free))
	}

	p.Line("=== Theorem Verification ===")
	p.Linef("Condition 1 (Projective): %v", res.Projective)
	p.Linef("Condition 2 (Free at primes): %v", res.FreeAtPrimes)
	p.Linef("Condition 3 (Free at maximals): %v", res.FreeAtMaximals)
	p.Linef("All equivalent: %v", res.Equivalent)
	p.Blank()

	if res.Equivalent {
		p.Success("Theorem holds: Projective = Locally Free")
		p.Line("Implication: for Noetherian rings, checking at")
		p.Line("maximal ideals suffices to prove projectivity.")
	} else {
		p.Failure("Counterexample found (unexpected for Noetherian rings).")
	}

	return p.Err()
}
