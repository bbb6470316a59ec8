package assprimes

import (
	"fmt"
	"strings"

	"github.com/simonhull/firebird-suite/lemma/internal/output"
)

// Report prints the intermediate values and the verdict of v.
func Report(p *output.Printer, v Verification) error {
	p.Title("Commutative Algebra Theorem Verification")
	p.Line("⋂ Ass(M) = √Ann(M)")
	p.Blank()

	p.Linef("Module: %s", v.Module)
	p.Linef("Annihilator: %s", v.Annihilator)

	primes := make([]string, 0, len(v.AssociatedPrimes))
	for i, prime := range v.AssociatedPrimes {
		primes = append(primes, fmt.Sprintf("p%d=%s", i+1, prime))
	}
	p.Linef("Associated Primes: %s", strings.Join(primes, " "))
	p.Linef("Intersection of Ass(M): %s", v.Intersection)
	p.Linef("Radical of Ann(M): %s", v.Radical)
	p.Blank()

	if v.Holds {
		p.Success("Theorem verification: PASS (conceptual)")
	} else {
		p.Failure("Theorem verification: FAIL")
	}
	p.Blank()

	p.Info("Note: This is a conceptual implementation.")
	p.Info("Full implementation requires computational algebra library.")

	return p.Err()
}
