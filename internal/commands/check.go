package commands

import (
	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/lemma/internal/assprimes"
	"github.com/simonhull/firebird-suite/lemma/internal/locfree"
	"github.com/simonhull/firebird-suite/lemma/internal/logger"
)

func projectiveCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "projective",
		Short: "Check projective ⇔ locally free over a Noetherian ring",
		Long: `Check that the configured module is projective exactly when it is free
at every prime ideal and at every maximal ideal of the configured ring.

Freeness at a localization is simplified to "the module has positive rank".

Example:
  lemma projective --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjective(cmd, e)
		},
	}
}

func runProjective(cmd *cobra.Command, e *env) error {
	ring := e.cfg.Ring()
	module := e.cfg.Module()

	res := locfree.NewVerifier(ring, module).Verify()
	e.log.Debug("verification finished",
		logger.F("projective", res.Projective),
		logger.F("free_at_primes", res.FreeAtPrimes),
		logger.F("free_at_maximals", res.FreeAtMaximals),
	)

	return locfree.Report(e.printer(cmd), ring, module, res)
}

func primesCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "primes",
		Aliases: []string{"assprimes"},
		Short:   "Compare ⋂ Ass(M) with √Ann(M)",
		Long: `Compute placeholder associated primes and annihilator for the configured
module, intersect the primes, take the radical of the annihilator, and
report whether the intersection is non-empty.

Example:
  lemma primes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrimes(cmd, e)
		},
	}
}

func runPrimes(cmd *cobra.Command, e *env) error {
	v := assprimes.NewModule(e.cfg.Fixtures.PrimesModule.Name).Verify()
	e.log.Debug("verification finished",
		logger.F("intersection", v.Intersection),
		logger.F("radical", v.Radical),
		logger.F("holds", v.Holds),
	)

	return assprimes.Report(e.printer(cmd), v)
}
