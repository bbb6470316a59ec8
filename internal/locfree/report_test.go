package locfree

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/firebird-suite/lemma/internal/algebra"
	"github.com/simonhull/firebird-suite/lemma/internal/output"
)

const wantDefaultReport = `Noetherian Module Equivalence
=============================

Theorem: for A Noetherian and P finitely generated,
(1) P is projective
(2) P_p is free over A_p for every prime ideal p
(3) P_m is free over A_m for every maximal ideal m
These three conditions are equivalent.

=== Theorem Verification ===
Condition 1 (Projective): true
Condition 2 (Free at primes): true
Condition 3 (Free at maximals): true
All equivalent: true

✓ Theorem holds: Projective = Locally Free
Implication: for Noetherian rings, checking at
maximal ideals suffices to prove projectivity.
`

func render(t *testing.T, ring *algebra.NoetherianRing, module *algebra.FinitelyGeneratedModule, opts ...output.Option) string {
	t.Helper()
	buf := &bytes.Buffer{}
	res := NewVerifier(ring, module).Verify()
	require.NoError(t, Report(output.NewPrinter(buf, opts...), ring, module, res))
	return buf.String()
}

func TestReport_Default(t *testing.T) {
	got := render(t, DefaultRing(), DefaultModule())

	if diff := cmp.Diff(wantDefaultReport, got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestReport_Idempotent(t *testing.T) {
	first := render(t, DefaultRing(), DefaultModule())
	second := render(t, DefaultRing(), DefaultModule())

	assert.Equal(t, first, second)
}

func TestReport_Counterexample(t *testing.T) {
	module := algebra.NewFinitelyGeneratedModule("P", 0)
	module.SetProjective(true)

	got := render(t, DefaultRing(), module)

	assert.Contains(t, got, "All equivalent: false")
	assert.Contains(t, got, "✗ Counterexample found")
	assert.NotContains(t, got, "Theorem holds")
}

func TestReport_VerboseListsLocalizations(t *testing.T) {
	got := render(t, DefaultRing(), DefaultModule(), output.WithVerbose(true))

	assert.Contains(t, got, "Local ring at m1: free=true")
	assert.Contains(t, got, "Local ring at p1: free=true")
	assert.Contains(t, got, "Local ring at m2: free=true")
}
