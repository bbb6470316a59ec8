package assprimes

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/firebird-suite/lemma/internal/output"
)

func TestModule_Verify(t *testing.T) {
	v := NewModule("M").Verify()

	require.Len(t, v.AssociatedPrimes, 2)
	assert.Equal(t, []string{"x", "y"}, v.AssociatedPrimes[0].Generators())
	assert.Equal(t, []string{"z"}, v.AssociatedPrimes[1].Generators())
	assert.Equal(t, []string{"ann(M)"}, v.Annihilator.Generators())
	assert.True(t, v.Intersection.Empty())
	assert.Equal(t, []string{"√(ann(M))"}, v.Radical.Generators())
	assert.False(t, v.Holds)
}

func TestModule_ComputeAnnihilatorUsesName(t *testing.T) {
	m := NewModule("N")
	require.True(t, m.Annihilator.Empty())
	require.Empty(t, m.AssociatedPrimes)

	m.ComputeAnnihilator()

	assert.Equal(t, "{ann(N)}", m.Annihilator.String())
}

func TestVerification_JSON(t *testing.T) {
	data, err := json.Marshal(NewModule("M").Verify())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"module": "M",
		"annihilator": "{ann(M)}",
		"associated_primes": ["{x, y}", "{z}"],
		"intersection": "{}",
		"radical": "{√(ann(M))}",
		"holds": false
	}`, string(data))
}

const wantReport = `Commutative Algebra Theorem Verification
========================================
⋂ Ass(M) = √Ann(M)

Module: M
Annihilator: {ann(M)}
Associated Primes: p1={x, y} p2={z}
Intersection of Ass(M): {}
Radical of Ann(M): {√(ann(M))}

✗ Theorem verification: FAIL

Note: This is a conceptual implementation.
Full implementation requires computational algebra library.
`

func TestReport(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Report(output.NewPrinter(buf), NewModule("M").Verify()))

	if diff := cmp.Diff(wantReport, buf.String()); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestReport_Pass(t *testing.T) {
	v := Verification{
		Module:           "M",
		Annihilator:      NewIdeal("ann(M)"),
		AssociatedPrimes: []Ideal{NewIdeal("x", "y"), NewIdeal("y", "z")},
		Intersection:     NewIdeal("y"),
		Radical:          NewIdeal("√(ann(M))"),
		Holds:            true,
	}

	buf := &bytes.Buffer{}
	require.NoError(t, Report(output.NewPrinter(buf), v))

	assert.Contains(t, buf.String(), "✓ Theorem verification: PASS (conceptual)")
	assert.Contains(t, buf.String(), "Intersection of Ass(M): {y}")
}

func TestReport_Idempotent(t *testing.T) {
	var outs [2]string
	for i := range outs {
		buf := &bytes.Buffer{}
		require.NoError(t, Report(output.NewPrinter(buf), NewModule("M").Verify()))
		outs[i] = buf.String()
	}

	assert.Equal(t, outs[0], outs[1])
}
