package locfree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/firebird-suite/lemma/internal/algebra"
)

func TestVerify_DefaultFixture(t *testing.T) {
	res := NewVerifier(DefaultRing(), DefaultModule()).Verify()

	assert.True(t, res.Projective)
	assert.True(t, res.FreeAtPrimes)
	assert.True(t, res.FreeAtMaximals)
	assert.True(t, res.Equivalent)
}

func TestVerify_Localizations(t *testing.T) {
	res := NewVerifier(DefaultRing(), DefaultModule()).Verify()

	require.Len(t, res.Localizations, 3)
	assert.Equal(t, Localization{Ideal: "m1", Prime: true, Maximal: true, Free: true}, res.Localizations[0])
	assert.Equal(t, Localization{Ideal: "p1", Prime: true, Maximal: false, Free: true}, res.Localizations[1])
	assert.Equal(t, "m2", res.Localizations[2].Ideal)
}

func TestVerify_Table(t *testing.T) {
	tests := []struct {
		name       string
		rank       int
		projective bool
		ideals     []algebra.Ideal
		want       Result
	}{
		{
			name:       "zero rank projective module disagrees",
			rank:       0,
			projective: true,
			ideals:     DefaultRing().Ideals(),
			want:       Result{Projective: true, FreeAtPrimes: false, FreeAtMaximals: false, Equivalent: false},
		},
		{
			name:       "zero rank non-projective module agrees",
			rank:       0,
			projective: false,
			ideals:     DefaultRing().Ideals(),
			want:       Result{Projective: false, FreeAtPrimes: false, FreeAtMaximals: false, Equivalent: true},
		},
		{
			name:       "positive rank without projective flag disagrees",
			rank:       2,
			projective: false,
			ideals:     DefaultRing().Ideals(),
			want:       Result{Projective: false, FreeAtPrimes: true, FreeAtMaximals: true, Equivalent: false},
		},
		{
			name:       "no ideals is vacuously free",
			rank:       0,
			projective: true,
			ideals:     nil,
			want:       Result{Projective: true, FreeAtPrimes: true, FreeAtMaximals: true, Equivalent: true},
		},
		{
			name:       "primes but no maximals",
			rank:       0,
			projective: false,
			ideals:     []algebra.Ideal{algebra.NewIdeal("p", true, false)},
			want:       Result{Projective: false, FreeAtPrimes: false, FreeAtMaximals: true, Equivalent: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ring := algebra.NewNoetherianRing("R", 1)
			for _, i := range tt.ideals {
				ring.AddIdeal(i)
			}
			module := algebra.NewFinitelyGeneratedModule("M", tt.rank)
			module.SetProjective(tt.projective)

			got := NewVerifier(ring, module).Verify()
			got.Localizations = nil

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerify_SkipsNonPrimeIdeals(t *testing.T) {
	ring := algebra.NewNoetherianRing("R", 1)
	ring.AddIdeal(algebra.NewIdeal("i", false, false))
	ring.AddIdeal(algebra.NewIdeal("p", true, false))

	res := NewVerifier(ring, DefaultModule()).Verify()

	require.Len(t, res.Localizations, 1)
	assert.Equal(t, "p", res.Localizations[0].Ideal)
}
