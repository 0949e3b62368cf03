// SPDX-License-Identifier: MIT
package chain_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/glmmda/chain"
)

const checkTol = 1e-9

func linker(n int) []float64 {
	r := make([]float64, n)
	for i := range r {
		r[i] = 1.9025
	}

	return r
}

func TestSARW_RespectsConstraints(t *testing.T) {
	gen := chain.NewSARW()
	for seed := int64(1); seed <= 5; seed++ {
		steric := append(linker(40), 12.5)
		steric = append(steric, linker(20)...)

		conf, err := gen.Generate(chain.NewStream(seed, 0), steric)
		require.NoError(t, err)
		require.Len(t, conf, len(steric))
		assert.Equal(t, r3.Vec{}, conf[0])
		require.NoError(t, chain.Check(conf, steric, checkTol), "seed %d", seed)
	}
}

func TestSARW_SingleBead(t *testing.T) {
	conf, err := chain.NewSARW().Generate(rand.New(rand.NewSource(3)), []float64{5})
	require.NoError(t, err)
	assert.Equal(t, chain.Conformation{{}}, conf)
}

func TestSARW_DeterministicPerStream(t *testing.T) {
	gen := chain.NewSARW()
	a, err := gen.Generate(chain.NewStream(42, 7), linker(25))
	require.NoError(t, err)
	b, err := gen.Generate(chain.NewStream(42, 7), linker(25))
	require.NoError(t, err)
	c, err := gen.Generate(chain.NewStream(42, 8), linker(25))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestSARW_InvalidInput(t *testing.T) {
	gen := chain.NewSARW()
	_, err := gen.Generate(chain.NewStream(1, 0), nil)
	require.ErrorIs(t, err, chain.ErrEmptyChain)
	_, err = gen.Generate(chain.NewStream(1, 0), []float64{1, 0, 1})
	require.ErrorIs(t, err, chain.ErrInvalidRadius)
}

func TestSARW_GivesUpWhenBudgetExhausted(t *testing.T) {
	// Two huge beads joined by a tiny one only fit when almost collinear;
	// the acceptance cone is ~1e-6 of the sphere.
	gen := chain.NewSARW(chain.WithMaxAttempts(5), chain.WithMaxRestarts(1))
	_, err := gen.Generate(chain.NewStream(1, 0), []float64{1000, 0.001, 1000})
	require.ErrorIs(t, err, chain.ErrGeneratorFailed)
}

func TestSARW_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { chain.WithMaxAttempts(0) })
	assert.Panics(t, func() { chain.WithMaxRestarts(-1) })
}

func TestCheck_DetectsViolations(t *testing.T) {
	steric := []float64{1, 1, 1}

	ok := chain.Conformation{{}, {X: 2}, {X: 4}}
	require.NoError(t, chain.Check(ok, steric, checkTol))

	stretched := chain.Conformation{{}, {X: 2.5}, {X: 4.5}}
	require.ErrorIs(t, chain.Check(stretched, steric, checkTol), chain.ErrConstraint)

	// bead 2 folds back onto bead 0
	folded := chain.Conformation{{}, {X: 2}, {X: 0.5}}
	require.ErrorIs(t, chain.Check(folded, steric, checkTol), chain.ErrConstraint)

	require.ErrorIs(t, chain.Check(ok[:2], steric, checkTol), chain.ErrConstraint)
}

func TestConformation_CentroidExtent(t *testing.T) {
	c := chain.Conformation{{X: -2}, {X: 2}}
	assert.Equal(t, r3.Vec{}, c.Centroid())
	assert.InDelta(t, 3.0, c.Extent([]float64{1, 1}), 1e-12)
	assert.Equal(t, r3.Vec{}, chain.Conformation(nil).Centroid())
}

func TestGeneratorFunc(t *testing.T) {
	var calls int
	g := chain.GeneratorFunc(func(_ *rand.Rand, steric []float64) (chain.Conformation, error) {
		calls++
		return make(chain.Conformation, len(steric)), nil
	})
	conf, err := g.Generate(nil, []float64{1, 2})
	require.NoError(t, err)
	assert.Len(t, conf, 2)
	assert.Equal(t, 1, calls)
}
