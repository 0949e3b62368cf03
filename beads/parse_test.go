// SPDX-License-Identifier: MIT
package beads_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glmmda/beads"
)

func TestParse_FreeRun(t *testing.T) {
	d, err := beads.Parse("AAAA", beads.DefaultParams())
	require.NoError(t, err)
	require.Len(t, d, 1)
	assert.Equal(t, beads.Group{
		HydrodynamicRadius: beads.DefaultHydrodynamicRadius,
		StericRadius:       beads.DefaultStericRadius,
		Count:              4,
	}, d[0])
}

func TestParse_SingleDomainRadius(t *testing.T) {
	d, err := beads.Parse("[AAAA]", beads.DefaultParams())
	require.NoError(t, err)
	require.Len(t, d, 1)

	want := math.Pow(4*71.08*3/(4*math.Pi)/0.52, 1.0/3) + 3.0
	assert.Equal(t, 1, d[0].Count)
	assert.InDelta(t, want, d[0].StericRadius, 1e-12)
	assert.InDelta(t, want, d[0].HydrodynamicRadius, 1e-12)
}

func TestParse_OrderAndCounts(t *testing.T) {
	cases := []struct {
		name   string
		seq    string
		counts []int
		domain []bool
	}{
		{"free-domain-free", "MSE[ACDEF]GG", []int{3, 1, 2}, []bool{false, true, false}},
		{"leading domain", "[GG]SSS", []int{1, 3}, []bool{true, false}},
		{"trailing domain", "SS[WY]", []int{2, 1}, []bool{false, true}},
		{"adjacent domains", "[AA][CC]", []int{1, 1}, []bool{true, true}},
		{"placeholders", "XBZ", []int{3}, []bool{false}},
	}
	p := beads.DefaultParams()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := beads.Parse(tc.seq, p)
			require.NoError(t, err)
			require.Len(t, d, len(tc.counts))
			for i, g := range d {
				assert.Equal(t, tc.counts[i], g.Count, "group %d", i)
				isLinker := g.StericRadius == p.StericRadius && g.HydrodynamicRadius == p.HydrodynamicRadius
				assert.Equal(t, tc.domain[i], !isLinker, "group %d", i)
			}
		})
	}
}

func TestParse_BeadCountConservation(t *testing.T) {
	for _, seq := range []string{
		"A", "AAAA", "[A]", "MKV[ACDEFGHIKLMNPQRSTVWY]PPGS[WWW]E", "[QQ]R[KK]",
	} {
		d, err := beads.Parse(seq, beads.DefaultParams())
		require.NoError(t, err, seq)

		// residues outside brackets + number of domains
		var free, domains int
		inside := false
		for _, r := range seq {
			switch {
			case r == '[':
				inside = true
				domains++
			case r == ']':
				inside = false
			case !inside:
				free++
			}
		}
		assert.Equal(t, free+domains, d.Beads(), seq)

		radii := beads.Expand(d)
		assert.Len(t, radii.Steric, d.Beads())
		assert.Len(t, radii.Hydrodynamic, d.Beads())
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, seq := range []string{
		"",
		"AA[BB",
		"[",
		"AA]",
		"A]B[C]",
		"[]",
		"A[aa]",
		"[A[B]]",
		"[1A]",
	} {
		_, err := beads.Parse(seq, beads.DefaultParams())
		require.ErrorIs(t, err, beads.ErrMalformedSequence, "%q", seq)
	}
}

func TestParse_MalformedNamesSubstring(t *testing.T) {
	_, err := beads.Parse("MKV[QQ", beads.DefaultParams())
	require.ErrorIs(t, err, beads.ErrMalformedSequence)
	assert.True(t, strings.Contains(err.Error(), `"[QQ"`), err.Error())
}

func TestParse_UnknownResidue(t *testing.T) {
	p := beads.DefaultParams()
	for _, seq := range []string{"AA1A", "[A*A]", "aa", "G-G"} {
		_, err := beads.Parse(seq, p)
		require.ErrorIs(t, err, beads.ErrUnknownResidue, "%q", seq)
	}

	delete(p.Masses, 'W')
	_, err := beads.Parse("W", p)
	require.ErrorIs(t, err, beads.ErrUnknownResidue)
}

func TestParse_ZeroMassDomainMalformed(t *testing.T) {
	p := beads.DefaultParams()
	p.HydrationThickness = 0
	_, err := beads.Parse("[XXX]", p)
	require.ErrorIs(t, err, beads.ErrMalformedSequence)
}

func TestParse_InvalidParams(t *testing.T) {
	mutators := map[string]func(*beads.Params){
		"steric":    func(p *beads.Params) { p.StericRadius = 0 },
		"hydro":     func(p *beads.Params) { p.HydrodynamicRadius = -1 },
		"density":   func(p *beads.Params) { p.EffectiveDensity = math.NaN() },
		"hydration": func(p *beads.Params) { p.HydrationThickness = -0.5 },
		"masses":    func(p *beads.Params) { p.Masses = nil },
	}
	for name, mutate := range mutators {
		t.Run(name, func(t *testing.T) {
			p := beads.DefaultParams()
			mutate(&p)
			_, err := beads.Parse("AAA", p)
			require.ErrorIs(t, err, beads.ErrInvalidParameter)
		})
	}
}

func TestExcludedVolumeRadius_DensityMonotonic(t *testing.T) {
	const mass = 10000.0
	prev := math.Inf(1)
	for _, rho := range []float64{0.2, 0.4, 0.52, 0.8, 1.35} {
		r := beads.ExcludedVolumeRadius(mass, rho)
		assert.Less(t, r, prev, "density %v", rho)
		prev = r
	}

	// and through Parse
	lo, hi := beads.DefaultParams(), beads.DefaultParams()
	hi.EffectiveDensity = 1.0
	dLo, err := beads.Parse("[KKKKKK]", lo)
	require.NoError(t, err)
	dHi, err := beads.Parse("[KKKKKK]", hi)
	require.NoError(t, err)
	assert.Greater(t, dLo[0].StericRadius, dHi[0].StericRadius)
}

func TestDefaultMasses_FreshCopy(t *testing.T) {
	a := beads.DefaultMasses()
	a['A'] = 1
	b := beads.DefaultMasses()
	assert.Equal(t, 71.08, b['A'])
	assert.Len(t, b, 26)
}
