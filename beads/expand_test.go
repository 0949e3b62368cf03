// SPDX-License-Identifier: MIT
package beads_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/glmmda/beads"
)

func TestExpand_RepeatsInOrder(t *testing.T) {
	d := beads.Description{
		{HydrodynamicRadius: 4.2, StericRadius: 1.9, Count: 2},
		{HydrodynamicRadius: 20, StericRadius: 20, Count: 1},
		{HydrodynamicRadius: 4.2, StericRadius: 1.9, Count: 1},
	}
	r := beads.Expand(d)
	assert.Equal(t, []float64{1.9, 1.9, 20, 1.9}, r.Steric)
	assert.Equal(t, []float64{4.2, 4.2, 20, 4.2}, r.Hydrodynamic)
	assert.Equal(t, 4, r.Len())
}

func TestExpand_Empty(t *testing.T) {
	r := beads.Expand(nil)
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Hydrodynamic)
}
