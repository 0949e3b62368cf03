package beads_test

import (
	"fmt"

	"github.com/katalvlaran/glmmda/beads"
)

func ExampleParse() {
	d, err := beads.Parse("GS[AAAA]GS", beads.DefaultParams())
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, g := range d {
		fmt.Printf("count=%d rh=%.3f\n", g.Count, g.HydrodynamicRadius)
	}
	fmt.Println("beads:", d.Beads())
	// Output:
	// count=2 rh=4.200
	// count=1 rh=8.073
	// count=2 rh=4.200
	// beads: 5
}
