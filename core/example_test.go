package core_test

import (
	"fmt"

	"github.com/katalvlaran/apportion/core"
)

// ExampleSeats_Transfer moves seats from a pool into a capped list.
func ExampleSeats_Transfer() {
	pool := core.Filled(3)
	party := core.Limited(2)

	party.Transfer(&pool)
	party.Transfer(&pool)
	fmt.Println(party, pool, party.HasCandidates())
	// Output:
	// 2/2 1 false
}

// ExampleFraction_Cmp compares ratios without dividing.
func ExampleFraction_Cmp() {
	quota := core.Frac(2270, 7)
	fmt.Println(core.Frac(325, 1).Cmp(quota), core.Frac(4540, 14).Equal(quota))
	// Output:
	// 1 true
}

// ExampleQuality_Cmp ranks an integer surplus against an average.
func ExampleQuality_Cmp() {
	surplus := core.Integer(3)
	average := core.Ratio(7, 2)
	fmt.Println(surplus.Cmp(average), average)
	// Output:
	// -1 7/2
}
