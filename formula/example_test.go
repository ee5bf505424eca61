package formula_test

import (
	"fmt"
	"sort"

	"github.com/serebrin/xrayopt/formula"
)

// ExampleParse parses dolomite and prints its composition in symbol order.
func ExampleParse() {
	comp, err := formula.Parse("CaMg(CO3)2")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	symbols := comp.Symbols()
	sort.Strings(symbols)
	for _, sym := range symbols {
		fmt.Printf("%s: %g\n", sym, comp[sym])
	}
	// Output:
	// C: 2
	// Ca: 1
	// Mg: 1
	// O: 6
}
