package discretize_test

import (
	"fmt"

	"github.com/katalvlaran/psdkit/discretize"
	"github.com/katalvlaran/psdkit/model"
)

// ExampleDiscretize builds the bin table for a typical ground cement and
// shows the invariants a consumer can rely on.
func ExampleDiscretize() {
	params := model.RosinRammler{D50: 15, N: 1.4, DMax: 60}
	table, err := discretize.Discretize(params, nil)
	if err != nil {
		fmt.Println("discretize:", err)
		return
	}
	fmt.Println("bins:", len(table))
	fmt.Println("top size:", table[len(table)-1].Diameter)
	fmt.Printf("closure: %.1f\n", table.Sum())
	// Output:
	// bins: 23
	// top size: 60
	// closure: 1.0
}
