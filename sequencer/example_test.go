package sequencer_test

import (
	"fmt"

	"github.com/katalvlaran/keypads/sequencer"
)

// ExampleSequencer_Cost prices the same code behind two and twenty-five
// directional keypads. The deep chain cannot be spelled out literally.
func ExampleSequencer_Cost() {
	for _, depth := range []int{2, 25} {
		s, err := sequencer.New(depth)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		n, err := s.Cost("029A")
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("depth %d: %d presses\n", depth, n)
	}
	// Output:
	// depth 2: 68 presses
	// depth 25: 82050061710 presses
}

// ExampleMaterialize lists the literal strings typed on the pad that
// drives the numeric keypad.
func ExampleMaterialize() {
	seqs, _ := sequencer.Materialize("029A", 0)
	for _, s := range seqs {
		fmt.Println(s)
	}
	// Output:
	// <A^A>^^AvvvA
	// <A^A^^>AvvvA
}
