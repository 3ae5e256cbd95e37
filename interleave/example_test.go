package interleave_test

import (
	"fmt"

	"github.com/katalvlaran/paulix/interleave"
)

// ExampleInterleave shows lo landing on even bits and hi on odd bits.
func ExampleInterleave() {
	w := interleave.Interleave(0b11, 0b01)
	lo, hi := interleave.Deinterleave(w)
	fmt.Printf("word=%04b lo=%02b hi=%02b\n", w, lo, hi)
	// Output:
	// word=0111 lo=11 hi=01
}
