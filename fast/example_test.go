package fast_test

import (
	"fmt"

	"github.com/cwbudde/algo-fastapprox/fast"
)

func ExampleCos() {
	fmt.Printf("%.5f\n", fast.Cos(1))
	fmt.Printf("%.5f\n", fast.CosFull(10))
	// Output:
	// 0.54030
	// -0.83908
}

func ExampleExp() {
	fmt.Printf("%.4f\n", fast.Exp(1))
	fmt.Printf("%.4f\n", fast.Log2(8))
	fmt.Println(fast.Sigmoid(0))
	// Output:
	// 2.7183
	// 3.0000
	// 0.5
}

func ExampleLambertW() {
	fmt.Printf("%.4f\n", fast.LambertW(1))
	// Output:
	// 0.5671
}
