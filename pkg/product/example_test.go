package product_test

import (
	"fmt"

	"github.com/cartprod/cartprod/pkg/product"
	"github.com/cartprod/cartprod/pkg/sequence"
)

func ExamplePair() {
	pairs := product.Pair(
		sequence.FromSlice([]int{0, 1}),
		sequence.FromSlice([]int{0, 1}),
	)

	for pair := range pairs.All() {
		fmt.Println(pair)
	}
	// Output:
	// [0 0]
	// [0 1]
	// [1 0]
	// [1 1]
}

func ExampleTriple() {
	triples := product.Triple(
		sequence.Range(0, 2),
		sequence.Range(0, 2),
		sequence.Range(0, 2),
	)

	for triple := range triples.All() {
		fmt.Printf("%d %d %d\n", triple[0], triple[1], triple[2])
	}
	// Output:
	// 0 0 0
	// 0 0 1
	// 0 1 0
	// 0 1 1
	// 1 0 0
	// 1 0 1
	// 1 1 0
	// 1 1 1
}

func ExampleProduct_Estimate() {
	prod, err := product.New(
		sequence.Range(0, 4),
		sequence.Range(0, 3),
		sequence.Range(0, 2),
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(prod.Estimate())
	// Output:
	// exactly 24
}

func ExampleProduct_Next() {
	prod, err := product.New(
		sequence.FromSlice([]string{"a", "b"}),
		sequence.FromSlice([]string{"x", "y"}),
	)
	if err != nil {
		panic(err)
	}

	for {
		tuple, ok := prod.Next()
		if !ok {
			break
		}
		fmt.Println(tuple)
	}
	// Output:
	// [a x]
	// [a y]
	// [b x]
	// [b y]
}
