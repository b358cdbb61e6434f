package bitonic_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/intel/forGoBitonic/bitonic"
)

func ExampleSort() {
	data := []int{5, 3, 8, 1}
	if err := bitonic.Sort(data, bitonic.Ascending[int]()); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(data)

	// Output:
	// [1 3 5 8]
}

func ExampleSort_strings() {
	colours := []string{
		"Blue", "Yellow", "Almond", "Onyx", "Peach", "Gold", "Red", "Melon",
		"Lava", "Beige", "Aqua", "Lilac", "Capri", "Orange", "Mauve", "Plum",
	}
	if err := bitonic.Sort(colours, strings.Compare); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(colours)

	// Output:
	// [Almond Aqua Beige Blue Capri Gold Lava Lilac Mauve Melon Onyx Orange Peach Plum Red Yellow]
}

func ExampleParallelSort() {
	data := []float64{
		-23.45, 56.23, 67.45, 23.0, 24.78, 13.67, 87.89, 98.0,
		76.283, 87.65, 90.65, 87.87, 324.56, 11334.5, 467.78, 4657.78,
	}
	err := bitonic.ParallelSort(context.Background(), data, bitonic.Ascending[float64](),
		bitonic.WithWorkers(4), bitonic.WithGrainSize(2))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(data)

	// Output:
	// [-23.45 13.67 23 24.78 56.23 67.45 76.283 87.65 87.87 87.89 90.65 98 324.56 467.78 4657.78 11334.5]
}

func ExampleSort_notPowerOfTwo() {
	data := []int{3, 1, 2}
	err := bitonic.Sort(data, bitonic.Ascending[int]())
	fmt.Println(err)
	fmt.Println(data)

	// Output:
	// bitonic: length is not a power of two: 3
	// [3 1 2]
}

func ExampleNetwork() {
	pairs, _ := bitonic.Network(4)
	for _, pair := range pairs {
		fmt.Println(pair[0], pair[1])
	}
	fmt.Println(bitonic.Comparisons(16))

	// Output:
	// 0 1
	// 2 3
	// 0 2
	// 1 3
	// 1 2
	// 63
}
